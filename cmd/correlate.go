package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gradelens/gradelens/algorithms/regression"
	"github.com/gradelens/gradelens/analytics"
)

var correlateCmd = &cobra.Command{
	Use:   "correlate <file> [column-a column-b]",
	Short: "Pearson correlation between score columns",
	Long: `With two column names, prints their correlation coefficient.
With no columns, prints the full pairwise correlation matrix.`,
	Args: correlateArgs,
	RunE: runCorrelate,
}

func init() {
	rootCmd.AddCommand(correlateCmd)
}

func correlateArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 && len(args) != 3 {
		return fmt.Errorf("expected <file> or <file> <column-a> <column-b>, got %d args", len(args))
	}
	return nil
}

func runCorrelate(cmd *cobra.Command, args []string) error {
	s, err := firstSheet(args[0])
	if err != nil {
		return err
	}

	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}
	columns := analyzer.Classifier().Classify(s)
	if len(columns) == 0 {
		return fmt.Errorf("no score columns in %s", s.Name)
	}

	if len(args) == 3 {
		a, ok := analytics.FindColumn(columns, args[1])
		if !ok {
			return fmt.Errorf("no score column %q in %s", args[1], s.Name)
		}
		b, ok := analytics.FindColumn(columns, args[2])
		if !ok {
			return fmt.Errorf("no score column %q in %s", args[2], s.Name)
		}
		fmt.Printf("r(%s, %s) = %.4f\n", a.Name, b.Name, regression.Correlate(a.Values, b.Values))
		return nil
	}

	names := make([]string, len(columns))
	series := make([][]float64, len(columns))
	for i, col := range columns {
		names[i] = col.Name
		series[i] = col.Values
	}
	matrix := regression.CorrelationMatrix(names, series)

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(matrix)
	}

	printMatrix(matrix)
	return nil
}

func printMatrix(m *regression.Matrix) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(append([]string{""}, m.Columns...))
	for i, name := range m.Columns {
		row := []string{name}
		for j := range m.Columns {
			row = append(row, fmt.Sprintf("%.3f", m.Values[i][j]))
		}
		table.Append(row)
	}
	table.Render()
}
