package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gradelens/gradelens/algorithms/regression"
	"github.com/gradelens/gradelens/analytics"
)

var regressCmd = &cobra.Command{
	Use:   "regress <file> <x-column> <y-column>",
	Short: "Least-squares line fit between two score columns",
	Args:  cobra.ExactArgs(3),
	RunE:  runRegress,
}

func init() {
	rootCmd.AddCommand(regressCmd)
}

func runRegress(cmd *cobra.Command, args []string) error {
	s, err := firstSheet(args[0])
	if err != nil {
		return err
	}

	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}
	columns := analyzer.Classifier().Classify(s)

	x, ok := analytics.FindColumn(columns, args[1])
	if !ok {
		return fmt.Errorf("no score column %q in %s", args[1], s.Name)
	}
	y, ok := analytics.FindColumn(columns, args[2])
	if !ok {
		return fmt.Errorf("no score column %q in %s", args[2], s.Name)
	}

	result, err := regression.Regress(x.Values, y.Values)
	if err != nil {
		return fmt.Errorf("regress %s on %s: %w", y.Name, x.Name, err)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("%s = %.4f * %s + %.4f  (n = %d)\n", y.Name, result.Slope, x.Name, result.Intercept, result.N)
	if result.RSquaredDefined {
		fmt.Printf("R² = %.4f\n", result.RSquared)
	} else {
		fmt.Println("R² undefined (no variance in the response)")
	}
	return nil
}
