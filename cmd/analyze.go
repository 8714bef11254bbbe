package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/gradelens/gradelens/analytics"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Produce a full report for every table in a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	sheets, err := readSheets(args[0])
	if err != nil {
		return err
	}

	analyzer, err := newAnalyzer()
	if err != nil {
		return err
	}

	reports := make([]*analytics.Report, 0, len(sheets))
	for _, s := range sheets {
		reports = append(reports, analyzer.Report(s))
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	for _, r := range reports {
		printReport(r)
	}
	return nil
}

func printReport(r *analytics.Report) {
	fmt.Printf("\n%s — %d rows, %d score columns\n", r.Sheet, r.Rows, len(r.Columns))
	if len(r.Columns) == 0 {
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Column", "Count", "Avg", "Min", "Max", "Excellent", "Pass", "Fail"})
	for _, col := range r.Columns {
		excellent, pass, fail := "-", "-", "-"
		if col.Pass != nil {
			excellent = strconv.Itoa(col.Pass.Excellent)
			pass = strconv.Itoa(col.Pass.Pass)
			fail = strconv.Itoa(col.Pass.Fail)
		}
		table.Append([]string{
			col.Name,
			strconv.Itoa(col.Count),
			formatScore(col.Average),
			formatScore(col.Min),
			formatScore(col.Max),
			excellent,
			pass,
			fail,
		})
	}
	table.Render()

	printGrades(r)
	printClassAverages(r)
}

func printGrades(r *analytics.Report) {
	table := tablewriter.NewWriter(os.Stdout)
	header := []string{"Column"}
	labels := gradeLabels(r)
	header = append(header, labels...)
	table.SetHeader(header)

	for _, col := range r.Columns {
		row := []string{col.Name}
		for _, label := range labels {
			row = append(row, strconv.Itoa(col.Grades[label]))
		}
		table.Append(row)
	}
	table.Render()
}

// gradeLabels collects every label seen across columns in a stable
// order so the grade table has a consistent header.
func gradeLabels(r *analytics.Report) []string {
	seen := make(map[string]bool)
	for _, col := range r.Columns {
		for label := range col.Grades {
			seen[label] = true
		}
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func printClassAverages(r *analytics.Report) {
	if len(r.ClassAverages) == 0 {
		return
	}

	classes := make([]string, 0, len(r.ClassAverages))
	for label := range r.ClassAverages {
		classes = append(classes, label)
	}
	sort.Strings(classes)

	table := tablewriter.NewWriter(os.Stdout)
	header := []string{"Class"}
	for _, col := range r.Columns {
		header = append(header, col.Name)
	}
	table.SetHeader(header)

	for _, class := range classes {
		row := []string{class}
		for _, col := range r.Columns {
			if avg, ok := r.ClassAverages[class][col.Name]; ok {
				row = append(row, formatScore(avg))
			} else {
				row = append(row, "-")
			}
		}
		table.Append(row)
	}
	table.Render()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
