// Package cmd implements the gradelens command line interface.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gradelens/gradelens/algorithms/distribution"
	"github.com/gradelens/gradelens/analytics"
	"github.com/gradelens/gradelens/config"
	"github.com/gradelens/gradelens/ingest"
	"github.com/gradelens/gradelens/logging"
	"github.com/gradelens/gradelens/sheet"
)

var (
	cfgFile        string
	heuristicsFile string
	worksheet      string
	jsonOut        bool
	debug          bool

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gradelens",
	Short: "Score sheet analytics",
	Long: `gradelens ingests score sheets (CSV, XLSX or exported JSON history),
classifies their numeric columns and produces distribution, ranking,
grade and correlation analytics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	cobra.OnInitialize(initConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.gradelens/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&heuristicsFile, "heuristics", "", "YAML locale pack overriding column-name heuristics")
	rootCmd.PersistentFlags().StringVar(&worksheet, "worksheet", "", "restrict XLSX ingestion to one worksheet")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit reports as JSON instead of tables")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func initConfig() {
	if debug {
		logging.SetLevel(logging.DebugLevel)
	}

	loaded, err := config.Load(cfgFile)
	if err != nil {
		logging.Warn("config unreadable, using defaults", logging.Fields{
			"error": err.Error(),
		})
		return
	}
	cfg = loaded
}

// newAnalyzer builds the engine from the effective configuration. The
// --heuristics flag wins over the config file's heuristics_file entry.
func newAnalyzer() (*analytics.Analyzer, error) {
	path := cfg.HeuristicsFile
	if heuristicsFile != "" {
		path = heuristicsFile
	}

	var h *analytics.Heuristics
	if path != "" {
		loaded, err := analytics.LoadHeuristics(path)
		if err != nil {
			return nil, fmt.Errorf("load heuristics: %w", err)
		}
		h = loaded
	}

	a := analytics.NewAnalyzerWithHeuristics(h)

	dist := distribution.DefaultConfig()
	dist.BinCount = cfg.BinCount
	dist.OutlierK = cfg.OutlierK
	dist.ExcellentRatio = cfg.ExcellentRatio
	dist.PassRatio = cfg.PassRatio
	a.SetDistributionConfig(dist)
	a.SetSeriesLimit(cfg.SeriesLimit)
	return a, nil
}

// readSheets dispatches on file extension. JSON history tables sharing a
// header are merged into one sheet before analysis.
func readSheets(path string) ([]*sheet.Sheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return ingest.ReadCSV(path)
	case ".xlsx", ".xlsm":
		return ingest.ReadXLSX(path, worksheet)
	case ".json":
		sheets, err := ingest.ReadJSON(path)
		if err != nil {
			return nil, err
		}
		return ingest.Merge(sheets), nil
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(path))
	}
}

// firstSheet is for the two-column commands, which operate on a single
// table. Extra tables are reported so the user can split the file.
func firstSheet(path string) (*sheet.Sheet, error) {
	sheets, err := readSheets(path)
	if err != nil {
		return nil, err
	}
	if len(sheets) > 1 {
		logging.Warn("file holds multiple tables, using the first", logging.Fields{
			"file":   path,
			"tables": len(sheets),
			"using":  sheets[0].Name,
		})
	}
	return sheets[0], nil
}
