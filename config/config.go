// Package config loads and saves the CLI configuration. Engine defaults
// live with their packages; this file only carries the host-level knobs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// HeuristicsFile points at a YAML locale pack for column-name rules;
	// empty means built-in defaults.
	HeuristicsFile string `mapstructure:"heuristics_file" yaml:"heuristics_file"`

	// Distribution knobs.
	BinCount       int     `mapstructure:"bin_count" yaml:"bin_count"`
	OutlierK       float64 `mapstructure:"outlier_k" yaml:"outlier_k"`
	ExcellentRatio float64 `mapstructure:"excellent_ratio" yaml:"excellent_ratio"`
	PassRatio      float64 `mapstructure:"pass_ratio" yaml:"pass_ratio"`

	// SeriesLimit is the display downsampling budget.
	SeriesLimit int `mapstructure:"series_limit" yaml:"series_limit"`
}

// Default returns the documented defaults.
func Default() *Global {
	return &Global{
		BinCount:       10,
		OutlierK:       1.5,
		ExcellentRatio: 0.90,
		PassRatio:      0.60,
		SeriesLimit:    500,
	}
}

// Path resolves the effective config file location: cfgFile itself when
// given, otherwise ~/.gradelens/config.yaml.
func Path(cfgFile string) (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".gradelens", "config.yaml"), nil
}

// Load reads the configuration from cfgFile, or from
// ~/.gradelens/config.yaml when cfgFile is empty. A missing file is not
// an error; defaults apply.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("bin_count", defaults.BinCount)
	v.SetDefault("outlier_k", defaults.OutlierK)
	v.SetDefault("excellent_ratio", defaults.ExcellentRatio)
	v.SetDefault("pass_ratio", defaults.PassRatio)
	v.SetDefault("series_limit", defaults.SeriesLimit)

	path, err := Path(cfgFile)
	if err != nil {
		return nil, err
	}
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	c := &Global{}
	if err := v.Unmarshal(c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// Save writes the configuration to cfgFile, or to the default path when
// cfgFile is empty, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path, err := Path(cfgFile)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
