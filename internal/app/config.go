package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	RecipePath string // .hcl file or directory of .hcl files

	LogFormat string
	LogLevel  string

	Workers     int
	Seed        int64 // 0 means derive from the clock; recipe seed wins over 0
	OutputDir   string
	ScratchRoot string // parent for the per-run scratch directory
	KeepScratch bool

	AtomskBin    string
	GenamorphBin string
}

// NewConfig validates a Config and applies defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RecipePath == "" {
		return nil, errors.New("RecipePath is a required configuration field and cannot be empty")
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.AtomskBin == "" {
		cfg.AtomskBin = "atomsk"
	}
	if cfg.GenamorphBin == "" {
		cfg.GenamorphBin = "genamorph"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	return &cfg, nil
}
