package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DefsPath string // hcl files or a directory of them

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DefsPath == "" {
		return nil, errors.New("DefsPath is a required configuration field and cannot be empty")
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	return &cfg, nil
}
