package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DateStyle selects how the updated-date column is rendered in the
// destination documents. The two historical variants of this tool
// disagreed on this, so it is a config knob rather than a constant.
type DateStyle string

const (
	// DateStyleShort rewrites YYYY-MM-DD dates to MM/DD.
	DateStyleShort DateStyle = "short"
	// DateStyleISO leaves dates exactly as they appear in the source.
	DateStyleISO DateStyle = "iso"
)

// Config holds the sync pipeline configuration loaded from config.yaml.
type Config struct {
	SourcePath          string    `yaml:"source_path"`
	PrimaryPath         string    `yaml:"primary_path"`
	ContinuationPath    string    `yaml:"continuation_path"`
	SectionHeading      string    `yaml:"section_heading"`
	ContinuationHeading string    `yaml:"continuation_heading"`
	HeadCount           int       `yaml:"head_count"`
	DescriptionLimit    int       `yaml:"description_limit"`
	DateStyle           DateStyle `yaml:"date_style"`
	BranchPrefix        string    `yaml:"branch_prefix"`
	CommitMessage       string    `yaml:"commit_message"`
	// CleanIgnore lists file basenames excluded from the working-tree
	// cleanliness check before a sync run.
	CleanIgnore []string `yaml:"clean_ignore"`
}

// DefaultConfig returns the configuration used when no config file is
// present.
func DefaultConfig() Config {
	return Config{
		SourcePath:          "../classified/README.md",
		PrimaryPath:         "README.md",
		ContinuationPath:    "REMAINING.md",
		SectionHeading:      "## All Language",
		ContinuationHeading: "## All Language (continued)",
		HeadCount:           50,
		DescriptionLimit:    100,
		DateStyle:           DateStyleShort,
		BranchPrefix:        "sync/",
		CommitMessage:       "chore: sync ranked repository table",
	}
}

// LoadConfig reads a YAML config file and backfills any unset fields
// with defaults. A missing file is not an error: defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	applyDefaults(&cfg)

	switch cfg.DateStyle {
	case DateStyleShort, DateStyleISO:
	default:
		return cfg, fmt.Errorf("invalid date_style %q (want %q or %q)", cfg.DateStyle, DateStyleShort, DateStyleISO)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.SourcePath == "" {
		cfg.SourcePath = def.SourcePath
	}
	if cfg.PrimaryPath == "" {
		cfg.PrimaryPath = def.PrimaryPath
	}
	if cfg.ContinuationPath == "" {
		cfg.ContinuationPath = def.ContinuationPath
	}
	if cfg.SectionHeading == "" {
		cfg.SectionHeading = def.SectionHeading
	}
	if cfg.ContinuationHeading == "" {
		cfg.ContinuationHeading = def.ContinuationHeading
	}
	if cfg.HeadCount == 0 {
		cfg.HeadCount = def.HeadCount
	}
	if cfg.DescriptionLimit == 0 {
		cfg.DescriptionLimit = def.DescriptionLimit
	}
	if cfg.DateStyle == "" {
		cfg.DateStyle = def.DateStyle
	}
	if cfg.BranchPrefix == "" {
		cfg.BranchPrefix = def.BranchPrefix
	}
	if cfg.CommitMessage == "" {
		cfg.CommitMessage = def.CommitMessage
	}
}
