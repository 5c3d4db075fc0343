package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the long flag names. Unset keys leave flag defaults in
// place; flags given on the command line always win.
type fileConfig struct {
	UnderscoredHeadings *bool   `yaml:"underscored_headings"`
	ReferenceLinks      *bool   `yaml:"reference_links"`
	MinReferenceLength  *int    `yaml:"min_reference_length"`
	Color               *string `yaml:"color"`
	Wrap                *bool   `yaml:"wrap"`
	Width               *int    `yaml:"width"`
	Theme               *string `yaml:"theme"`
	OSC8                *string `yaml:"osc8"`
	Encoding            *string `yaml:"encoding"`
	Strict              *bool   `yaml:"strict"`
	LogLevel            *string `yaml:"log_level"`
	LogJSON             *bool   `yaml:"log_json"`
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "html2mark", "config.yaml")
}

// loadConfig reads the YAML config named by --config, or the default config
// file when it exists, and applies it to every flag not set explicitly. It
// returns the path of the file applied, or "" when there was none.
func loadConfig(flags *pflag.FlagSet, opts *options) (string, error) {
	path := opts.configPath
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return "", nil
		}
	}
	data, err := os.ReadFile(normalizePath(path))
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	applyConfig(flags, cfg, opts)
	return path, nil
}

func applyConfig(flags *pflag.FlagSet, cfg fileConfig, opts *options) {
	setBool(flags, "underscored-headings", cfg.UnderscoredHeadings, &opts.underscored)
	setBool(flags, "reference-links", cfg.ReferenceLinks, &opts.references)
	setInt(flags, "min-reference-length", cfg.MinReferenceLength, &opts.minRefLength)
	setString(flags, "color", cfg.Color, &opts.color)
	setBool(flags, "wrap", cfg.Wrap, &opts.wrap)
	setInt(flags, "width", cfg.Width, &opts.width)
	setString(flags, "theme", cfg.Theme, &opts.theme)
	setString(flags, "osc8", cfg.OSC8, &opts.osc8)
	setString(flags, "encoding", cfg.Encoding, &opts.encoding)
	setBool(flags, "strict", cfg.Strict, &opts.strict)
	setString(flags, "log-level", cfg.LogLevel, &opts.logLevel)
	setBool(flags, "log-json", cfg.LogJSON, &opts.logJSON)
}

func setBool(flags *pflag.FlagSet, name string, v *bool, dst *bool) {
	if v != nil && !flags.Changed(name) {
		*dst = *v
	}
}

func setInt(flags *pflag.FlagSet, name string, v *int, dst *int) {
	if v != nil && !flags.Changed(name) {
		*dst = *v
	}
}

func setString(flags *pflag.FlagSet, name string, v *string, dst *string) {
	if v != nil && !flags.Changed(name) {
		*dst = *v
	}
}
