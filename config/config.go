// Package config holds the settings of one astgen invocation.
//
// Settings come only from command-line flags, read through viper so every
// command resolves defaults and flag values the same way. There are no
// environment variables and no config files: the family registry lives in
// source.
package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/teranos/astgen/errors"
	"github.com/teranos/astgen/render"
)

// Config is the resolved invocation settings
type Config struct {
	// Root is the directory registry destinations are relative to
	Root string `mapstructure:"root"`

	// Verbose is the -v count
	Verbose int `mapstructure:"verbose"`

	// JSONLogs switches log output to JSON
	JSONLogs bool `mapstructure:"json_logs"`

	// Format is the describe output format
	Format string `mapstructure:"format"`
}

// flagKeys maps viper keys to flag names
var flagKeys = map[string]string{
	"root":      "root",
	"verbose":   "verbose",
	"json_logs": "json-logs",
	"format":    "format",
}

// SetDefaults registers the default of every key
func SetDefaults(v *viper.Viper) {
	v.SetDefault("root", ".")
	v.SetDefault("verbose", 0)
	v.SetDefault("json_logs", false)
	v.SetDefault("format", render.FormatYAML)
}

// BindFlags binds every known flag present in flags. Commands define only
// the flags they use, so absent flags are skipped.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "failed to bind flag --%s", name)
		}
	}
	return nil
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	cfg.Format = strings.ToLower(cfg.Format)
	return &cfg, nil
}

// Load resolves flags into a Config: defaults, then flag values, then validation
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	SetDefaults(v)
	if err := BindFlags(v, flags); err != nil {
		return nil, err
	}
	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Root) == "" {
		return errors.WithHint(errors.New("root directory must not be empty"), "use --root . for the current directory")
	}
	if c.Verbose < 0 {
		return errors.Newf("verbosity must not be negative, got %d", c.Verbose)
	}
	if !slices.Contains(render.Formats, c.Format) {
		return errors.WithHint(
			errors.Newf("unknown format %q", c.Format),
			fmt.Sprintf("valid formats: %s", strings.Join(render.Formats, ", ")),
		)
	}
	return nil
}
