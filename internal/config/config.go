package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all run options of the converters.
type Config struct {
	Log       LogConfig
	Build     BuildConfig
	Schedules SchedulesConfig
	PHPP      PHPPConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Env   string
	Level string
}

// BuildConfig controls the assembly pipeline.
type BuildConfig struct {
	GroupComponents bool
	WeldVertices    bool
}

// SchedulesConfig controls schedule validation.
type SchedulesConfig struct {
	TargetHours float64
}

// PHPPConfig controls the spreadsheet writer.
type PHPPConfig struct {
	Workbook string
	SaveAs   string
}

// flagKeys maps config keys to the CLI flag that overrides them.
var flagKeys = map[string]string{
	"log.env":                "log-env",
	"log.level":              "log-level",
	"build.group_components": "group-components",
	"build.weld_vertices":    "weld-vertices",
	"schedules.target_hours": "target-hours",
	"phpp.workbook":          "workbook",
	"phpp.save_as":           "save-as",
}

// Load reads configuration from defaults, an optional YAML file at path and
// the given flags, in increasing precedence. Environment variables are not
// consulted. flags may be nil and path may be empty.
func Load(flags *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("log.env", "production")
	v.SetDefault("log.level", "info")
	v.SetDefault("build.group_components", true)
	v.SetDefault("build.weld_vertices", true)
	v.SetDefault("schedules.target_hours", 24.0)
	v.SetDefault("phpp.workbook", "")
	v.SetDefault("phpp.save_as", "")

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		Log: LogConfig{
			Env:   v.GetString("log.env"),
			Level: v.GetString("log.level"),
		},
		Build: BuildConfig{
			GroupComponents: v.GetBool("build.group_components"),
			WeldVertices:    v.GetBool("build.weld_vertices"),
		},
		Schedules: SchedulesConfig{
			TargetHours: v.GetFloat64("schedules.target_hours"),
		},
		PHPP: PHPPConfig{
			Workbook: v.GetString("phpp.workbook"),
			SaveAs:   v.GetString("phpp.save_as"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the options are usable.
func (c *Config) Validate() error {
	switch c.Log.Env {
	case "development", "production", "test":
	default:
		return fmt.Errorf("log.env must be development, production or test, got %q", c.Log.Env)
	}
	if c.Schedules.TargetHours <= 0 {
		return fmt.Errorf("schedules.target_hours must be positive, got %v", c.Schedules.TargetHours)
	}
	return nil
}

// RegisterFlags adds the overridable options to a flag set, with the same
// defaults Load uses.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String("log-env", "production", "log format: development (console) or production (JSON)")
	flags.String("log-level", "info", "minimum log level")
	flags.Bool("group-components", true, "merge components that share an assembly and exposure")
	flags.Bool("weld-vertices", true, "deduplicate coincident vertices")
	flags.Float64("target-hours", 24, "expected total hours of every operating schedule")
	flags.String("workbook", "", "PHPP workbook to write into")
	flags.String("save-as", "", "write the PHPP workbook to this path instead of overwriting it")
}
