// Package config loads glasstheme settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. GLASSTHEME_LOGGING_LEVEL.
const EnvPrefix = "GLASSTHEME"

// Config is the resolved configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Convert ConvertConfig `mapstructure:"convert"`
	History HistoryConfig `mapstructure:"history"`
}

// LoggingConfig controls diagnostics written to stderr.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls the rendered stylesheet.
type OutputConfig struct {
	Tailwind bool `mapstructure:"tailwind"`
	Resolve  bool `mapstructure:"resolve"`
}

// ConvertConfig controls converter selection.
type ConvertConfig struct {
	Variant string `mapstructure:"variant"`
}

// HistoryConfig controls the generated-theme history store.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "warn", Format: "console"},
		Convert: ConvertConfig{Variant: "auto"},
		History: HistoryConfig{Path: defaultHistoryPath()},
	}
}

// ConfigDir returns the directory searched for config.yaml.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "glasstheme")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "glasstheme")
	}
	return ""
}

func defaultHistoryPath() string {
	if dir := ConfigDir(); dir != "" {
		return filepath.Join(dir, "history.db")
	}
	return "glasstheme-history.db"
}

// New creates a viper instance with defaults, env binding and the config
// file location applied. An explicit path must exist; the default location
// is optional.
func New(configFile string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir := ConfigDir(); dir != "" {
			v.AddConfigPath(dir)
		}
	}
	return v
}

func setDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.format", defaults.Logging.Format)

	v.SetDefault("output.tailwind", defaults.Output.Tailwind)
	v.SetDefault("output.resolve", defaults.Output.Resolve)

	v.SetDefault("convert.variant", defaults.Convert.Variant)

	v.SetDefault("history.enabled", defaults.History.Enabled)
	v.SetDefault("history.path", defaults.History.Path)
}

// Load reads the config file, if any, and decodes the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}
