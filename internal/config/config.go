package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Paths   PathsConfig   `mapstructure:"paths"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SearchConfig contains resolution/scan configuration
type SearchConfig struct {
	// ExtraDirs are additional directories scanned by the common-path tier,
	// after the platform's built-in list.
	ExtraDirs []string `mapstructure:"extra_dirs"`
	// ExcludeDirs are additional directories pruned from the full-tree scan.
	ExcludeDirs []string `mapstructure:"exclude_dirs"`
	// FullScan enables the full filesystem tier.
	FullScan bool `mapstructure:"full_scan"`
}

// PathsConfig contains path-related configuration
type PathsConfig struct {
	// LogFile enables file logging when set. Empty means console only, so a
	// plain run never writes to disk.
	LogFile string `mapstructure:"log_file"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	Color string `mapstructure:"color"`
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	// Set config name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	// Add config paths
	homeDir, err := os.UserHomeDir()
	if err == nil {
		viper.AddConfigPath(filepath.Join(homeDir, ".config", "gopen"))
	}
	viper.AddConfigPath(".")

	// Set defaults
	setDefaults()

	// Environment variable overrides
	viper.SetEnvPrefix("GOPEN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file not found - use defaults
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	// Expand paths
	cfg.Paths.LogFile = expandPath(cfg.Paths.LogFile)
	for i, dir := range cfg.Search.ExtraDirs {
		cfg.Search.ExtraDirs[i] = expandPath(dir)
	}
	for i, dir := range cfg.Search.ExcludeDirs {
		cfg.Search.ExcludeDirs[i] = expandPath(dir)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("search.extra_dirs", []string{})
	viper.SetDefault("search.exclude_dirs", []string{})
	viper.SetDefault("search.full_scan", true)

	viper.SetDefault("paths.log_file", "")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.color", "auto")
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if path == "" {
		return path
	}

	// Expand ~
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	// Expand environment variables
	path = os.ExpandEnv(path)

	return path
}
