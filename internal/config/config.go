package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	Log     LogConfig     `mapstructure:"log"`
}

// GeneralConfig holds dialog behaviour configuration
type GeneralConfig struct {
	InitialDirectory string `mapstructure:"initial_directory"`
	ShowHidden       bool   `mapstructure:"show_hidden"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from multiple sources with priority:
// 1. Command line flags (highest)
// 2. Environment variables
// 3. Configuration file
// 4. Defaults (lowest)
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Set environment variable prefix
	v.SetEnvPrefix("FSPICK")
	v.AutomaticEnv()

	// Environment variable mappings
	v.BindEnv("general.initial_directory", "FSPICK_INITIAL_DIRECTORY")
	v.BindEnv("general.show_hidden", "FSPICK_SHOW_HIDDEN")
	v.BindEnv("log.level", "FSPICK_LOG_LEVEL")
	v.BindEnv("log.format", "FSPICK_LOG_FORMAT")

	// Configuration file handling
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("toml")

		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.fspick")
		v.AddConfigPath("/etc/fspick/")
	}

	// Read configuration file if it exists
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is not an error - defaults and env vars apply
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("general.initial_directory", "")
	v.SetDefault("general.show_hidden", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// GetDefaultConfigPath returns the default configuration file path
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./config.toml"
	}
	return filepath.Join(homeDir, ".fspick", "config.toml")
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() error {
	dir := filepath.Dir(GetDefaultConfigPath())
	return os.MkdirAll(dir, 0700)
}
