package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var validFormats = map[string]bool{
	"text": true,
	"json": true,
}

// Validate checks the configuration for invalid values. The initial
// directory is deliberately not checked here: a missing directory is a
// recoverable condition the dialog handles at open time.
func Validate(cfg *Config) error {
	if _, err := logrus.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	if !validFormats[cfg.Log.Format] {
		return fmt.Errorf("invalid log format %q: must be text or json", cfg.Log.Format)
	}

	return nil
}
