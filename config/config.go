package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

type Config struct {
	Env          string `validate:"required"`
	LogLevel     string `validate:"oneof=debug info warn error"`
	OutputFormat string `validate:"oneof=json yaml"`
	StripMarkup  bool
}

func Default() Config {
	return Config{
		Env:          "dev",
		LogLevel:     "info",
		OutputFormat: OutputJSON,
	}
}

// FromEnv reads APP_ENV, LOG_LEVEL, OUTPUT_FORMAT and STRIP_MARKUP on top of
// the defaults.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Env = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = strings.ToLower(v)
	}
	if v := os.Getenv("STRIP_MARKUP"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("config error: STRIP_MARKUP must be a boolean: %w", err)
		}
		cfg.StripMarkup = b
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
