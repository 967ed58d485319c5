// Package appconf holds the runtime configuration for the numstr CLI
// and its HTTP server. Values come from defaults, then an optional YAML
// file, then command-line flags, later sources winning.
package appconf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all the configuration settings for the application.
type Config struct {
	// Port is the network port the HTTP API listens on.
	Port int `yaml:"port"`
	// Env names the operating environment (development, staging,
	// production, ...).
	Env string `yaml:"env"`
	// APIKeys lists accepted API keys. Empty means the API requires no
	// key, which suits local use of a spelling service.
	APIKeys []string `yaml:"api_keys"`
	// UseAnd controls the "one hundred and two" conjunction.
	UseAnd bool `yaml:"use_and"`
	// MaxIntegerDigits bounds random integer runs.
	MaxIntegerDigits int `yaml:"max_integer_digits"`
	// MaxDecimalDigits bounds random fractional runs.
	MaxDecimalDigits int `yaml:"max_decimal_digits"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:             4000,
		Env:              "development",
		UseAnd:           true,
		MaxIntegerDigits: 100,
		MaxDecimalDigits: 10,
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}
