// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/lsp-message-codec/src/jsonvalue"
	"github.com/H0llyW00dzZ/lsp-message-codec/src/logger"
	"gopkg.in/yaml.v3"
)

// ConfigEnv names the environment variable consulted when --config is empty.
const ConfigEnv = "LSPCODEC_CONFIG_FILE"

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config represents the lspcodec configuration structure.
//
// The configuration can be loaded from a JSON or YAML file given by --config
// or the LSPCODEC_CONFIG_FILE environment variable, with defaults applied for
// any missing values.
// Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Codec: Limits applied while parsing input documents
	Codec struct {
		// MaxDepth: Deepest array/object nesting accepted
		MaxDepth int `json:"maxDepth" yaml:"maxDepth"`
		// MaxBytes: Largest document accepted, in bytes
		MaxBytes int64 `json:"maxBytes" yaml:"maxBytes"`
	} `json:"codec" yaml:"codec"`

	// Log: Diagnostic output written to stderr
	Log struct {
		// Format: "text" or "json"
		Format string `json:"format" yaml:"format"`
		// Silent: Suppresses diagnostics entirely
		Silent bool `json:"silent" yaml:"silent"`
	} `json:"log" yaml:"log"`
}

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() *Config {
	config := &Config{}
	config.Codec.MaxDepth = jsonvalue.DefaultMaxDepth
	config.Codec.MaxBytes = jsonvalue.DefaultMaxBytes
	config.Log.Format = logger.FormatText
	return config
}

// detectConfigFormat determines the configuration file format based on file extension.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// LoadConfig loads lspcodec configuration from a JSON or YAML file or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: Error if the file cannot be read or parsed, or names an unknown log format
//
// Configuration Priority:
//  1. Default values are set
//  2. LSPCODEC_CONFIG_FILE environment variable is checked if configPath is empty
//  3. Config file values override defaults (if file exists and is valid)
func LoadConfig(configPath string) (*Config, error) {
	config := defaultConfig()

	if configPath == "" {
		configPath = os.Getenv(ConfigEnv)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}

		// Validate and set defaults for invalid values
		if config.Codec.MaxDepth <= 0 {
			config.Codec.MaxDepth = jsonvalue.DefaultMaxDepth
		}
		if config.Codec.MaxBytes <= 0 {
			config.Codec.MaxBytes = jsonvalue.DefaultMaxBytes
		}
		if config.Log.Format == "" {
			config.Log.Format = logger.FormatText
		}
	}

	switch config.Log.Format {
	case logger.FormatText, logger.FormatJSON:
	default:
		return nil, fmt.Errorf("invalid log format %q: want %q or %q", config.Log.Format, logger.FormatText, logger.FormatJSON)
	}

	return config, nil
}

// ParseOptions returns the jsonvalue limits configured for input documents.
func (c *Config) ParseOptions() []jsonvalue.ParseOption {
	return []jsonvalue.ParseOption{
		jsonvalue.WithMaxDepth(c.Codec.MaxDepth),
		jsonvalue.WithMaxBytes(c.Codec.MaxBytes),
	}
}

// NewLogger returns the configured logger writing to w.
func (c *Config) NewLogger(w io.Writer) (logger.Logger, error) {
	return logger.New(c.Log.Format, w, c.Log.Silent)
}
