// Package config provides Viper-based hierarchical configuration management
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"fjacquet/ccstmt-csv/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// CCSTMT_OUTPUT_FORMAT=xlsx.
const EnvPrefix = "CCSTMT"

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Output struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
		Format    string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"output" yaml:"output"`

	PDF struct {
		Engine string `mapstructure:"engine" yaml:"engine"`
	} `mapstructure:"pdf" yaml:"pdf"`

	Parser struct {
		MinBlockLength int    `mapstructure:"min_block_length" yaml:"min_block_length"`
		PatternsFile   string `mapstructure:"patterns_file" yaml:"patterns_file"`
	} `mapstructure:"parser" yaml:"parser"`

	Server struct {
		Address     string `mapstructure:"address" yaml:"address"`
		MaxUploadMB int    `mapstructure:"max_upload_mb" yaml:"max_upload_mb"`
	} `mapstructure:"server" yaml:"server"`
}

// DelimiterRune returns the configured CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return r
}

// InitializeConfig loads configuration with hierarchical precedence:
// defaults, then config.yaml (configFile when given, otherwise searched in
// $HOME/.ccstmt-csv, .ccstmt-csv and .), then CCSTMT_* environment variables.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.ccstmt-csv")
		v.AddConfigPath(".ccstmt-csv")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file. Only an explicitly requested file is mandatory.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if !errors.As(err, &notFound) {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("data.directory", "data")
	v.SetDefault("output.directory", "output")
	v.SetDefault("output.format", "csv")

	v.SetDefault("pdf.engine", "library")

	v.SetDefault("parser.min_block_length", 30)
	v.SetDefault("parser.patterns_file", "")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.max_upload_mb", 32)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if utf8.RuneCountInString(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if err := validation.IsValidOutputFormat(config.Output.Format); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}

	switch strings.ToLower(config.PDF.Engine) {
	case "library", "pdftotext":
	default:
		return fmt.Errorf("invalid pdf engine: %s (must be 'library' or 'pdftotext')", config.PDF.Engine)
	}

	if config.Parser.MinBlockLength < 0 {
		return fmt.Errorf("parser.min_block_length must not be negative, got: %d", config.Parser.MinBlockLength)
	}

	if config.Server.MaxUploadMB < 1 || config.Server.MaxUploadMB > 1024 {
		return fmt.Errorf("server.max_upload_mb must be between 1 and 1024, got: %d", config.Server.MaxUploadMB)
	}

	return nil
}
