package config

import (
	"os"
	"path/filepath"

	"fjacquet/ccstmt-csv/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file in the working directory or its
// parent, if one exists. Variables already set in the environment win.
func LoadEnv(logger logging.Logger) string {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			logger.Debug("No .env file found, using environment variables")
			return ""
		}
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.WithError(err).Warn("Error loading .env file",
			logging.Field{Key: logging.FieldFile, Value: envFile})
		return ""
	}
	logger.Debug("Loaded environment variables",
		logging.Field{Key: logging.FieldFile, Value: envFile})
	return envFile
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// NewLogger builds the application logger from the log section.
func NewLogger(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
