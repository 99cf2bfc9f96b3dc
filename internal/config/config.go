package config

import (
	"os"
	"path/filepath"

	"fjacquet/chat-txn/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from the first .env file found in the
// current or parent directory. Variables already set are not overridden.
// It returns the file loaded, or "" when there was none.
func LoadEnv(logger logging.Logger) string {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			logger.WithError(err).Warn("Error loading .env file", logging.F(logging.FieldFilePath, envFile))
			return ""
		}
		logger.Debug("Loaded environment variables", logging.F(logging.FieldFilePath, envFile))
		return envFile
	}
	return ""
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
