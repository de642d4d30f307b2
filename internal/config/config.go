// Package config provides functionality for loading environment files and the
// Viper-based application configuration.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// EnvFile is the dotenv file looked up in the working directory and its parent.
const EnvFile = ".env"

// LoadEnv loads variables from a .env file in the current or parent directory, if
// one exists, and returns the path that was loaded. Variables already set in the
// process environment are not overridden.
func LoadEnv() (string, error) {
	for _, candidate := range []string{EnvFile, filepath.Join("..", EnvFile)} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		if err := godotenv.Load(candidate); err != nil {
			return candidate, err
		}
		return candidate, nil
	}
	return "", nil
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
