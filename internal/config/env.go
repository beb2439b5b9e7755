package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the quote section of the config file.
const (
	EnvQuoteEndpoint = "TYPETEST_QUOTE_ENDPOINT"
	EnvQuoteAPIKey   = "TYPETEST_QUOTE_API_KEY"
)

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides quote settings with non-empty environment variables.
func ApplyEnv(cfg *FileConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvQuoteEndpoint)); v != "" {
		cfg.Quote.Endpoint = &v
	}
	if v := strings.TrimSpace(os.Getenv(EnvQuoteAPIKey)); v != "" {
		cfg.Quote.APIKey = &v
	}
}
