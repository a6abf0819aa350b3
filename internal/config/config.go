package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// RestorePolicy decides what happens to malformed records when a snapshot is loaded.
type RestorePolicy string

const (
	// RestoreStrict skips records with missing fields and reports how many were skipped.
	RestoreStrict RestorePolicy = "strict"
	// RestorePermissive keeps every record, filling absent fields with zero values.
	RestorePermissive RestorePolicy = "permissive"
)

// Config holds all application configuration.
type Config struct {
	LogLevel        string
	LogFormat       string
	DataDir         string
	DefaultFile     string
	RestorePolicy   RestorePolicy
	CollationLocale string
	Prompt          string
	SeedCount       int
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		LogLevel:        getEnv("LOG_LEVEL", "warn"),
		LogFormat:       getEnv("LOG_FORMAT", "pretty"),
		DataDir:         getEnv("DATA_DIR", "."),
		DefaultFile:     getEnv("DEFAULT_FILE", "students.json"),
		RestorePolicy:   parseRestorePolicy(getEnv("RESTORE_POLICY", string(RestoreStrict))),
		CollationLocale: getEnv("COLLATION_LOCALE", "en"),
		Prompt:          getEnv("PROMPT", "> "),
		SeedCount:       getEnvInt("SEED_COUNT", 50),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseRestorePolicy falls back to strict for anything it does not recognize.
func parseRestorePolicy(raw string) RestorePolicy {
	switch RestorePolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case RestorePermissive:
		return RestorePermissive
	default:
		return RestoreStrict
	}
}
