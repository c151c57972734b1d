package config

import (
	"os"
	"strconv"
)

// Config holds process configuration, populated from the environment with
// sensible defaults for local use.
type Config struct {
	Port        int    // HTTP listen port
	UpstreamURL string // base URL of the upstream show API
	DataDir     string // directory for persisted state (watchlist)
	LogFile     string // rotating log file; empty logs to stderr
}

func Load() Config {
	return Config{
		Port:        envInt("CINEVOXA_PORT", 5000),
		UpstreamURL: envString("CINEVOXA_UPSTREAM_URL", ""),
		DataDir:     envString("CINEVOXA_DATA_DIR", "data"),
		LogFile:     envString("CINEVOXA_LOG_FILE", ""),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
