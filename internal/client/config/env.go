package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvServerURL           = "BANKCLI_SERVER_URL"
	EnvOnlineCheckInterval = "BANKCLI_ONLINE_CHECK_INTERVAL"
	EnvRequestTimeout      = "BANKCLI_REQUEST_TIMEOUT"
	EnvDatabasePath        = "BANKCLI_DB_PATH"
	EnvLogLevel            = "BANKCLI_LOG_LEVEL"
	EnvLogBackend          = "BANKCLI_LOG_BACKEND"
	EnvEphemeral           = "BANKCLI_EPHEMERAL"
)

// parseEnv overlays cfg with BANKCLI_* variables. envFile, when it exists,
// is loaded first with godotenv; variables already set in the process
// environment win over the file. Malformed values are ignored.
func parseEnv(cfg *Config, envFile string) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	cfg.ServerURL = getEnv(EnvServerURL, cfg.ServerURL)
	cfg.OnlineCheckInterval = getEnvDuration(EnvOnlineCheckInterval, cfg.OnlineCheckInterval)
	cfg.RequestTimeout = getEnvDuration(EnvRequestTimeout, cfg.RequestTimeout)
	cfg.DatabasePath = getEnv(EnvDatabasePath, cfg.DatabasePath)
	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogBackend = getEnv(EnvLogBackend, cfg.LogBackend)
	cfg.Ephemeral = getEnvBool(EnvEphemeral, cfg.Ephemeral)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
