package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/bankcli/internal/flagx"
	"github.com/dmitrijs2005/bankcli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals use
// timex.Duration, so they may be strings like "3s" or integer nanoseconds.
// Pointer fields distinguish "absent" from a zero value.
type JsonConfig struct {
	ServerURL           string          `json:"server_url"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	DatabasePath        string          `json:"database_path"`
	LogLevel            string          `json:"log_level"`
	LogBackend          string          `json:"log_backend"`
	Ephemeral           *bool           `json:"ephemeral"`
}

// parseJson overlays cfg with the JSON file named by -c or -config in args.
// Only keys present in the file are applied. It panics when the file cannot
// be read or parsed.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerURL != "" {
		cfg.ServerURL = jc.ServerURL
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogBackend != "" {
		cfg.LogBackend = jc.LogBackend
	}
	if jc.Ephemeral != nil {
		cfg.Ephemeral = *jc.Ephemeral
	}
}
