package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/bankcli/internal/logging"
)

// Config holds runtime settings for the bankcli CLI.
//
// Fields:
//   - ServerURL: base URL of the banking backend.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - RequestTimeout: upper bound for one HTTP request; zero disables it.
//   - DatabasePath: SQLite file holding the session credential.
//   - LogLevel, LogBackend: logger settings (see package logging).
//   - Ephemeral: keep the credential in memory only.
type Config struct {
	ServerURL           string
	OnlineCheckInterval time.Duration
	RequestTimeout      time.Duration
	DatabasePath        string
	LogLevel            string
	LogBackend          string
	Ephemeral           bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8000"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = defaultDatabasePath()
	c.LogLevel = "warn"
	c.LogBackend = logging.BackendSlog
	c.Ephemeral = false
}

func defaultDatabasePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "bankcli.db"
	}
	return filepath.Join(dir, "bankcli", "bankcli.db")
}

// LoadConfig constructs a Config from defaults, the environment (including
// an optional .env file), a JSON file and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:], ".env")
}

func load(args []string, envFile string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg, envFile)
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}

var (
	validLevels   = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	validBackends = map[string]bool{logging.BackendSlog: true, logging.BackendLogrus: true}
)

// Validate reports every problem with c at once.
func (c *Config) Validate() error {
	var problems []string

	if u, err := url.Parse(c.ServerURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		problems = append(problems, fmt.Sprintf("invalid server url %q: must be an absolute http(s) URL", c.ServerURL))
	}
	if c.OnlineCheckInterval < time.Second {
		problems = append(problems, fmt.Sprintf("invalid online check interval %v: must be at least 1 second", c.OnlineCheckInterval))
	}
	if c.RequestTimeout < 0 {
		problems = append(problems, fmt.Sprintf("invalid request timeout %v: must not be negative", c.RequestTimeout))
	}
	if !c.Ephemeral && strings.TrimSpace(c.DatabasePath) == "" {
		problems = append(problems, "database path is required unless ephemeral mode is on")
	}
	if !validLevels[strings.ToLower(c.LogLevel)] {
		problems = append(problems, fmt.Sprintf("invalid log level %q", c.LogLevel))
	}
	if !validBackends[c.LogBackend] {
		problems = append(problems, fmt.Sprintf("invalid log backend %q", c.LogBackend))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
