package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/bankcli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend
//	-i int      online check interval in seconds
//	-d string   path of the local SQLite database
//	-l string   log level (debug, info, warn, error)
//
// Arguments other than these are filtered out with flagx.FilterArgs, so -c
// and anything else on the command line do not interfere. It panics on a
// malformed value.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-i", "-d", "-l"})

	fs := flag.NewFlagSet("bankcli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "backend base URL")
	interval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*interval) * time.Second
		}
	})
}
