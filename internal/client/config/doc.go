// Package config loads runtime configuration for the bankcli CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: BANKCLI_* variables, with an optional .env file loaded
//     through godotenv. Variables already set in the process win over the
//     file.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL
//	-i int      online status check interval (seconds)
//	-d string   local database path
//	-l string   log level
//
// # JSON schema
//
// Intervals use timex.Duration, so values can be strings like "3s" or
// integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "online_check_interval": "3s",
//	  "request_timeout": "15s",
//	  "database_path": "/home/me/.config/bankcli/bankcli.db",
//	  "log_level": "warn",
//	  "log_backend": "logrus",
//	  "ephemeral": false
//	}
//
// Call (*Config).Validate after loading; it lists every problem found.
package config
