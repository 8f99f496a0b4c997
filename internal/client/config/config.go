// Package config loads runtime configuration for the accountkeeper CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c/-config or $CONFIG.
//  3. Command-line flags:
//
//	-a string   address:port of the account server
//	-s string   directory holding the saved session
//	-w int      per-request timeout (seconds)
//
// The JSON file uses timex.Duration, so the timeout may be "5s" or integer
// nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "session_dir": "/home/alice/.accountkeeper",
//	  "request_timeout": "5s"
//	}
package config

import (
	"os"
	"path/filepath"
	"time"
)

// SessionDirName is the default session directory below the home directory.
const SessionDirName = ".accountkeeper"

// Config holds runtime settings for the CLI.
type Config struct {
	ServerEndpointAddr string
	SessionDir         string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.SessionDir = defaultSessionDir()
	c.RequestTimeout = 5 * time.Second
}

func defaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return SessionDirName
	}
	return filepath.Join(home, SessionDirName)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
