// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the taskdesk server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - DataDir: directory holding the JSON record collections (file backend).
//   - DatabaseDSN: PostgreSQL DSN (pgx); when set, the postgres backend is
//     used instead of the file backend.
//   - SessionTTL: lifetime of a session cookie.
//   - BcryptCost: bcrypt cost factor for password hashing.
type Config struct {
	EndpointAddr string
	DataDir      string
	DatabaseDSN  string
	SessionTTL   time.Duration
	BcryptCost   int
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DataDir = "data"
	c.DatabaseDSN = ""
	c.SessionTTL = 7 * 24 * time.Hour
	c.BcryptCost = 10
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
