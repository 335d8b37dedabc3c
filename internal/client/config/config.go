package config

import "time"

// Config holds runtime settings for the examtrainer CLI.
//
// Fields:
//   - APIBaseURL: origin of the remote REST API.
//   - RequestTimeout: per-request timeout for API calls.
//   - DatabasePath: path of the local sqlite database holding the session
//     token.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:4000"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "examtrainer.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
