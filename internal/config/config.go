package config

import "time"

// Config holds runtime settings for the Datarium CLI.
//
// Fields:
//   - DatabaseDSN: path of the local SQLite database file.
//   - SignInDelay: artificial pause applied to sign-in attempts to mimic a
//     network round trip. Purely cosmetic.
//   - LogLevel: minimum level emitted by the logger (debug, info, warn, error).
type Config struct {
	DatabaseDSN string
	SignInDelay time.Duration
	LogLevel    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "datarium.db"
	c.SignInDelay = 1 * time.Second
	c.LogLevel = "info"
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
