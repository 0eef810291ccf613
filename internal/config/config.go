// Package config loads runtime settings for the CLI.
package config

// Config holds runtime settings.
//
// Fields:
//   - DataDir: subdirectory (under the working directory) for local data.
//   - DatabaseFile: SQLite file name inside DataDir.
//   - LogLevel: debug | info | warn | error.
type Config struct {
	DataDir      string
	DatabaseFile string
	LogLevel     string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "dados"
	c.DatabaseFile = "patio.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file was given) and command-line flags. Later
// sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
