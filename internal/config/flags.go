package config

import (
	"flag"
	"os"

	"github.com/dsakiyama/motopatio/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-dir string  data directory under the working directory
//	-d string    SQLite database file name (default from Config)
//	-l string    log level: debug, info, warn, error
//
// os.Args is filtered to the flags handled here so the JSON-config flags
// parsed elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-dir", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "dir", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.DatabaseFile, "d", cfg.DatabaseFile, "sqlite database file name")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
