package config

import (
	"encoding/json"
	"os"

	"github.com/dsakiyama/motopatio/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON config file.
type JsonConfig struct {
	DataDir      string `json:"data_dir"`
	DatabaseFile string `json:"database_file"`
	LogLevel     string `json:"log_level"`
}

// parseJson overlays cfg with values from the file named by -c/-config.
// Absent file path means no overlay. Read or decode failures panic, since
// an explicitly requested config file that cannot be used is a startup
// defect, not a runtime condition.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
