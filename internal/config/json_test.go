package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := writeConfigFile(t, `{"database_file":"json.db","log_level":"warn"}`)
	withArgs(t, "-c", path)

	cfg := LoadConfig()
	assert.Equal(t, "json.db", cfg.DatabaseFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "dados", cfg.DataDir)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	path := writeConfigFile(t, `{"database_file":"json.db","data_dir":"json-dados"}`)
	withArgs(t, "-c", path, "-d", "flag.db", "-dir", "flag-dados")

	cfg := LoadConfig()
	assert.Equal(t, "flag.db", cfg.DatabaseFile)
	assert.Equal(t, "flag-dados", cfg.DataDir)
}

func TestLoadConfig_MissingJsonFilePanics(t *testing.T) {
	withArgs(t, "-c", filepath.Join(t.TempDir(), "nao-existe.json"))

	assert.Panics(t, func() { LoadConfig() })
}

func TestLoadConfig_BrokenJsonPanics(t *testing.T) {
	path := writeConfigFile(t, `{broken`)
	withArgs(t, "-c", path)

	assert.Panics(t, func() { LoadConfig() })
}
