package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "roboadvisor.yaml", `
server:
  port: "9090"
log:
  level: debug
  format: json
max_slot_size: 128
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 128, cfg.MaxSlotSize)
}

func TestLoad_JSONKeepsUnsetDefaults(t *testing.T) {
	path := writeFile(t, "roboadvisor.json", `{"log": {"level": "warn", "format": "text"}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 4096, cfg.MaxSlotSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeFile(t, "roboadvisor.yaml", "server:\n  port: \"9090\"\n")
	t.Setenv(EnvPort, "7070")
	t.Setenv(EnvLogFormat, "json")
	t.Setenv(EnvMaxSlotSize, "64")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 64, cfg.MaxSlotSize)

	t.Setenv(EnvMaxSlotSize, "big")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":   "server: [",
		"bad port":   "server:\n  port: http\n",
		"bad format": "log:\n  format: xml\n",
		"bad size":   "max_slot_size: 0\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, "roboadvisor.yaml", content))
			assert.Error(t, err)
		})
	}
}
