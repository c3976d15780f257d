package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/seedmock/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, ok, err := cfg.SeedValue()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, "seedmock.yaml", "seed: 100\nlocale: en\nregistry_capacity: 16\nlog_level: debug\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.RegistryCapacity)

	seed, ok, err := cfg.SeedValue()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint32(100), seed)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, lvl)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "seedmock.yaml", "seed: 100\n")
	t.Setenv("SEEDMOCK_SEED", "7")
	t.Setenv("SEEDMOCK_REGISTRY_CAPACITY", "32")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	seed, _, err := cfg.SeedValue()
	require.NoError(t, err)
	assert.Equal(t, uint32(7), seed)
	assert.Equal(t, 32, cfg.RegistryCapacity)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"capacity", "registry_capacity: 0\n"},
		{"seed", "seed: not-a-number\n"},
		{"negative seed", "seed: -5\n"},
		{"level", "log_level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, "c.yaml", tt.body))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, config.ErrRead)
	assert.ErrorIs(t, err, fs.ErrNotExist, "the file system error stays inspectable")
}
