package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "styletree", cfg.Logger.ServiceName)
	assert.False(t, cfg.Render.Lenient)
	assert.Equal(t, int64(8<<20), cfg.Render.MaxInputBytes)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yamlConfig := []byte(`
logger:
  level: debug
  format: json
  log_file: /var/log/styletree.log
render:
  lenient: true
  max_input_bytes: 1024
`)
	require.NoError(t, os.WriteFile(path, yamlConfig, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "/var/log/styletree.log", cfg.Logger.LogFile)
	assert.True(t, cfg.Render.Lenient)
	assert.Equal(t, int64(1024), cfg.Render.MaxInputBytes)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:   "valid config",
			config: Config{Logger: LoggerConfig{Format: "console"}, Render: RenderConfig{MaxInputBytes: 1}},
		},
		{
			name:        "bad logger format",
			config:      Config{Logger: LoggerConfig{Format: "xml"}, Render: RenderConfig{MaxInputBytes: 1}},
			expectError: true,
		},
		{
			name:        "non-positive input cap",
			config:      Config{Logger: LoggerConfig{Format: "json"}},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetDefaultsCoversAllKeys(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	assert.NoError(t, cfg.Validate())
}

func TestSetAndGet(t *testing.T) {
	t.Cleanup(func() { Set(nil) })

	expected := &Config{Logger: LoggerConfig{ServiceName: "set-from-test"}}
	Set(expected)

	assert.Same(t, expected, Get())
}

func TestGetWithoutSetFallsBackToDefaults(t *testing.T) {
	t.Cleanup(func() { Set(nil) })
	Set(nil)

	cfg := Get()
	require.NotNil(t, cfg)
	assert.Equal(t, "styletree", cfg.Logger.ServiceName)
}
