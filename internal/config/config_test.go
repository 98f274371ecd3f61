package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soniafriesen/expreval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cases := []struct {
		name string
		path string
	}{
		{"no file", ""},
		{"missing file", filepath.Join(t.TempDir(), "absent.yaml")},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			cfg, err := Load(c.path)
			require.NoError(t, err)
			assert.Equal(t, uint(expreval.DefaultPrec), cfg.Precision)
			assert.Equal(t, expreval.DefaultDigits, cfg.Digits)
			assert.True(t, cfg.Color)
			require.NotNil(t, cfg.Log)
			assert.Equal(t, "INFO", cfg.Log.Level)
			assert.Empty(t, cfg.Log.FileName)
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ee.yaml")
	src := `precision: 128
digits: 20
historyfile: /tmp/hist
color: false
log:
  level: debug
  filename: /tmp/ee.log
  console: true
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint(128), cfg.Precision)
	assert.Equal(t, 20, cfg.Digits)
	assert.Equal(t, "/tmp/hist", cfg.HistoryFile)
	assert.False(t, cfg.Color)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/ee.log", cfg.Log.FileName)
	assert.True(t, cfg.Log.Console)
	// Unset keys keep their defaults.
	assert.Equal(t, 5, cfg.Log.MaxBackups)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("EE_PRECISION", "256")
	t.Setenv("EE_LOG_LEVEL", "ERROR")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, uint(256), cfg.Precision)
	assert.Equal(t, "ERROR", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("precision: [1, 2\n"), 0o600))
	neg := filepath.Join(dir, "neg.yaml")
	require.NoError(t, os.WriteFile(neg, []byte("digits: -1\n"), 0o600))

	cases := []struct {
		name string
		path string
	}{
		{"malformed", bad},
		{"negative digits", neg},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(c.path)
			assert.Error(t, err)
		})
	}
}
