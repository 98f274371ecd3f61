package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewFile(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Level = "debug"
	cfg.FileName = filepath.Join(dir, "ee.log")
	cfg.Compress = false

	log, err := New(cfg)
	require.NoError(t, err)
	log.Debug("evaluated", zap.String("expr", "1+2"))
	require.NoError(t, log.Sync())

	b, err := os.ReadFile(cfg.FileName)
	require.NoError(t, err)
	var rec map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &rec))
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "evaluated", rec["msg"])
	assert.Equal(t, "1+2", rec["expr"])
	assert.Contains(t, rec, "time")
}

func TestNewLevelFilters(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.Level = "WARN"
	cfg.FileName = filepath.Join(dir, "ee.log")

	log, err := New(cfg)
	require.NoError(t, err)
	log.Info("dropped")
	require.NoError(t, log.Sync())

	b, _ := os.ReadFile(cfg.FileName)
	assert.Empty(t, b)
}

func TestNewNop(t *testing.T) {
	cases := []struct {
		name string
		cfg  *Config
	}{
		{"nil", nil},
		{"no outputs", DefaultConfig()},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			log, err := New(c.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.False(t, log.Core().Enabled(zap.ErrorLevel))
		})
	}
}

func TestNewBadLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Level = "loud"
	_, err := New(cfg)
	assert.Error(t, err)
}
