package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
animation_ms = 150
easing = "smoothstep"
threshold_cells = 2

[[items]]
name = "One"
color = "#111111"

[[items]]
name = "Two"
color = "#222222"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 150*time.Millisecond, cfg.duration())
	assert.Equal(t, 2, cfg.ThresholdCells)
	require.Len(t, cfg.Items, 2)
	assert.Equal(t, "Two", cfg.Items[1].Name)
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config)
		wantOK bool
	}{
		{"defaults", func(c *config) {}, true},
		{"unknown easing", func(c *config) { c.Easing = "bouncy" }, false},
		{"no items", func(c *config) { c.Items = nil }, false},
		{"unnamed item", func(c *config) { c.Items[0].Name = "" }, false},
		{"duplicate names", func(c *config) { c.Items[1].Name = c.Items[0].Name }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(&cfg)
			err := cfg.validate()
			if tt.wantOK {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConfigClamps(t *testing.T) {
	cfg := defaultConfig()
	cfg.AnimationMs = -10
	cfg.ThresholdCells = 0
	require.NoError(t, cfg.validate())
	assert.Equal(t, 0, cfg.AnimationMs)
	assert.Equal(t, 1, cfg.ThresholdCells)

	cfg.AnimationMs = 0
	assert.Negative(t, int64(cfg.duration()))
}
