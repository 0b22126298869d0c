package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/petersn/dnd"
)

// config holds all dnd-demo configuration.
type config struct {
	AnimationMs    int          `toml:"animation_ms"`
	Easing         string       `toml:"easing"`
	ThresholdCells int          `toml:"threshold_cells"`
	Items          []itemConfig `toml:"items"`
}

type itemConfig struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// defaultConfig returns config with sensible defaults.
func defaultConfig() config {
	return config{
		AnimationMs:    200,
		Easing:         "ease-in-out",
		ThresholdCells: 1,
		Items: []itemConfig{
			{Name: "Panic Purple", Color: "#642CA9"},
			{Name: "Generic Green", Color: "#2A9D8F"},
			{Name: "Ownership Orange", Color: "#E9C46A"},
			{Name: "Borrowed Blue", Color: "#264653"},
			{Name: "Rusty Red", Color: "#E76F51"},
			{Name: "Lifetime Lime", Color: "#8AB17D"},
		},
	}
}

// loadConfig reads the config file at path, or the default location when
// path is empty. A missing file is not an error: defaults apply.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()

	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "dnd-demo", "config.toml")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, cfg.validate()
}

func (c *config) validate() error {
	if c.AnimationMs < 0 {
		c.AnimationMs = 0
	}
	if c.ThresholdCells < 1 {
		c.ThresholdCells = 1
	}
	if _, ok := dnd.EasingByName(c.Easing); !ok {
		return fmt.Errorf("unknown easing %q (want linear, smoothstep, ease-out or ease-in-out)", c.Easing)
	}
	if len(c.Items) == 0 {
		return fmt.Errorf("items must not be empty")
	}
	seen := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if it.Name == "" {
			return fmt.Errorf("every item needs a name")
		}
		if seen[it.Name] {
			return fmt.Errorf("duplicate item name %q: names are the drag identities", it.Name)
		}
		seen[it.Name] = true
	}
	return nil
}

// duration returns the configured animation duration. animation_ms = 0 maps
// to the engine's "snap without animating" mode.
func (c config) duration() time.Duration {
	if c.AnimationMs == 0 {
		return -1
	}
	return time.Duration(c.AnimationMs) * time.Millisecond
}

// easing resolves the configured easing function. validate already checked
// the name.
func (c config) easing() dnd.EasingFn {
	fn, _ := dnd.EasingByName(c.Easing)
	return fn
}
