package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"boxtree/level"
)

// Config is the editor's YAML configuration. A missing file yields the
// defaults; a malformed one is an error rather than a silent fallback.
type Config struct {
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
	CellSize     int    `yaml:"cell_size"`
	ChildWidth   int    `yaml:"child_width"`
	ChildHeight  int    `yaml:"child_height"`
	DefaultFloor string `yaml:"default_floor"`
}

func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  1280,
		WindowHeight: 720,
		CellSize:     48,
		ChildWidth:   3,
		ChildHeight:  3,
		DefaultFloor: "Button",
	}
}

func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("editor: read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("editor: unmarshal config %s: %w", path, err)
	}
	if cfg.CellSize < 8 {
		cfg.CellSize = 8
	}
	if cfg.ChildWidth < 1 {
		cfg.ChildWidth = 1
	}
	if cfg.ChildHeight < 1 {
		cfg.ChildHeight = 1
	}
	return cfg, nil
}

var floorKinds = map[string]level.FloorKind{
	"Button":       level.FloorButton,
	"PlayerButton": level.FloorPlayerButton,
	"Break":        level.FloorBreak,
	"FastTravel":   level.FloorFastTravel,
	"Gallery":      level.FloorGallery,
	"DemoEnd":      level.FloorDemoEnd,
}

// FloorKind maps the configured default floor name to its variant,
// defaulting to Button for unknown names.
func (c *Config) FloorKind() level.FloorKind {
	if k, ok := floorKinds[c.DefaultFloor]; ok {
		return k
	}
	return level.FloorButton
}
