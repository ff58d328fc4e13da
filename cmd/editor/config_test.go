package main

import (
	"os"
	"path/filepath"
	"testing"

	"boxtree/level"
)

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.CellSize != 48 || cfg.ChildWidth != 3 || cfg.DefaultFloor != "Button" {
		t.Fatalf("defaults = %+v", cfg)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	data := "cell_size: 32\nchild_width: 5\nchild_height: 2\ndefault_floor: PlayerButton\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.CellSize != 32 || cfg.ChildWidth != 5 || cfg.ChildHeight != 2 {
		t.Fatalf("config = %+v", cfg)
	}
	if cfg.FloorKind() != level.FloorPlayerButton {
		t.Fatalf("FloorKind = %v, want PlayerButton", cfg.FloorKind())
	}
	// Unset fields keep their defaults.
	if cfg.WindowWidth != 1280 {
		t.Fatalf("window width = %d, want default 1280", cfg.WindowWidth)
	}
}

func TestLoadConfigClampsCellSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	if err := os.WriteFile(path, []byte("cell_size: 2\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.CellSize != 8 {
		t.Fatalf("cell size = %d, want clamped to 8", cfg.CellSize)
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "editor.yaml")
	if err := os.WriteFile(path, []byte("cell_size: [oops\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("malformed config accepted")
	}
}

func TestSaveLoadLevelFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "a.box")
	lvl := level.NewEmptyLevel()
	if err := SaveLevelFile(path, lvl); err != nil {
		t.Fatalf("SaveLevelFile: %v", err)
	}
	back, err := LoadLevelFile(path)
	if err != nil {
		t.Fatalf("LoadLevelFile: %v", err)
	}
	if level.Serialize(back) != level.Serialize(lvl) {
		t.Fatalf("save/load does not round-trip")
	}
}
