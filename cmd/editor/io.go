package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.design/x/clipboard"

	"boxtree/edit"
	"boxtree/level"
)

// LoadLevelFile parses a level document from disk.
func LoadLevelFile(path string) (*level.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("editor: read %s: %w", path, err)
	}
	lvl, err := level.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("editor: parse %s: %w", path, err)
	}
	return lvl, nil
}

// SaveLevelFile serializes the level to disk, creating the directory when
// needed.
func SaveLevelFile(path string, lvl *level.Level) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("editor: mkdir for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(level.Serialize(lvl)), 0644); err != nil {
		return fmt.Errorf("editor: write %s: %w", path, err)
	}
	return nil
}

func (e *Editor) save() error {
	if e.filename == "" {
		if err := os.MkdirAll("levels", 0755); err != nil {
			return err
		}
		e.filename = filepath.Join("levels", fmt.Sprintf("level_%d.box", time.Now().Unix()))
	}
	return SaveLevelFile(e.filename, e.history.Current)
}

// copyToClipboard puts the whole serialized document on the system
// clipboard, which is how levels move between this editor and the game's
// own paste box.
func (e *Editor) copyToClipboard() {
	if !e.clipboardOK {
		e.setStatus("clipboard unavailable")
		return
	}
	clipboard.Write(clipboard.FmtText, []byte(level.Serialize(e.history.Current)))
	e.setStatus("level copied")
}

// pasteFromClipboard replaces the document with clipboard text when it
// parses; the replacement is one undoable edit.
func (e *Editor) pasteFromClipboard() {
	if !e.clipboardOK {
		e.setStatus("clipboard unavailable")
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		e.setStatus("clipboard is empty")
		return
	}
	lvl, err := level.Parse(string(data))
	if err != nil {
		e.setStatus("paste is not a level: %v", err)
		return
	}
	e.history = e.history.Push(lvl)
	e.path = edit.Path{0}
	e.setStatus("level pasted")
}
