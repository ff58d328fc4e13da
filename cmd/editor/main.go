package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.design/x/clipboard"

	"boxtree/level"
	"boxtree/levels"
	"boxtree/watch"
)

func main() {
	levelPath := flag.String("level", "", "Level file to open (.box); empty starts a new level")
	configPath := flag.String("config", "editor.yaml", "Editor configuration file")
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var lvl *level.Level
	filename := *levelPath
	switch {
	case filename != "":
		lvl, err = LoadLevelFile(filename)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", filename, err)
		}
	default:
		// Start from the bundled intro level so a first run has something
		// to poke at.
		lvl, err = levels.Load("intro.box")
		if err != nil {
			log.Printf("Failed to load bundled level: %v", err)
			lvl = level.NewEmptyLevel()
		}
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("Clipboard unavailable: %v", err)
		clipboardOK = false
	}

	ed := NewEditor(cfg, lvl, filename, clipboardOK)

	if filename != "" {
		w, err := watch.NewWatcher(filepath.Dir(filename))
		if err != nil {
			log.Printf("File watching unavailable: %v", err)
		} else {
			defer w.Close()
			ed.watcher = w
		}
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("boxtree editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(ed); err != nil {
		log.Printf("Editor exited: %v", err)
		os.Exit(1)
	}
}
