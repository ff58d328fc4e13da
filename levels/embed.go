// Package levels bundles the starter level documents shipped with the
// editor.
package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"boxtree/level"
)

//go:embed *.box
var LevelsFS embed.FS

// Load parses a bundled level by file name, e.g. "intro.box".
func Load(name string) (*level.Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	lvl, err := level.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", name, err)
	}
	return lvl, nil
}

// Names lists the bundled level files in sorted order.
func Names() []string {
	entries, err := LevelsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
