package levels

import (
	"io/fs"
	"testing"

	"boxtree/level"
)

func TestBundledLevelsParseAndRoundTrip(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatalf("no bundled levels")
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			lvl, err := Load(name)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(lvl.Roots) == 0 {
				t.Fatalf("no roots in %s", name)
			}

			data, err := fs.ReadFile(LevelsFS, name)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if got := level.Serialize(lvl); got != string(data) {
				t.Fatalf("%s does not round-trip:\n%q\nwant:\n%q", name, got, string(data))
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load("nope.box"); err == nil {
		t.Fatalf("Load of missing file succeeded")
	}
}
