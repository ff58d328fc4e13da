package main

import (
	"reflect"
	"testing"

	"boxtree/level"
)

const checkedLevel = "version 4\n#\n" +
	"Block 0 0 0 4 4 0 0 1 1 0 0 0 0 0 0 0\n" +
	"\tWall 1 1 0 0 0\n" +
	"\tWall 9 9 0 0 0\n" +
	"\tBlock 2 2 1 2 2 0 0 1 1 0 0 0 0 0 0 0\n" +
	"\t\tRef 0 0 7 0 0 0 0 0 0 0 0 0 0 0\n" +
	"\tFloor 3 3 Button\n" +
	"Block 0 0 1 3 3 0 0 1 1 0 0 0 0 0 0 0\n"

func TestCollect(t *testing.T) {
	lvl, err := level.Parse(checkedLevel)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	s := Collect(lvl)
	if s.Blocks != 3 || s.Walls != 2 || s.Floors != 1 || s.Refs != 1 {
		t.Fatalf("counts = %+v", s)
	}
	if s.MaxDepth != 2 {
		t.Fatalf("max depth = %d, want 2", s.MaxDepth)
	}
	if !reflect.DeepEqual(s.DuplicateIDs, []int{1}) {
		t.Fatalf("duplicate ids = %v, want [1]", s.DuplicateIDs)
	}
	if !reflect.DeepEqual(s.DanglingRefs, []int{7}) {
		t.Fatalf("dangling refs = %v, want [7]", s.DanglingRefs)
	}
	if s.OutOfBounds != 1 {
		t.Fatalf("out of bounds = %d, want 1", s.OutOfBounds)
	}
}

func TestRunChecks(t *testing.T) {
	lvl, err := level.Parse(checkedLevel)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	const script = `
if len(level.dangling_refs) > 0 {
    fail("dangling refs")
}
if len(level.duplicate_ids) > 0 {
    warn("duplicate ids")
}
`
	failures, warnings, err := runChecks(lvl, []byte(script))
	if err != nil {
		t.Fatalf("runChecks: %v", err)
	}
	if !reflect.DeepEqual(failures, []string{"dangling refs"}) {
		t.Fatalf("failures = %v", failures)
	}
	if !reflect.DeepEqual(warnings, []string{"duplicate ids"}) {
		t.Fatalf("warnings = %v", warnings)
	}
}

func TestRunChecksCleanLevel(t *testing.T) {
	lvl := level.NewEmptyLevel()
	failures, warnings, err := runChecks(lvl, []byte(`if level.blocks < 1 { fail("empty") }`))
	if err != nil {
		t.Fatalf("runChecks: %v", err)
	}
	if len(failures) != 0 || len(warnings) != 0 {
		t.Fatalf("failures=%v warnings=%v, want none", failures, warnings)
	}
}
