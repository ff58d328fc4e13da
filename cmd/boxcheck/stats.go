package main

import (
	"sort"

	"boxtree/level"
)

// Stats summarizes a parsed level for check scripts: object counts plus the
// soft invariants the format itself does not enforce (id uniqueness, refs
// pointing at real blocks, leaves inside their parent's bounds).
type Stats struct {
	Blocks       int
	Walls        int
	Floors       int
	Refs         int
	MaxDepth     int
	DuplicateIDs []int
	DanglingRefs []int
	OutOfBounds  int
}

func Collect(l *level.Level) *Stats {
	s := &Stats{}
	seen := map[int]int{}
	refTargets := map[int]bool{}

	var walk func(b *level.Block, depth int)
	walk = func(b *level.Block, depth int) {
		s.Blocks++
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		seen[b.ID]++
		for _, c := range b.Children {
			switch v := c.(type) {
			case *level.Block:
				walk(v, depth+1)
			case *level.Wall:
				s.Walls++
				if v.X < 0 || v.Y < 0 || v.X >= b.Width || v.Y >= b.Height {
					s.OutOfBounds++
				}
			case *level.Floor:
				s.Floors++
				if v.X < 0 || v.Y < 0 || v.X >= b.Width || v.Y >= b.Height {
					s.OutOfBounds++
				}
			case *level.Ref:
				s.Refs++
				refTargets[v.ID] = true
				if v.X < 0 || v.Y < 0 || v.X >= b.Width || v.Y >= b.Height {
					s.OutOfBounds++
				}
			}
		}
	}
	for _, r := range l.Roots {
		walk(r, 1)
	}

	for id, n := range seen {
		if n > 1 {
			s.DuplicateIDs = append(s.DuplicateIDs, id)
		}
	}
	sort.Ints(s.DuplicateIDs)

	for id := range refTargets {
		if seen[id] == 0 {
			s.DanglingRefs = append(s.DanglingRefs, id)
		}
	}
	sort.Ints(s.DanglingRefs)

	return s
}

// scriptValue converts the stats to the plain maps and slices a tengo
// script can index.
func (s *Stats) scriptValue(h level.Header) map[string]interface{} {
	ints := func(vs []int) []interface{} {
		out := make([]interface{}, len(vs))
		for i, v := range vs {
			out[i] = v
		}
		return out
	}
	return map[string]interface{}{
		"version":       h.Version,
		"shed":          h.Shed,
		"inner_push":    h.InnerPush,
		"blocks":        s.Blocks,
		"walls":         s.Walls,
		"floors":        s.Floors,
		"refs":          s.Refs,
		"max_depth":     s.MaxDepth,
		"duplicate_ids": ints(s.DuplicateIDs),
		"dangling_refs": ints(s.DanglingRefs),
		"out_of_bounds": s.OutOfBounds,
	}
}
