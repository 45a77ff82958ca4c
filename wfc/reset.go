// SPDX-License-Identifier: MIT
// Package: lvlath/wfc
//
// reset.go — Reset rebuilds the mutable admissibility tables from scratch
// and runs the initial constraint propagation (spec.md §3 "Lifecycle",
// §4.6 "reset()").

package wfc

import (
	"errors"

	"github.com/katalvlaran/lvlath/internal/bitset"
	"github.com/katalvlaran/lvlath/pattern"
)

// Reset restores the State to the condition right after New returned:
// GO is a fresh clone of the (invisible-pruned) input with its own vertex
// Metadata maps, every node's admissible-color set is the full universe A
// (or the singleton of its pre-set color, see presetOrFullValues), every
// iso's admissible-
// pattern set is all of that GL's observed patterns, and IterationCount
// is 0. An initial fixed-point is computed; if it is inconsistent this
// returns *InputError (not recoverable by calling Reset again — spec.md
// §7 reserves that for the a-priori case).
func (s *State) Reset() error {
	s.GO = s.goBackup.Clone()
	// Clone shares each vertex's Metadata map with goBackup; copy them so
	// colors written during Run never leak into goBackup or the input graph.
	for _, v := range s.GO.VerticesMap() {
		md := make(map[string]interface{}, len(v.Metadata))
		for k, val := range v.Metadata {
			md[k] = val
		}
		v.Metadata = md
	}

	nodes := s.GO.Vertices()
	s.values = make(map[string]*bitset.Set, len(nodes))
	for _, v := range nodes {
		s.values[v] = s.presetOrFullValues(v)
	}

	s.patterns = make([][]*bitset.Set, len(s.patternList))
	s.entropy = make([][]float64, len(s.patternList))
	for j := range s.patternList {
		n := len(s.isosPerGL[j])
		s.patterns[j] = make([]*bitset.Set, n)
		s.entropy[j] = make([]float64, n)
		for k := range s.isosPerGL[j] {
			full := bitset.New(len(s.patternList[j]))
			for idx := range s.patternList[j] {
				full.Add(idx)
			}
			s.patterns[j][k] = full
			s.entropy[j][k] = s.computeEntropy(j, k)
		}
	}

	s.colorOf = make(map[string]pattern.Color)

	s.IterationCount = 0

	if err := s.propagate(nodes); err != nil {
		var c *contradiction
		if errors.As(err, &c) {
			return &InputError{Op: "Reset", Location: c.location, Err: err}
		}
		return &InputError{Op: "Reset", Err: err}
	}

	return nil
}

// presetOrFullValues returns the initial admissible-color set for v: the
// singleton {c} if GO already carries a color c under nodeAttr for v (New
// has already rejected any such c lying outside the universe A), or a clone
// of the full universe otherwise. This is spec.md §9 Open Question 2's
// resolution: a pre-set color constrains values[v] from the very first
// fixed-point rather than merely being validated and then ignored.
func (s *State) presetOrFullValues(v string) *bitset.Set {
	val, ok, _ := s.goBackup.NodeAttr(v, s.nodeAttr)
	if !ok || val == nil {
		return s.allColors.Clone()
	}
	c, known := s.palette.Lookup(val)
	if !known {
		return s.allColors.Clone()
	}
	singleton := bitset.New(s.palette.Len())
	singleton.Add(int(c))
	return singleton
}
