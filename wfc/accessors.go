// SPDX-License-Identifier: MIT
// Package: lvlath/wfc
//
// accessors.go — read-only views used by tests and the CLI
// (cache-equivalence checks, final-color lookups).

package wfc

import "github.com/katalvlaran/lvlath/isoenum"

// ColorOf returns the finalized color value for node v (the same value
// that was or will be written into GO's node_attr), and whether v is
// already singleton-colored.
func (s *State) ColorOf(v string) (interface{}, bool) {
	c, ok := s.colorOf[v]
	if !ok {
		return nil, false
	}
	return s.palette.Value(c), true
}

// GOIsos returns the isos of GO per GL that this State was built from,
// suitable for caching and passing to WithGOIsos on a later State.
func (s *State) GOIsos() [][]isoenum.Iso {
	return s.isosPerGL
}

// ValuesSize returns the number of currently admissible colors for node v,
// or -1 if v is unknown (invisible nodes are not tracked).
func (s *State) ValuesSize(v string) int {
	set, ok := s.values[v]
	if !ok {
		return -1
	}
	return set.Count()
}

// PatternsSize returns the number of currently admissible patterns for the
// idx-th iso of GL gl.
func (s *State) PatternsSize(gl, idx int) int {
	return s.patterns[gl][idx].Count()
}

// Entropy returns the current entropy of the idx-th iso of GL gl.
func (s *State) Entropy(gl, idx int) float64 {
	return s.entropy[gl][idx]
}
