// SPDX-License-Identifier: MIT
// Package: lvlath/wfc
//
// types.go — State and its private per-state tables (spec.md §3).

package wfc

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/internal/bitset"
	"github.com/katalvlaran/lvlath/isoenum"
	"github.com/katalvlaran/lvlath/pattern"
)

// Outcome is the terminal (or paused) state of a Run call.
type Outcome int

const (
	// Paused means the iteration budget was spent before a terminal state
	// was reached; the State is coherent and Run may be called again.
	Paused Outcome = iota
	// Done means every iso is pinned: GO is fully colored.
	Done
	// Failed means a contradiction occurred; call Reset to retry.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Done:
		return "Done"
	case Failed:
		return "Failed"
	default:
		return "Paused"
	}
}

// isoRef locates one iso: which GL it belongs to and its index within
// isosPerGL[gl].
type isoRef struct {
	gl  int
	idx int
}

// nodeIsoRef is an isoRef plus the referencing node's position in the iso
// tuple, cached at construction time so propagateNodes never has to search
// for it.
type nodeIsoRef struct {
	gl  int
	idx int
	pos int
}

// State holds everything needed to run GraphWaveFunctionCollapse: the
// immutable pattern/iso tables (shareable across states built from the
// same GI/GLs/GO, spec.md §5) and the mutable admissibility tables that
// Reset rebuilds and Run/propagate mutate.
type State struct {
	nodeAttr string
	edgeAttr string
	rng      *rand.Rand
	logger   zerolog.Logger
	shannon  bool

	palette *pattern.Palette
	gls     []*core.Graph

	// Immutable per-GL tables, built once at construction time.
	patternList   [][]pattern.Pattern // gl -> index -> pattern
	patternWeight [][]int             // gl -> index -> GI frequency
	isosPerGL     [][]isoenum.Iso     // gl -> index -> GO iso tuple

	nodeIsos map[string][]nodeIsoRef // GO node -> isos containing it

	// goBackup is GO with invisible nodes pruned, pre-propagation; Reset
	// clones it fresh every time.
	goBackup *core.Graph

	// InvisibleNodes lists GO nodes that lie in no iso of any GL
	// (spec.md §3's "invisibility pruning"); they carry no color.
	InvisibleNodes []string

	// allColors is the admissible-color universe A: every color appearing
	// in any extracted pattern (spec.md §3).
	allColors *bitset.Set

	// GO is the working output graph, mutated in place as nodes become
	// singleton-colored. Exposed per spec.md §6.2.
	GO *core.Graph

	// Mutable tables rebuilt by Reset.
	values   map[string]*bitset.Set
	patterns [][]*bitset.Set // gl -> iso index -> admissible pattern-index set
	entropy  [][]float64     // gl -> iso index -> Shannon entropy
	colorOf  map[string]pattern.Color

	// IterationCount is the number of observe+propagate rounds Run has
	// performed since the last Reset.
	IterationCount int
}
