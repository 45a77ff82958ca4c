// SPDX-License-Identifier: MIT
// Package: lvlath/wfc
//
// new.go — State construction: builds the immutable pattern/iso tables,
// prunes invisible nodes, then delegates the mutable-table bootstrap to
// Reset (spec.md §6.2, §3 "Lifecycle").

package wfc

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/internal/bitset"
	"github.com/katalvlaran/lvlath/isoenum"
	"github.com/katalvlaran/lvlath/pattern"
)

// New builds a solver State for coloring output. See spec.md §6.2 for the
// full constructor contract. Preconditions are checked in turn (input
// sufficiency first, then directedness, GI colors and pre-set GO colors);
// the first violation is returned as an *InputError.
func New(output *core.Graph, opts ...Option) (*State, error) {
	if output == nil {
		return nil, &InputError{Op: "New", Err: ErrNilGO}
	}

	cfg := newConfig(opts...)

	// Constructor-surface sufficiency (spec.md §6.2).
	if cfg.gls == nil && cfg.goIsos == nil {
		return nil, &InputError{Op: "New", Err: fmt.Errorf("GLs or GO_isos required: %w", ErrInsufficientInputs)}
	}
	if cfg.patternCount == nil && !(cfg.gi != nil && (cfg.gls != nil || cfg.giIsos != nil)) {
		return nil, &InputError{Op: "New", Err: fmt.Errorf("pattern_count, or GI with GLs/GI_isos, required: %w", ErrInsufficientInputs)}
	}
	if cfg.gls != nil && len(cfg.gls) == 0 {
		return nil, &InputError{Op: "New", Err: ErrNoGLs}
	}

	// Directedness agreement across GO, GI, and every GL.
	directed := output.Directed()
	if cfg.gi != nil && cfg.gi.Directed() != directed {
		return nil, &InputError{Op: "New", Err: ErrDirectednessMismatch}
	}
	for _, gl := range cfg.gls {
		if gl.Directed() != directed {
			return nil, &InputError{Op: "New", Err: ErrDirectednessMismatch}
		}
	}

	s := &State{
		nodeAttr: cfg.nodeAttr,
		edgeAttr: cfg.edgeAttr,
		rng:      cfg.rng,
		logger:   cfg.logger,
		shannon:  cfg.shannon,
		gls:      cfg.gls,
	}

	// Pattern counts (per GL), and the palette they were interned against.
	if cfg.patternCount != nil {
		s.palette = cfg.palette
		if s.palette == nil {
			s.palette = pattern.NewPalette()
		}
	} else {
		s.palette = pattern.NewPalette()
		counts, _, err := pattern.Extract(cfg.gi, cfg.gls, cfg.nodeAttr, cfg.edgeAttr, s.palette, cfg.giIsos, cfg.isoOpts...)
		if err != nil {
			return nil, &InputError{Op: "New", Err: err}
		}
		cfg.patternCount = counts
	}

	glCount := len(cfg.patternCount)
	s.patternList = make([][]pattern.Pattern, glCount)
	s.patternWeight = make([][]int, glCount)
	s.allColors = bitset.New(s.palette.Len())

	for j, counted := range cfg.patternCount {
		keys := make([]pattern.Pattern, 0, len(counted))
		for p := range counted {
			keys = append(keys, p)
		}
		sort.Slice(keys, func(a, b int) bool { return keys[a] < keys[b] })

		s.patternList[j] = keys
		weights := make([]int, len(keys))
		for i, p := range keys {
			weights[i] = counted[p]
			for _, c := range pattern.Decode(p) {
				s.allColors.Add(int(c))
			}
		}
		s.patternWeight[j] = weights
	}

	// GO's isos per GL, either supplied or freshly enumerated.
	if cfg.goIsos != nil {
		s.isosPerGL = cfg.goIsos
	} else {
		s.isosPerGL = make([][]isoenum.Iso, glCount)
		for j, gl := range s.gls {
			isos, err := isoenum.Enumerate(output, gl, cfg.edgeAttr, cfg.isoOpts...)
			if err != nil {
				return nil, &InputError{Op: "New", Err: err}
			}
			s.isosPerGL[j] = isos
		}
	}

	// node -> isos index, and invisible-node detection.
	s.nodeIsos = make(map[string][]nodeIsoRef)
	for _, v := range output.Vertices() {
		s.nodeIsos[v] = nil
	}
	for j, isos := range s.isosPerGL {
		for idx, iso := range isos {
			for pos, node := range iso {
				s.nodeIsos[node] = append(s.nodeIsos[node], nodeIsoRef{gl: j, idx: idx, pos: pos})
			}
		}
	}

	keep := make(map[string]bool, len(s.nodeIsos))
	var invisible []string
	for v, refs := range s.nodeIsos {
		if len(refs) == 0 {
			invisible = append(invisible, v)
			continue
		}
		keep[v] = true
	}
	sort.Strings(invisible)
	s.InvisibleNodes = invisible

	if len(invisible) > 0 {
		s.logger.Warn().Strs("nodes", invisible).Msg("wfc: nodes outside any GL-iso area are invisible")
		s.goBackup = core.InducedSubgraph(output, keep)
	} else {
		s.goBackup = output.Clone()
	}

	// Reject pre-set GO node colors that lie outside the admissible
	// universe A (spec.md §9, Open Question 2's recommended resolution).
	for _, v := range s.goBackup.Vertices() {
		val, ok, _ := s.goBackup.NodeAttr(v, s.nodeAttr)
		if !ok || val == nil {
			continue
		}
		c, known := s.palette.Lookup(val)
		if !known || !s.allColors.Test(int(c)) {
			return nil, &InputError{Op: "New", Location: v, Err: ErrOutOfUniverse}
		}
	}

	if err := s.Reset(); err != nil {
		return nil, err
	}

	return s, nil
}
