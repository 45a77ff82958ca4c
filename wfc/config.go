// SPDX-License-Identifier: MIT
// Package: lvlath/wfc
//
// config.go — functional options for New, following the dfs.Option
// functional-options shape used throughout this module.

package wfc

import (
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/isoenum"
	"github.com/katalvlaran/lvlath/pattern"
)

// defaultNodeAttr/defaultEdgeAttr mirror the reference library's own
// GraphWFCState constructor defaults (its CLI overrides both; see
// cmd/graphwfc).
const (
	defaultNodeAttr = "color"
	defaultEdgeAttr = "type"
)

// Option configures a State before construction.
type Option func(*config)

type config struct {
	gi  *core.Graph
	gls []*core.Graph

	palette      *pattern.Palette
	patternCount []map[pattern.Pattern]int
	giIsos       [][]isoenum.Iso
	goIsos       [][]isoenum.Iso

	nodeAttr string
	edgeAttr string

	rng     *rand.Rand
	logger  zerolog.Logger
	shannon bool

	isoOpts []isoenum.Option
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		nodeAttr: defaultNodeAttr,
		edgeAttr: defaultEdgeAttr,
		rng:      rand.New(rand.NewSource(1)),
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithGI supplies the colored example graph. Required unless WithPatternCount
// is given.
func WithGI(gi *core.Graph) Option {
	return func(cfg *config) { cfg.gi = gi }
}

// WithGLs supplies the ordered shape graphs. Required unless both
// WithPatternCount and WithGOIsos are given.
func WithGLs(gls []*core.Graph) Option {
	return func(cfg *config) { cfg.gls = gls }
}

// WithPatternCount supplies a precomputed pattern frequency table (one
// mapping per GL, in GL order) together with the Palette it was interned
// against. Both must come from the same Palette instance (or one produced
// identically) for the encoded Pattern keys to mean the same thing.
func WithPatternCount(counts []map[pattern.Pattern]int, palette *pattern.Palette) Option {
	return func(cfg *config) {
		cfg.patternCount = counts
		cfg.palette = palette
	}
}

// WithGIIsos supplies a precomputed cache of GI's isos per GL, avoiding
// re-enumeration when pattern counts must still be computed from GI.
func WithGIIsos(isos [][]isoenum.Iso) Option {
	return func(cfg *config) { cfg.giIsos = isos }
}

// WithGOIsos supplies a precomputed cache of GO's isos per GL.
func WithGOIsos(isos [][]isoenum.Iso) Option {
	return func(cfg *config) { cfg.goIsos = isos }
}

// WithNodeAttr overrides the node attribute key used as color. Default "color".
func WithNodeAttr(key string) Option {
	return func(cfg *config) {
		if key != "" {
			cfg.nodeAttr = key
		}
	}
}

// WithEdgeAttr overrides the edge attribute key used to distinguish edge
// types. Default "type".
func WithEdgeAttr(key string) Option {
	return func(cfg *config) {
		if key != "" {
			cfg.edgeAttr = key
		}
	}
}

// WithRand injects the PRNG driving tie-breaking and weighted pattern
// sampling (spec.md §5: "explicitly injected rather than drawn from a
// process-wide source"). If nil, this option is a no-op.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithLogger installs a structured logger for Debug/Info/Warn diagnostics
// (iteration counts, contradictions, retries). Default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *config) { cfg.logger = logger }
}

// WithShannonEntropy switches the Entropy Index to a corrected multiset
// Shannon computation instead of the reference implementation's
// set-of-ratios tie-break (spec.md §4.4, §9 Open Question 1).
func WithShannonEntropy() Option {
	return func(cfg *config) { cfg.shannon = true }
}

// WithIsoOptions passes options through to every isoenum.Enumerate call
// this State makes (e.g. isoenum.WithLogger for match-count diagnostics).
func WithIsoOptions(opts ...isoenum.Option) Option {
	return func(cfg *config) { cfg.isoOpts = append(cfg.isoOpts, opts...) }
}
