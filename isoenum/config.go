// SPDX-License-Identifier: MIT
// Package: lvlath/isoenum
//
// config.go — functional options for Enumerate, following the dfs.Option
// functional-options shape used throughout this module.

package isoenum

import "github.com/rs/zerolog"

// debugLogEvery controls how often Enumerate emits a Debug progress event
// while searching (recovers helpers.py's "\rIsomorphisms: N" progress line,
// spec.md's SPEC_FULL §F).
const debugLogEvery = 1000

// Option configures Enumerate's diagnostics. It never changes match
// semantics, only logging.
type Option func(*enumConfig)

type enumConfig struct {
	logger zerolog.Logger
}

func newEnumConfig(opts ...Option) *enumConfig {
	cfg := &enumConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithLogger installs a zerolog.Logger used for Debug (match-count progress)
// and Warn (disconnected-GL) diagnostics. The default is zerolog.Nop().
func WithLogger(logger zerolog.Logger) Option {
	return func(cfg *enumConfig) { cfg.logger = logger }
}
