// SPDX-License-Identifier: MIT
// Package: lvlath/wfc
//
// run.go — the Solver loop (spec.md §4.6): alternates Observer and
// Propagator until every iso is pinned, a contradiction occurs, or the
// iteration budget is spent.

package wfc

import "errors"

// Run drives the solver for up to budget observe+propagate rounds.
// budget < 0 means unbounded. Returns:
//
//   - Done: every iso is pinned; GO is fully colored.
//   - Failed: a contradiction occurred; call Reset to retry.
//   - Paused: the budget ran out first; GO and all tables remain coherent
//     and Run may be called again.
func (s *State) Run(budget int) Outcome {
	for budget != 0 {
		s.IterationCount++

		ref, err := s.observe()
		if err != nil {
			if errors.Is(err, errFinishedObserving) {
				return Done
			}
			return Failed
		}

		iso := s.isosPerGL[ref.gl][ref.idx]
		if err := s.propagate(iso); err != nil {
			s.logger.Debug().Err(err).Msg("wfc: contradiction during propagate")
			return Failed
		}

		budget--
	}

	return Paused
}
