// SPDX-License-Identifier: MIT
// Package: lvlath/wfc
//
// observe.go — the Observer (spec.md §4.5): picks a minimum-positive-
// entropy iso, samples a pattern weighted by GI frequency, and pins it.

package wfc

// observe selects an iso of minimum positive entropy (uniformly among
// ties, via s.rng), samples one of its admissible patterns with
// probability proportional to GI frequency, and pins patterns[gl][idx] to
// that singleton. It returns errFinishedObserving if every admissible-
// pattern set already has entropy 0 (spec.md §4.5).
func (s *State) observe() (isoRef, error) {
	minEntropy := -1.0
	var candidates []isoRef

	for gl, entropies := range s.entropy {
		for idx, e := range entropies {
			if e <= 0 {
				continue
			}
			switch {
			case minEntropy < 0 || e < minEntropy:
				minEntropy = e
				candidates = candidates[:0]
				candidates = append(candidates, isoRef{gl: gl, idx: idx})
			case e == minEntropy:
				candidates = append(candidates, isoRef{gl: gl, idx: idx})
			}
		}
	}

	if len(candidates) == 0 {
		return isoRef{}, errFinishedObserving
	}

	chosen := candidates[s.rng.Intn(len(candidates))]

	items := s.patterns[chosen.gl][chosen.idx].Items()
	total := 0
	for _, p := range items {
		total += s.patternWeight[chosen.gl][p]
	}

	r := s.rng.Intn(total)
	acc := 0
	picked := items[len(items)-1]
	for _, p := range items {
		acc += s.patternWeight[chosen.gl][p]
		if r < acc {
			picked = p
			break
		}
	}

	pinned := s.patterns[chosen.gl][chosen.idx].Clone()
	for _, p := range items {
		if p != picked {
			pinned.Remove(p)
		}
	}
	s.patterns[chosen.gl][chosen.idx] = pinned
	s.entropy[chosen.gl][chosen.idx] = 0

	return chosen, nil
}
