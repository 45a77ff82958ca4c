// SPDX-License-Identifier: MIT
// Package: lvlath/wfc
//
// propagate.go — the Propagator (spec.md §4.3): a two-queue worklist
// fixed-point over per-node admissible-color sets and per-iso admissible-
// pattern sets.

package wfc

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath/internal/bitset"
	"github.com/katalvlaran/lvlath/pattern"
)

// propagate drains a dirty-node worklist seeded with seedNodes, alternating
// propagateNodes and propagateIsos until both queues are empty (spec.md
// §4.3's pseudocode). Returns *contradiction if some admissible set empties.
func (s *State) propagate(seedNodes []string) error {
	dirtyNodes := make(map[string]struct{}, len(seedNodes))
	for _, v := range seedNodes {
		dirtyNodes[v] = struct{}{}
	}

	for len(dirtyNodes) > 0 {
		dirtyIsos, removed, err := s.propagateNodes(dirtyNodes)
		if err != nil {
			return err
		}
		dirtyNodes, err = s.propagateIsos(dirtyIsos, removed)
		if err != nil {
			return err
		}
	}

	return nil
}

// propagateNodes recomputes values[v] for every v in dirty as the
// intersection of its current set with the per-iso color projections at
// v's position. It returns the set of isos whose admissible-pattern set
// must now be reconsidered, and the colors actually removed per node (so
// propagateIsos only has to check what changed).
func (s *State) propagateNodes(dirty map[string]struct{}) (map[isoRef]struct{}, map[string]*bitset.Set, error) {
	dirtyIsos := make(map[isoRef]struct{})
	removed := make(map[string]*bitset.Set)

	nodes := make([]string, 0, len(dirty))
	for v := range dirty {
		nodes = append(nodes, v)
	}
	sort.Strings(nodes)

	for _, v := range nodes {
		old := s.values[v]
		next := s.fittingValues(v, old)

		if next.Count() < old.Count() {
			diff := old.Clone()
			for _, c := range next.Items() {
				diff.Remove(c)
			}
			removed[v] = diff
			for _, ref := range s.nodeIsos[v] {
				dirtyIsos[isoRef{gl: ref.gl, idx: ref.idx}] = struct{}{}
			}
		}

		if next.IsEmpty() {
			return nil, nil, &contradiction{location: "node:" + v}
		}

		s.values[v] = next

		if next.Count() == 1 && !s.hasColor(v) {
			items := next.Items()
			c := pattern.Color(items[0])
			s.colorOf[v] = c
			if val, ok, _ := s.GO.NodeAttr(v, s.nodeAttr); !ok || val == nil {
				_ = s.GO.SetNodeAttr(v, s.nodeAttr, s.palette.Value(c))
			}
		}
	}

	return dirtyIsos, removed, nil
}

func (s *State) hasColor(v string) bool {
	_, ok := s.colorOf[v]
	return ok
}

// fittingValues intersects old with, for every (gl, iso) containing v, the
// set of colors that appear at v's position among that iso's currently
// admissible patterns (spec.md §4.3, "_fitting_values").
func (s *State) fittingValues(v string, old *bitset.Set) *bitset.Set {
	next := old.Clone()
	for _, ref := range s.nodeIsos[v] {
		proj := bitset.New(s.palette.Len())
		for _, pidx := range s.patterns[ref.gl][ref.idx].Items() {
			colors := pattern.Decode(s.patternList[ref.gl][pidx])
			proj.Add(int(colors[ref.pos]))
		}
		next.IntersectWith(proj)
	}
	return next
}

// propagateIsos recomputes patterns[gl][idx] for every dirty iso by
// dropping patterns whose color at a removed-value position was just
// excluded. It returns the set of nodes whose values must be reconsidered
// next round.
func (s *State) propagateIsos(dirty map[isoRef]struct{}, removed map[string]*bitset.Set) (map[string]struct{}, error) {
	refs := make([]isoRef, 0, len(dirty))
	for ref := range dirty {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].gl != refs[j].gl {
			return refs[i].gl < refs[j].gl
		}
		return refs[i].idx < refs[j].idx
	})

	nextNodes := make(map[string]struct{})

	for _, ref := range refs {
		iso := s.isosPerGL[ref.gl][ref.idx]
		old := s.patterns[ref.gl][ref.idx]
		next := old.Clone()

		for pos, node := range iso {
			remSet, ok := removed[node]
			if !ok {
				continue
			}
			for _, pidx := range next.Items() {
				colors := pattern.Decode(s.patternList[ref.gl][pidx])
				if remSet.Test(int(colors[pos])) {
					next.Remove(pidx)
				}
			}
		}

		if next.IsEmpty() {
			return nil, &contradiction{location: isoLocation(ref, iso)}
		}

		if next.Count() < old.Count() {
			s.patterns[ref.gl][ref.idx] = next
			s.entropy[ref.gl][ref.idx] = s.computeEntropy(ref.gl, ref.idx)
			for _, node := range iso {
				nextNodes[node] = struct{}{}
			}
		}
	}

	return nextNodes, nil
}

func isoLocation(ref isoRef, iso []string) string {
	return "iso[gl=" + strconv.Itoa(ref.gl) + "](" + strings.Join(iso, ",") + ")"
}
