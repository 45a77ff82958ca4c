// SPDX-License-Identifier: MIT
// Package: lvlath/isoenum
//
// enumerate.go — VF2-style backtracking enumeration of node-induced
// subgraph isomorphisms of gl inside host.

package isoenum

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/dfs"
)

// Iso is one occurrence of a shape graph inside a host graph: host vertex
// IDs ordered by the shape graph's canonical node order (CanonicalOrder).
type Iso []string

// CanonicalOrder returns gl's canonical node order: its vertex IDs sorted
// ascending, exactly as core.Graph.Vertices() already guarantees (spec.md
// §4.1: "canonical order of GL's nodes, sorted by GL node id").
func CanonicalOrder(gl *core.Graph) []string {
	return gl.Vertices()
}

// noAttr is the sentinel distinguishing "edge exists but edgeAttr is unset"
// from any real attribute value, so two untyped edges still match each
// other but never match a typed one.
type noAttrSentinel struct{}

var noAttr interface{} = noAttrSentinel{}

// edgeFact records, for an ordered pair (a,b), whether an edge exists and
// (if so) its edgeAttr value (or noAttr if unset).
type edgeFact struct {
	present bool
	value   interface{}
}

// pairIndex maps an ordered (from,to) vertex-ID pair to its edgeFact.
// Undirected edges populate both (from,to) and (to,from) since the induced
// subgraph check must be direction-agnostic for them.
type pairIndex map[[2]string]edgeFact

func buildPairIndex(g *core.Graph, edgeAttr string) pairIndex {
	idx := make(pairIndex)
	for _, e := range g.Edges() {
		val, ok, _ := g.EdgeAttr(e.ID, edgeAttr)
		fact := edgeFact{present: true, value: noAttr}
		if ok {
			fact.value = val
		}
		idx[[2]string{e.From, e.To}] = fact
		if !e.Directed {
			idx[[2]string{e.To, e.From}] = fact
		}
	}
	return idx
}

func (idx pairIndex) at(a, b string) edgeFact {
	return idx[[2]string{a, b}]
}

// Enumerate returns every node-induced occurrence of gl inside host, as a
// slice of Iso tuples ordered by CanonicalOrder(gl). Edge matching uses
// edgeAttr (see package doc). host and gl must agree on directedness or
// ErrDirectednessMismatch is returned.
//
// Order of returned isos is the enumeration order of this backtracking
// search (deterministic for a fixed host/gl, since candidates are tried in
// host.Vertices() order at every step); the solver does not assume any
// particular order, only stability (spec.md §4.1).
func Enumerate(host, gl *core.Graph, edgeAttr string, opts ...Option) ([]Iso, error) {
	if host == nil || gl == nil {
		return nil, ErrNilGraph
	}
	if host.Directed() != gl.Directed() {
		return nil, fmt.Errorf("isoenum: Enumerate: %w", ErrDirectednessMismatch)
	}

	cfg := newEnumConfig(opts...)

	order := CanonicalOrder(gl)
	n := len(order)
	if n == 0 {
		return nil, fmt.Errorf("isoenum: Enumerate: %w", ErrEmptyShape)
	}

	if !isWeaklyConnected(gl) {
		cfg.logger.Warn().
			Int("gl_size", n).
			Msg("isoenum: shape graph is not connected, enumeration may take ages")
	}

	hostVerts := host.Vertices()
	hostIdx := buildPairIndex(host, edgeAttr)
	glIdx := buildPairIndex(gl, edgeAttr)

	used := make(map[string]bool, n)
	assign := make([]string, n)
	var results []Iso
	matches := 0

	var backtrack func(pos int)
	backtrack = func(pos int) {
		if pos == n {
			tuple := make(Iso, n)
			copy(tuple, assign)
			results = append(results, tuple)
			matches++
			if matches%debugLogEvery == 0 {
				cfg.logger.Debug().Int("isomorphisms", matches).Msg("isoenum: still searching")
			}
			return
		}

		glNode := order[pos]
		// Self-loop consistency for the node about to be placed.
		for _, cand := range hostVerts {
			if used[cand] {
				continue
			}
			if hostIdx.at(cand, cand) != glIdx.at(glNode, glNode) {
				continue
			}

			ok := true
			for prev := 0; prev < pos; prev++ {
				glPrev := order[prev]
				hostPrev := assign[prev]
				if hostIdx.at(hostPrev, cand) != glIdx.at(glPrev, glNode) {
					ok = false
					break
				}
				if gl.Directed() {
					if hostIdx.at(cand, hostPrev) != glIdx.at(glNode, glPrev) {
						ok = false
						break
					}
				}
			}
			if !ok {
				continue
			}

			assign[pos] = cand
			used[cand] = true
			backtrack(pos + 1)
			used[cand] = false
		}
	}
	backtrack(0)

	if matches >= debugLogEvery {
		cfg.logger.Debug().Int("isomorphisms", matches).Msg("isoenum: search complete")
	}

	return results, nil
}

// isWeaklyConnected reports whether gl is connected when all edges (directed
// or not) are treated as undirected, mirroring the reference implementation's
// nx.is_connected(GL.to_undirected()) check. It builds a throwaway undirected
// copy of gl's topology and delegates reachability to dfs.DFS, rather than
// re-deriving a traversal here.
func isWeaklyConnected(gl *core.Graph) bool {
	verts := gl.Vertices()
	if len(verts) <= 1 {
		return true
	}

	undirected := core.NewGraph()
	for _, v := range verts {
		_ = undirected.AddVertex(v)
	}
	for _, e := range gl.Edges() {
		if e.From == e.To || undirected.HasEdge(e.From, e.To) {
			continue
		}
		_, _ = undirected.AddEdge(e.From, e.To, 0)
	}

	res, err := dfs.DFS(undirected, verts[0])
	if err != nil {
		return false
	}

	return len(res.Visited) == len(verts)
}
