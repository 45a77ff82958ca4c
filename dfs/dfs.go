// Package dfs implements depth‑first search (single‑source) on core.Graph.
// It supports directed, undirected, and per‑edge mixed‑direction edges, plus
// cancellation via context.Context.
//
// isoenum is the sole caller: it runs DFS over a throwaway undirected copy of
// a shape graph GL to decide whether GL is weakly connected before paying
// for an expensive isomorphism enumeration over it.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal (where V = vertices, E = edges).
//   - Memory: O(V) for recursion stack and metadata maps.
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if startID is missing.
//   - context.Canceled          if ctx is done.
package dfs

import (
	"github.com/katalvlaran/lvlath/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph // underlying graph
	opts  DFSOptions  // traversal options
	res   *DFSResult  // result collector
}

// DFS performs a depth‑first traversal of graph g starting from startID.
// Returns DFSResult or error if aborted by context cancellation.
func DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Verify startID exists
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	// 4. Initialize result with capacity hint
	vertices := g.Vertices()
	res := &DFSResult{
		Order:   make([]string, 0, len(vertices)),
		Depth:   make(map[string]int, len(vertices)),
		Parent:  make(map[string]string, len(vertices)),
		Visited: make(map[string]bool, len(vertices)),
	}

	walker := &dfsWalker{graph: g, opts: dopts, res: res}

	// 5. Traverse the single tree rooted at startID
	if err := walker.traverse(startID, 0); err != nil {
		return res, err
	}

	return res, nil
}

// traverse visits vertex id at given depth, recursing to neighbors.
// It honors context cancellation and mixed‑edge rules.
func (w *dfsWalker) traverse(id string, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.res.Visited[id] = true
	w.res.Depth[id] = depth

	// 3. Fetch neighbors once
	nbs, err := w.graph.Neighbors(id)
	if err != nil {
		w.res.Order = nil

		return err
	}

	// 4. Explore each neighbor
	var e *core.Edge
	var nid string
	for _, e = range nbs {
		nid = e.To

		// An undirected edge reached from its To end leads back to From
		if !e.Directed && nid == id {
			nid = e.From
		}

		// Skip self‑loops if disallowed
		if nid == id && !w.graph.Looped() {
			continue
		}

		// Recurse on unvisited
		if !w.res.Visited[nid] {
			w.res.Parent[nid] = id
			if err = w.traverse(nid, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
