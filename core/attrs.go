// SPDX-License-Identifier: MIT
//
// File: attrs.go
// Role: Thin, deterministic public facade over Vertex.Metadata / Edge.Metadata.
// Policy:
//   - No algorithms or hidden state here; Metadata itself lives in types.go.
//   - AddVertex allocates each vertex's Metadata map; an edge's Metadata map
//     stays nil until something actually sets an attribute on it.
// AI-HINT (file):
//   - NodeAttr/EdgeAttr return (nil, false) for an unset key, not an error;
//     ErrVertexNotFound/ErrEdgeNotFound are reserved for missing IDs.

package core

// NodeAttr returns the value stored under key in the vertex's Metadata, and
// whether it was present. It returns ErrVertexNotFound if id does not name
// an existing vertex.
//
// Complexity: O(1). Concurrency: read lock on muVert.
func (g *Graph) NodeAttr(id, key string) (interface{}, bool, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, false, ErrVertexNotFound
	}
	if v.Metadata == nil {
		return nil, false, nil
	}
	val, ok := v.Metadata[key]

	return val, ok, nil
}

// SetNodeAttr stores value under key in the vertex's Metadata, allocating the
// map on first use. It returns ErrVertexNotFound if id does not name an
// existing vertex.
//
// Complexity: O(1). Concurrency: write lock on muVert.
func (g *Graph) SetNodeAttr(id, key string, value interface{}) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	v, ok := g.vertices[id]
	if !ok {
		return ErrVertexNotFound
	}
	if v.Metadata == nil {
		v.Metadata = make(map[string]interface{})
	}
	v.Metadata[key] = value

	return nil
}

// EdgeAttr returns the value stored under key in the edge's Metadata, and
// whether it was present. It returns ErrEdgeNotFound if id does not name an
// existing edge.
//
// Complexity: O(1). Concurrency: read lock on muEdgeAdj.
func (g *Graph) EdgeAttr(id, key string) (interface{}, bool, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[id]
	if !ok {
		return nil, false, ErrEdgeNotFound
	}
	if e.Metadata == nil {
		return nil, false, nil
	}
	val, ok := e.Metadata[key]

	return val, ok, nil
}

// SetEdgeAttr stores value under key in the edge's Metadata, allocating the
// map on first use. It returns ErrEdgeNotFound if id does not name an
// existing edge.
//
// Complexity: O(1). Concurrency: write lock on muEdgeAdj.
func (g *Graph) SetEdgeAttr(id, key string, value interface{}) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[id]
	if !ok {
		return ErrEdgeNotFound
	}
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value

	return nil
}
