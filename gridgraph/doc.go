// Package gridgraph treats a 2D grid of cells as a graph, so tile maps and
// other raster-shaped inputs can feed the same *core.Graph-based pipeline
// (wfc, isoenum, converters) as any other GI/GL/GO.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid.
//   - ToCoreGraph converts it to a *core.Graph, one vertex per cell (ID
//     "x,y"), with orthogonal (Conn4) or 8-directional (Conn8) unit-weight
//     edges between neighbors and {x,y,value} vertex metadata.
//
// Why:
//
//   - GI/GL/GO can be built from literal tile grids instead of
//     hand-listing vertices and edges.
//
// Complexity:
//
//   - NewGridGraph: O(W×H), Memory: O(W×H).
//   - ToCoreGraph:  O(W×H×d + E), Memory: O(W×H + E), d = 4 or 8.
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
