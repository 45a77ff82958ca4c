// Package isoenum enumerates node-induced subgraph isomorphisms of a small
// shape graph GL inside a host graph H (either GI or GO), one canonical
// node-tuple per occurrence.
//
// What:
//
//   - Enumerate(host, gl, edgeAttr, opts...) returns every occurrence of gl
//     inside host, each expressed as an ordered []string of host vertex IDs
//     indexed by gl's canonical node order (gl.Vertices(), already sorted
//     ascending by core.Graph's own contract).
//   - Matching is edge-attribute sensitive: an edge in host only corresponds
//     to an edge in gl if both exist (or both are absent) between the
//     matched pair, and, when both exist, their edgeAttr values are equal.
//     A missing edgeAttr is treated as a sentinel distinct from any real
//     value (mirrors categorical_edge_match(attr, -1) in the reference
//     implementation's networkx-based matcher).
//
// Why:
//
//   - This is GraphWFC's sole dependency on a subgraph-isomorphism facility
//     (spec.md §6.1); everything above it (pattern extraction, constraint
//     propagation) only ever consumes the []string tuples this package
//     produces.
//
// How:
//
//   - VF2-style backtracking over gl's canonical order: at each step, a
//     host candidate is tried against every already-assigned pair for edge
//     consistency (both directions when host/gl are directed) before
//     recursing. host and gl must agree on directedness or Enumerate fails
//     with ErrDirectednessMismatch.
//
// Complexity: worst case O(|V(H)|^|V(GL)|); |V(GL)| is small by the spec's
// own sizing assumption ("GL is tiny"), so this stays practical.
package isoenum
