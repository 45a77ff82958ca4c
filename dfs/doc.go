// Package dfs implements depth‑first search traversal on a core.Graph,
// supporting both directed and undirected graphs where appropriate.
//
// What:
//
//   - DFS (Depth‑First Search): explores as far as possible along each
//     branch before backtracking. Supports cancellation via context.Context.
//
// Why:
//   - isoenum uses DFS to check whether a shape graph GL is weakly
//     connected, so it can warn before an expensive enumeration over a
//     disconnected GL.
//
// Key Types & Constants:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context
//   - DFSResult: collects post‑order, Depth, Parent, Visited maps
//
// Complexity:
//
//   - DFS: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex ID not in graph
//   - context.Canceled        DFS canceled via context
//
// Functions:
//
//   - DFS(g *core.Graph, startID string, opts ...Option) (*DFSResult, error)
//     perform depth‑first traversal from startID
//   - DefaultOptions(), WithContext()
package dfs
