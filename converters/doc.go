// SPDX-License-Identifier: MIT
// Package: lvlath/converters
//
// Package converters reads and writes the GraphML subset used by
// cmd/graphwfc to load GI/GLs/GO from files and
// persist a solved GO (spec.md §6.3's "graph file I/O" collaborator).
//
// No GraphML library exists anywhere in the retrieved dependency pack (see
// DESIGN.md), so this package is built directly on the standard library's
// encoding/xml, following the same struct-tag-driven (un)marshaling idiom
// used throughout the Go ecosystem for small XML dialects. Attribute values
// round-trip as string, int64, float64, or bool, inferred from a GraphML
// <key> element's attr.type (or, on write, from the Go value's own type).
package converters
