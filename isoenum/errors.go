// SPDX-License-Identifier: MIT
// Package: lvlath/isoenum
//
// errors.go — sentinel errors for the isoenum package.
//
// Error policy: only sentinel variables are exposed; callers branch with
// errors.Is. Context is attached with fmt.Errorf("%w") at the call site.

package isoenum

import "errors"

// ErrDirectednessMismatch indicates host and gl disagree on directedness
// (spec.md §4.1: "H and GL must agree on directedness").
var ErrDirectednessMismatch = errors.New("isoenum: host and shape graph disagree on directedness")

// ErrNilGraph indicates a nil host or shape graph was supplied.
var ErrNilGraph = errors.New("isoenum: graph is nil")

// ErrEmptyShape indicates gl has no vertices; there is no canonical order to match against.
var ErrEmptyShape = errors.New("isoenum: shape graph has no vertices")
