// SPDX-License-Identifier: MIT
// Package: lvlath/pattern
//
// errors.go — sentinel errors for the pattern package.

package pattern

import "errors"

// ErrUncoloredNode indicates a GI node lacks a non-null value under
// node_attr (spec.md §4.2: "Every GI node must carry a non-null color...").
var ErrUncoloredNode = errors.New("pattern: GI node has no color under node_attr")

// ErrEmptyShapes indicates GLs was empty; there is nothing to extract.
var ErrEmptyShapes = errors.New("pattern: GLs is empty")
