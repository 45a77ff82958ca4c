// SPDX-License-Identifier: MIT
// Package: lvlath/converters

package converters

import "errors"

// ErrNoGraphElement indicates a GraphML document had no <graph> element.
var ErrNoGraphElement = errors.New("converters: graphml document has no <graph> element")

// ErrUnknownAttrType indicates a <key> element named an attr.type this
// package does not understand.
var ErrUnknownAttrType = errors.New("converters: unsupported graphml attr.type")

// ErrUnresolvedKey indicates a <data key=\"...\"> referenced a key id with
// no matching <key> declaration.
var ErrUnresolvedKey = errors.New("converters: data element references an undeclared key")
