// SPDX-License-Identifier: MIT
// Package: lvlath/pattern
//
// pattern.go — the Pattern key type: an ordered tuple of Colors, encoded as
// a comparable string so it can key a Go map (patternCount, and the wfc
// package's per-GL pattern index).

package pattern

import (
	"strconv"
	"strings"
)

// Pattern is an ordered tuple of |V(GL)| Colors, encoded for use as a map
// key. Two Patterns compare equal iff their decoded Color tuples are equal.
type Pattern string

// Encode packs colors into a Pattern key. The encoding is unambiguous:
// decimal color indices joined by a separator that cannot itself appear in
// a decimal integer.
func Encode(colors []Color) Pattern {
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = strconv.Itoa(int(c))
	}
	return Pattern(strings.Join(parts, ","))
}

// Decode unpacks a Pattern back into its Color tuple.
func Decode(p Pattern) []Color {
	if p == "" {
		return nil
	}
	parts := strings.Split(string(p), ",")
	out := make([]Color, len(parts))
	for i, s := range parts {
		n, _ := strconv.Atoi(s)
		out[i] = Color(n)
	}
	return out
}
