// SPDX-License-Identifier: MIT
// Package: lvlath/pattern
//
// extract.go — Pattern Extractor (spec.md §4.2): counts the color patterns
// GI exhibits under each GL's isos.

package pattern

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/isoenum"
)

// Extract enumerates gi's isos for every gl in gls (or reuses giIsos if
// non-nil, one []isoenum.Iso per gl, for cache-equivalence callers), colors
// each iso via nodeAttr through palette, and returns, per gl, a mapping from
// encoded Pattern to its frequency in gi. It also returns the isos used, so
// callers that did not supply giIsos can cache them.
//
// Every gi node touched by any iso must carry a non-null value under
// nodeAttr, or ErrUncoloredNode is returned.
func Extract(
	gi *core.Graph,
	gls []*core.Graph,
	nodeAttr, edgeAttr string,
	palette *Palette,
	giIsos [][]isoenum.Iso,
	opts ...isoenum.Option,
) ([]map[Pattern]int, [][]isoenum.Iso, error) {
	if len(gls) == 0 {
		return nil, nil, ErrEmptyShapes
	}

	counts := make([]map[Pattern]int, len(gls))
	isos := make([][]isoenum.Iso, len(gls))

	for j, gl := range gls {
		var glIsos []isoenum.Iso
		if giIsos != nil {
			glIsos = giIsos[j]
		} else {
			found, err := isoenum.Enumerate(gi, gl, edgeAttr, opts...)
			if err != nil {
				return nil, nil, fmt.Errorf("pattern: Extract: GL[%d]: %w", j, err)
			}
			glIsos = found
		}
		isos[j] = glIsos

		counted := make(map[Pattern]int)
		colors := make([]Color, len(isoenum.CanonicalOrder(gl)))
		for _, iso := range glIsos {
			for i, node := range iso {
				val, ok, err := gi.NodeAttr(node, nodeAttr)
				if err != nil {
					return nil, nil, fmt.Errorf("pattern: Extract: GL[%d]: node %q: %w", j, node, err)
				}
				if !ok || val == nil {
					return nil, nil, fmt.Errorf("pattern: Extract: GL[%d]: node %q: %w", j, node, ErrUncoloredNode)
				}
				colors[i] = palette.Intern(val)
			}
			p := Encode(colors)
			counted[p]++
		}
		counts[j] = counted
	}

	return counts, isos, nil
}
