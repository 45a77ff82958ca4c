package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlath/pattern"
)

func TestPalette_InternAssignsDenseIndices(t *testing.T) {
	p := pattern.NewPalette()

	red := p.Intern("red")
	green := p.Intern("green")
	redAgain := p.Intern("red")

	assert.Equal(t, red, redAgain, "interning the same value twice must return the same Color")
	assert.NotEqual(t, red, green)
	assert.Equal(t, 2, p.Len())
}

func TestPalette_LookupUnknownValue(t *testing.T) {
	p := pattern.NewPalette()
	p.Intern("blue")

	_, ok := p.Lookup("yellow")
	assert.False(t, ok)

	c, ok := p.Lookup("blue")
	assert.True(t, ok)
	assert.Equal(t, "blue", p.Value(c))
}

func TestPalette_DistinctValueTypesDoNotCollide(t *testing.T) {
	p := pattern.NewPalette()

	a := p.Intern(1)
	b := p.Intern("1")

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, p.Len())
}
