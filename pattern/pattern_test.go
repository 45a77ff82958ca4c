package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlath/pattern"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	colors := []pattern.Color{0, 3, 12, 1}

	encoded := pattern.Encode(colors)
	decoded := pattern.Decode(encoded)

	assert.Equal(t, colors, decoded)
}

func TestEncode_DistinctTuplesProduceDistinctPatterns(t *testing.T) {
	a := pattern.Encode([]pattern.Color{1, 2})
	b := pattern.Encode([]pattern.Color{12})

	assert.NotEqual(t, a, b, "naive concatenation without a separator would collide here")
}

func TestDecode_EmptyPattern(t *testing.T) {
	assert.Nil(t, pattern.Decode(""))
}
