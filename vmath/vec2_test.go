package vmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDist(t *testing.T) {
	assert.Equal(t, 5.0, Dist(1, 1, 4, 5))
	assert.Equal(t, 25.0, DistSq(1, 1, 4, 5))
	assert.Zero(t, Dist(2, 3, 2, 3))
}

func TestV2LerpAndMid(t *testing.T) {
	a, b := V2(0, 10), V2(10, 0)
	l := V2Lerp(a, b, 0.3)
	assert.InDelta(t, 3, l.X, 1e-12)
	assert.InDelta(t, 7, l.Y, 1e-12)
	assert.Equal(t, a, V2Lerp(a, b, 0))
	assert.Equal(t, V2(5, 5), V2Mid(a, b))
}
