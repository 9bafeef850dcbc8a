package gltut

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := Pt(1, 2)
	assert.Equal(t, Pt(4, 6), p.Add(Pt(3, 4)))
	assert.Equal(t, Pt(2, 4), p.Mul(2))
	assert.Equal(t, Pt(0.5, 1), p.Div(2))
	assert.Equal(t, Pt(3, -8), p.Scale(Pt(3, -4)))
	assert.Equal(t, p, PtI(1, 2))

	assert.False(t, p.Empty())
	assert.True(t, Pt(0, 2).Empty())
	assert.True(t, Pt(2, 0).Empty())
	assert.True(t, Point{}.Empty())
}
