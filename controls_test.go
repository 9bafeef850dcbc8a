package gltut

import (
	"testing"

	"github.com/db47h/gltut/matrix"
	"github.com/stretchr/testify/assert"
)

func TestNewControls(t *testing.T) {
	c := NewControls(640, 480)
	assert.Equal(t, Pt(640, 480), c.Size)
	assert.Equal(t, float32(DefaultScale), c.Scale)
	assert.Equal(t, Point{}, c.Location)
	assert.InDelta(t, 640.0/480.0, c.Aspect(), 1e-6)

	c.Resize(800, 400)
	assert.Equal(t, Pt(800, 400), c.Size)
	assert.Equal(t, float32(2), c.Aspect())

	c.Resize(800, 0)
	assert.Equal(t, float32(0), c.Aspect())
}

func TestNudge(t *testing.T) {
	c := NewControls(200, 100)
	c.Nudge(1, 0)
	assert.Equal(t, Pt(0.01, 0), c.Location)
	c.Nudge(-5, 1)
	assert.InDelta(t, 0, c.Location.X, 1e-7)
	assert.InDelta(t, 0.02, c.Location.Y, 1e-7)
	c.Nudge(0, -1)
	assert.InDelta(t, 0, c.Location.Y, 1e-7)

	// no size, no move
	c = NewControls(0, 0)
	c.Nudge(1, 1)
	assert.Equal(t, Point{}, c.Location)
}

func TestPointAt(t *testing.T) {
	c := NewControls(200, 100)
	c.PointAt(0, 0)
	assert.Equal(t, Pt(-1, 1), c.Location)
	c.PointAt(200, 100)
	assert.Equal(t, Pt(1, -1), c.Location)
	c.PointAt(100, 50)
	assert.Equal(t, Pt(0, 0), c.Location)
	c.PointAt(150, 25)
	assert.Equal(t, Pt(0.5, 0.5), c.Location)
}

func TestPointAtEmptyWindow(t *testing.T) {
	// a minimized window reports a 0x0 size
	c := NewControls(0, 0)
	c.Location = Pt(0.25, 0.5)
	c.PointAt(10, 10)
	assert.Equal(t, Pt(0.25, 0.5), c.Location)
	m := c.Model(0)
	assert.Equal(t, float32(0.25), m[12])
	assert.Equal(t, float32(0.5), m[13])

	c.Resize(100, 0)
	c.PointAt(10, 10)
	assert.Equal(t, Pt(0.25, 0.5), c.Location)

	assert.Equal(t, Point{}, ToNDC(Pt(0, 0), Pt(10, 10)))
	assert.Equal(t, Point{}, ToNDC(Pt(100, 0), Pt(10, 10)))
}

func TestNDCRoundTrip(t *testing.T) {
	sz := Pt(640, 480)
	for _, p := range []Point{{0, 0}, {320, 240}, {12.5, 400}, {640, 480}} {
		q := FromNDC(sz, ToNDC(sz, p))
		assert.InDelta(t, p.X, q.X, 1e-3)
		assert.InDelta(t, p.Y, q.Y, 1e-3)
	}
}

func TestModel(t *testing.T) {
	c := NewControls(100, 100)
	assert.Equal(t, matrix.Rotate(0.5, 0, 1, 0), c.Model(0.5))

	c.Location = Pt(0.25, -0.5)
	m := c.Model(0)
	assert.Equal(t, matrix.Translate(0.25, -0.5, 0), m)
	v := c.Model(1.3).Transform(matrix.Point(0, 0, 0))
	assert.Equal(t, matrix.Vector{0.25, -0.5, 0, 1}, v)
}
