package gltut

import (
	"github.com/db47h/gltut/matrix"
)

// DefaultScale is the initial zoom scale of Controls.
const DefaultScale = 100

// Controls tracks the user input that drives the scene.
//
// The zero value is not usable; use NewControls.
//
type Controls struct {
	Size     Point   // window size in screen coordinates
	Scale    float32 // zoom; the vertical field of view is Scale/100 radians
	Location Point   // model location in normalized device coordinates
}

// NewControls returns controls for a window of the given size with the model
// at the center.
//
func NewControls(width, height int) *Controls {
	return &Controls{Size: PtI(width, height), Scale: DefaultScale}
}

// Resize updates the window size.
func (c *Controls) Resize(width, height int) {
	c.Size = PtI(width, height)
}

// Scroll adjusts the zoom by the wheel offset dy.
func (c *Controls) Scroll(dy float64) {
	c.Scale += float32(dy)
}

// Nudge moves the model by one pixel in the directions given by the signs of
// dx and dy. Positive y is up.
//
func (c *Controls) Nudge(dx, dy int) {
	var step Point
	if c.Size.X > 0 {
		step.X = float32(sign(dx)) / c.Size.X
	}
	if c.Size.Y > 0 {
		step.Y = float32(sign(dy)) / c.Size.Y
	}
	c.Location = c.Location.Add(step.Mul(2))
}

// PointAt moves the model under the cursor at (x, y) in screen coordinates.
// It does nothing while the window has no area.
//
func (c *Controls) PointAt(x, y float64) {
	if c.Size.Empty() {
		return
	}
	c.Location = ToNDC(c.Size, Pt(float32(x), float32(y)))
}

// Fovy returns the vertical field of view in radians.
func (c *Controls) Fovy() float32 {
	return c.Scale * 0.01
}

// Aspect returns the window aspect ratio, or 0 if the window has no height.
func (c *Controls) Aspect() float32 {
	if c.Size.Y == 0 {
		return 0
	}
	return c.Size.X / c.Size.Y
}

// Model returns the model matrix: a rotation of angle radians around the y
// axis, then a translation to Location.
//
func (c *Controls) Model(angle float32) matrix.Matrix {
	return matrix.Translate(c.Location.X, c.Location.Y, 0).Mul(matrix.Rotate(angle, 0, 1, 0))
}

// ToNDC converts screen coordinates to normalized device coordinates in range
// [-1, 1]. Screen coordinates have their origin at the top left corner.
//
// An empty size maps every point to the origin.
//
func ToNDC(size Point, p Point) Point {
	if size.Empty() {
		return Point{}
	}
	return Pt(p.X/size.X, -p.Y/size.Y).Mul(2).Add(Pt(-1, 1))
}

// FromNDC converts normalized device coordinates to screen coordinates.
func FromNDC(size Point, p Point) Point {
	return Pt(p.X, -p.Y).Add(Pt(1, 1)).Div(2).Scale(size)
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
