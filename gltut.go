// Package gltut holds the scene state shared by the tutorial renderer: the
// camera, the light and the user controls. Everything here is plain data and
// matrix math; nothing touches OpenGL.
//
package gltut

import (
	"github.com/db47h/gltut/matrix"
	"golang.org/x/image/math/f32"
)

// View is a perspective camera.
//
type View struct {
	Eye    [3]float32
	Target [3]float32
	Up     [3]float32
	Near   float32
	Far    float32
}

// DefaultView returns the camera at (3, 4, 5) looking at the origin with a
// [1, 10] depth range.
//
func DefaultView() View {
	return View{
		Eye:  [3]float32{3, 4, 5},
		Up:   [3]float32{0, 1, 0},
		Near: 1,
		Far:  10,
	}
}

// Matrix returns the view matrix.
func (v *View) Matrix() matrix.Matrix {
	return matrix.LookAt(
		v.Eye[0], v.Eye[1], v.Eye[2],
		v.Target[0], v.Target[1], v.Target[2],
		v.Up[0], v.Up[1], v.Up[2])
}

// ProjectionMatrix returns the perspective projection for a vertical field
// of view of fovy radians and the given aspect ratio.
//
func (v *View) ProjectionMatrix(fovy, aspect float32) matrix.Matrix {
	return matrix.Perspective(fovy, aspect, v.Near, v.Far)
}

// Frame holds the transforms for drawing one object.
//
type Frame struct {
	Projection matrix.Matrix
	View       matrix.Matrix
	ModelView  matrix.Matrix
}

// Frame computes the transforms for the current controls state, t being the
// elapsed time in seconds. The model spins around the y axis at one radian
// per second.
//
func (v *View) Frame(c *Controls, t float32) Frame {
	view := v.Matrix()
	return Frame{
		Projection: v.ProjectionMatrix(c.Fovy(), c.Aspect()),
		View:       view,
		ModelView:  view.Mul(c.Model(t)),
	}
}

// Child returns the frame for an object placed with m relative to the object
// of f.
//
func (f Frame) Child(m matrix.Matrix) Frame {
	f.ModelView = f.ModelView.Mul(m)
	return f
}

// NormalMatrix returns the normal matrix for the model-view transform.
func (f *Frame) NormalMatrix() [9]float32 {
	return f.ModelView.NormalMatrix()
}

// Light is a point light with Phong components.
//
type Light struct {
	Position matrix.Vector // world space, homogeneous
	Ambient  f32.Vec3
	Diffuse  f32.Vec3
	Specular f32.Vec3
}

// DefaultLight is a reddish light at (0, 0, 5).
var DefaultLight = Light{
	Position: matrix.Point(0, 0, 5),
	Ambient:  f32.Vec3{0.2, 0.1, 0.1},
	Diffuse:  f32.Vec3{1, 0.5, 0.5},
	Specular: f32.Vec3{1, 0.5, 0.5},
}

// EyePosition returns the light position in eye space.
func (l *Light) EyePosition(view matrix.Matrix) f32.Vec4 {
	return view.Transform(l.Position).F32()
}

// Material holds Phong reflection coefficients. Its memory layout matches the
// std140 Material uniform block of the built-in shaders.
//
type Material struct {
	Ambient   f32.Vec4 // rgb, padded to 16 bytes
	Diffuse   f32.Vec4 // rgb, padded to 16 bytes
	Specular  f32.Vec3
	Shininess float32
}

// NewMaterial returns a material with the given ambient, diffuse and specular
// colors.
//
func NewMaterial(amb, diff, spec f32.Vec3, shininess float32) Material {
	return Material{
		Ambient:   f32.Vec4{amb[0], amb[1], amb[2]},
		Diffuse:   f32.Vec4{diff[0], diff[1], diff[2]},
		Specular:  spec,
		Shininess: shininess,
	}
}

// DefaultMaterials are the materials of the two spheres.
var DefaultMaterials = []Material{
	NewMaterial(f32.Vec3{0.6, 0.6, 0.2}, f32.Vec3{0.6, 0.6, 0.2}, f32.Vec3{0.3, 0.3, 0.3}, 30),
	NewMaterial(f32.Vec3{0.1, 0.1, 0.5}, f32.Vec3{0.1, 0.1, 0.5}, f32.Vec3{0.4, 0.4, 0.4}, 60),
}
