package matrix

import "golang.org/x/image/math/f32"

// Vector is a vector in homogeneous coordinates (x, y, z, w).
type Vector [4]float32

// Point returns the homogeneous vector for the point (x, y, z).
func Point(x, y, z float32) Vector { return Vector{x, y, z, 1} }

// Direction returns the homogeneous vector for the direction (x, y, z).
// Translations do not affect directions.
//
func Direction(x, y, z float32) Vector { return Vector{x, y, z, 0} }

// Data returns the components of v. The returned slice aliases v.
func (v *Vector) Data() []float32 { return v[:] }

// F32 returns v as an f32.Vec4.
func (v Vector) F32() f32.Vec4 { return f32.Vec4(v) }

// Transform returns the product m * v.
func (m Matrix) Transform(v Vector) Vector {
	var t Vector
	for i := 0; i < 4; i++ {
		t[i] = m[i]*v[0] + m[i+4]*v[1] + m[i+8]*v[2] + m[i+12]*v[3]
	}
	return t
}
