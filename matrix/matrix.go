// Package matrix provides the 4x4 transformation matrices and homogeneous
// vectors used to feed OpenGL uniforms.
//
// Matrices are stored in column-major order, element (row, col) being at
// index row + 4*col, which is the layout expected by glUniformMatrix4fv with
// transpose set to false. Transforms follow the column vector convention
// v' = M * v, so that in A.Mul(B), B is applied first.
//
// None of the constructors return errors. Degenerate input yields a
// documented fallback matrix instead: identity for a zero rotation axis, the
// bare translation for a degenerate LookAt, and the zero matrix for a
// projection volume with a collapsed dimension.
//
package matrix

import (
	"github.com/chewxy/math32"
)

// Matrix is a 4x4 transformation matrix in column-major order.
//
// The zero value is the all-zero matrix, not the identity.
//
type Matrix [16]float32

// New returns a matrix with its elements copied verbatim from a, in
// column-major order. Only the first 16 values of a are used; missing values
// are left at zero.
//
func New(a []float32) Matrix {
	var m Matrix
	copy(m[:], a)
	return m
}

// Identity returns the identity matrix.
func Identity() Matrix {
	var m Matrix
	m.LoadIdentity()
	return m
}

// LoadIdentity resets m to the identity matrix.
func (m *Matrix) LoadIdentity() {
	*m = Matrix{}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// At returns the element at linear index i. i must be in [0, 16).
func (m *Matrix) At(i int) float32 { return m[i] }

// Set sets the element at linear index i to v. i must be in [0, 16).
func (m *Matrix) Set(i int, v float32) { m[i] = v }

// Data returns the 16 elements of m in column-major order, ready for upload
// with glUniformMatrix4fv. The returned slice aliases m.
//
func (m *Matrix) Data() []float32 { return m[:] }

// Mul returns the product m * n. The resulting transform applies n first,
// then m.
//
func (m Matrix) Mul(n Matrix) Matrix {
	var r Matrix
	for k := 0; k < 4; k++ {
		for j := 0; j < 4; j++ {
			r[j+4*k] = m[j]*n[4*k] + m[j+4]*n[1+4*k] + m[j+8]*n[2+4*k] + m[j+12]*n[3+4*k]
		}
	}
	return r
}

// Translate returns a matrix translating by (x, y, z).
func Translate(x, y, z float32) Matrix {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale returns a matrix scaling by (x, y, z).
func Scale(x, y, z float32) Matrix {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// Rotate returns a matrix rotating by angle radians around the axis (x, y,
// z). The axis does not need to be normalized.
//
// If the axis has zero length, Rotate returns the identity matrix.
//
func Rotate(angle, x, y, z float32) Matrix {
	m := Identity()
	d := math32.Sqrt(x*x + y*y + z*z)
	if d <= 0 {
		return m
	}
	l, mm, n := x/d, y/d, z/d
	l2, m2, n2 := l*l, mm*mm, n*n
	lm, mn, nl := l*mm, mm*n, n*l
	c, s := math32.Cos(angle), math32.Sin(angle)
	c1 := 1 - c

	m[0] = (1-l2)*c + l2
	m[1] = lm*c1 + n*s
	m[2] = nl*c1 - mm*s

	m[4] = lm*c1 - n*s
	m[5] = (1-m2)*c + m2
	m[6] = mn*c1 + l*s

	m[8] = nl*c1 + mm*s
	m[9] = mn*c1 - l*s
	m[10] = (1-n2)*c + n2
	return m
}

// LookAt returns a view matrix for an eye at (ex, ey, ez) looking at (gx, gy,
// gz), with (ux, uy, uz) pointing up.
//
// If the up vector is parallel to the line of sight, or if the eye and target
// coincide, the rotation cannot be derived and LookAt returns the translation
// Translate(-ex, -ey, -ez) alone.
//
func LookAt(ex, ey, ez, gx, gy, gz, ux, uy, uz float32) Matrix {
	tv := Translate(-ex, -ey, -ez)

	// t: z axis, pointing from the target to the eye
	tx, ty, tz := ex-gx, ey-gy, ez-gz
	// r: x axis, up × t
	rx, ry, rz := uy*tz-uz*ty, uz*tx-ux*tz, ux*ty-uy*tx
	// s: y axis, t × r
	sx, sy, sz := ty*rz-tz*ry, tz*rx-tx*rz, tx*ry-ty*rx

	s2 := sx*sx + sy*sy + sz*sz
	if s2 == 0 {
		return tv
	}

	rv := Identity()

	r := math32.Sqrt(rx*rx + ry*ry + rz*rz)
	rv[0], rv[4], rv[8] = rx/r, ry/r, rz/r

	s := math32.Sqrt(s2)
	rv[1], rv[5], rv[9] = sx/s, sy/s, sz/s

	t := math32.Sqrt(tx*tx + ty*ty + tz*tz)
	rv[2], rv[6], rv[10] = tx/t, ty/t, tz/t

	return rv.Mul(tv)
}

// Orthogonal returns an orthographic projection mapping the box [left,
// right] × [bottom, top] × [-zNear, -zFar] to the [-1, 1] cube.
//
// The zero matrix is returned if any of the box dimensions is zero.
//
func Orthogonal(left, right, bottom, top, zNear, zFar float32) Matrix {
	var m Matrix
	dx, dy, dz := right-left, top-bottom, zFar-zNear
	if dx == 0 || dy == 0 || dz == 0 {
		return m
	}
	m.LoadIdentity()
	m[0] = 2 / dx
	m[5] = 2 / dy
	m[10] = -2 / dz
	m[12] = -(right + left) / dx
	m[13] = -(top + bottom) / dy
	m[14] = -(zFar + zNear) / dz
	return m
}

// Frustum returns a perspective projection for the view frustum whose near
// clipping plane spans [left, right] × [bottom, top] at distance zNear.
//
// The zero matrix is returned if any of the frustum dimensions is zero.
//
func Frustum(left, right, bottom, top, zNear, zFar float32) Matrix {
	var m Matrix
	dx, dy, dz := right-left, top-bottom, zFar-zNear
	if dx == 0 || dy == 0 || dz == 0 {
		return m
	}
	m.LoadIdentity()
	m[0] = 2 * zNear / dx
	m[5] = 2 * zNear / dy
	m[8] = (right + left) / dx
	m[9] = (top + bottom) / dy
	m[10] = -(zFar + zNear) / dz
	m[11] = -1
	m[14] = -2 * zFar * zNear / dz
	m[15] = 0
	return m
}

// Perspective returns a symmetric perspective projection with a vertical
// field of view of fovy radians and the given aspect ratio (width / height).
//
// The zero matrix is returned if zNear == zFar, if aspect is zero or if the
// field of view is zero.
//
func Perspective(fovy, aspect, zNear, zFar float32) Matrix {
	var m Matrix
	dz := zFar - zNear
	t := math32.Tan(fovy * 0.5)
	if dz == 0 || aspect == 0 || t == 0 {
		return m
	}
	m.LoadIdentity()
	m[5] = 1 / t
	m[0] = m[5] / aspect
	m[10] = -(zFar + zNear) / dz
	m[11] = -1
	m[14] = -2 * zFar * zNear / dz
	m[15] = 0
	return m
}

// NormalMatrix returns the matrix that transforms normal vectors for m, in
// column-major order as expected by glUniformMatrix3fv.
//
// This is the cofactor matrix of the upper-left 3x3 block of m, i.e. its
// inverse transpose scaled by its determinant. Transformed normals must be
// normalized.
//
func (m *Matrix) NormalMatrix() [9]float32 {
	return [9]float32{
		m[5]*m[10] - m[6]*m[9],
		m[6]*m[8] - m[4]*m[10],
		m[4]*m[9] - m[5]*m[8],
		m[9]*m[2] - m[10]*m[1],
		m[10]*m[0] - m[8]*m[2],
		m[8]*m[1] - m[9]*m[0],
		m[1]*m[6] - m[2]*m[5],
		m[2]*m[4] - m[0]*m[6],
		m[0]*m[5] - m[1]*m[4],
	}
}
