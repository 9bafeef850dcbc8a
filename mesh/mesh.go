// Package mesh generates the vertex and index data of the tutorial shapes.
//
// Vertices carry a position and a normal, interleaved in a single array so
// that they can be uploaded as is into a vertex buffer.
//
package mesh

import (
	"math"

	"github.com/chewxy/math32"
)

// Vertex layout in a vertex buffer.
const (
	Stride         = 6 * 4 // bytes per vertex
	PositionOffset = 0
	NormalOffset   = 3 * 4
)

// Vertex is a vertex with a position and a normal vector.
//
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// V returns the vertex at (x, y, z) with normal (nx, ny, nz).
func V(x, y, z, nx, ny, nz float32) Vertex {
	return Vertex{[3]float32{x, y, z}, [3]float32{nx, ny, nz}}
}

// Flatten returns the vertices as an interleaved float array.
func Flatten(vs []Vertex) []float32 {
	r := make([]float32, 0, len(vs)*6)
	for i := range vs {
		v := &vs[i]
		r = append(r, v.Position[:]...)
		r = append(r, v.Normal[:]...)
	}
	return r
}

// Square returns the four corners of the [-0.5, 0.5] square in the z=0
// plane, in counterclockwise order, for drawing as a line loop.
//
func Square() []Vertex {
	return []Vertex{
		V(-0.5, -0.5, 0, 0, 0, 1),
		V(0.5, -0.5, 0, 0, 0, 1),
		V(0.5, 0.5, 0, 0, 0, 1),
		V(-0.5, 0.5, 0, 0, 0, 1),
	}
}

// WireCube returns the corners of the [-1, 1] cube and the index pairs of its
// twelve edges, for drawing as lines. Normals point away from the center.
//
func WireCube() ([]Vertex, []uint32) {
	const k = 0.57735026 // 1/√3
	vs := []Vertex{
		V(-1, -1, -1, -k, -k, -k),
		V(-1, -1, 1, -k, -k, k),
		V(-1, 1, 1, -k, k, k),
		V(-1, 1, -1, -k, k, -k),
		V(1, 1, -1, k, k, -k),
		V(1, -1, -1, k, -k, -k),
		V(1, -1, 1, k, -k, k),
		V(1, 1, 1, k, k, k),
	}
	is := []uint32{
		1, 0, // a
		2, 7, // b
		3, 0, // c
		4, 7, // d
		5, 0, // e
		6, 7, // f
		1, 2, // g
		2, 3, // h
		3, 4, // i
		4, 5, // j
		5, 6, // k
		6, 1, // l
	}
	return vs, is
}

// SolidCube returns the [-1, 1] cube as 12 triangles with one normal per
// face, and the indices 0 to 35 for drawing them.
//
func SolidCube() ([]Vertex, []uint32) {
	faces := [6]struct {
		n       [3]float32
		corners [6][3]float32
	}{
		{[3]float32{-1, 0, 0}, [6][3]float32{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, -1, -1}, {-1, 1, 1}, {-1, 1, -1}}}, // left
		{[3]float32{0, 0, -1}, [6][3]float32{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, -1, -1}, {-1, 1, -1}, {1, 1, -1}}}, // back
		{[3]float32{0, -1, 0}, [6][3]float32{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, -1}, {1, -1, 1}, {-1, -1, 1}}}, // bottom
		{[3]float32{1, 0, 0}, [6][3]float32{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1}}},       // right
		{[3]float32{0, 1, 0}, [6][3]float32{{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {-1, 1, -1}, {1, 1, 1}, {1, 1, -1}}},       // top
		{[3]float32{0, 0, 1}, [6][3]float32{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, -1, 1}, {1, 1, 1}, {-1, 1, 1}}},       // front
	}
	vs := make([]Vertex, 0, 36)
	for _, f := range faces {
		for _, c := range f.corners {
			vs = append(vs, Vertex{c, f.n})
		}
	}
	is := make([]uint32, len(vs))
	for i := range is {
		is[i] = uint32(i)
	}
	return vs, is
}

// Sphere returns a unit sphere split into slices around the y axis and stacks
// from pole to pole, along with the triangle indices, two triangles per
// slice and stack.
//
// slices must be at least 3 and stacks at least 2; smaller values are
// clamped.
//
func Sphere(slices, stacks int) ([]Vertex, []uint32) {
	if slices < 3 {
		slices = 3
	}
	if stacks < 2 {
		stacks = 2
	}

	vs := make([]Vertex, 0, (slices+1)*(stacks+1))
	for j := 0; j <= stacks; j++ {
		t := float32(j) / float32(stacks)
		y, r := math32.Cos(math.Pi*t), math32.Sin(math.Pi*t)
		for i := 0; i <= slices; i++ {
			s := float32(i) / float32(slices)
			z, x := r*math32.Cos(2*math.Pi*s), r*math32.Sin(2*math.Pi*s)
			vs = append(vs, V(x, y, z, x, y, z))
		}
	}

	is := make([]uint32, 0, slices*stacks*6)
	for j := 0; j < stacks; j++ {
		k := (slices + 1) * j
		for i := 0; i < slices; i++ {
			k0 := uint32(k + i)
			k1 := k0 + 1
			k2 := k1 + uint32(slices)
			k3 := k2 + 1
			// lower left triangle
			is = append(is, k0, k2, k3)
			// upper right triangle
			is = append(is, k0, k3, k1)
		}
	}
	return vs, is
}
