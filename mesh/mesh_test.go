package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sub(a, b [3]float32) [3]float32 { return [3]float32{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

func cross(a, b [3]float32) [3]float32 {
	return [3]float32{a[1]*b[2] - a[2]*b[1], a[2]*b[0] - a[0]*b[2], a[0]*b[1] - a[1]*b[0]}
}

func dot(a, b [3]float32) float32 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

func length(a [3]float32) float32 { return math32.Sqrt(dot(a, a)) }

func TestFlatten(t *testing.T) {
	vs := []Vertex{V(1, 2, 3, 4, 5, 6), V(7, 8, 9, 10, 11, 12)}
	f := Flatten(vs)
	require.Len(t, f, 12)
	for i, v := range f {
		assert.Equal(t, float32(i+1), v)
	}
	assert.Equal(t, 6*4, Stride)
	assert.Equal(t, NormalOffset, 12)
	assert.Empty(t, Flatten(nil))
}

func TestSquare(t *testing.T) {
	vs := Square()
	require.Len(t, vs, 4)
	e0 := sub(vs[1].Position, vs[0].Position)
	e1 := sub(vs[2].Position, vs[1].Position)
	assert.Greater(t, cross(e0, e1)[2], float32(0), "counterclockwise")
}

func TestWireCube(t *testing.T) {
	vs, is := WireCube()
	require.Len(t, vs, 8)
	require.Len(t, is, 24)
	seen := make(map[[2]uint32]bool)
	for i := 0; i < len(is); i += 2 {
		a, b := is[i], is[i+1]
		require.Less(t, int(a), len(vs))
		require.Less(t, int(b), len(vs))
		assert.InDelta(t, 2, length(sub(vs[a].Position, vs[b].Position)), 1e-6, "edge %d-%d", a, b)
		if a > b {
			a, b = b, a
		}
		assert.False(t, seen[[2]uint32{a, b}], "duplicate edge %d-%d", a, b)
		seen[[2]uint32{a, b}] = true
	}
	for _, v := range vs {
		assert.InDelta(t, 1, length(v.Normal), 1e-6)
		assert.Greater(t, dot(v.Normal, v.Position), float32(0))
	}
}

func TestSolidCube(t *testing.T) {
	vs, is := SolidCube()
	require.Len(t, vs, 36)
	require.Len(t, is, 36)
	for i, idx := range is {
		assert.Equal(t, uint32(i), idx)
	}
	for i := 0; i < len(vs); i += 3 {
		a, b, c := vs[i], vs[i+1], vs[i+2]
		assert.Equal(t, a.Normal, b.Normal)
		assert.Equal(t, a.Normal, c.Normal)
		n := cross(sub(b.Position, a.Position), sub(c.Position, a.Position))
		// front faces are counterclockwise seen from outside
		assert.Greater(t, dot(n, a.Normal), float32(0), "triangle %d", i/3)
		// every corner lies on the face plane
		for _, v := range []Vertex{a, b, c} {
			assert.Equal(t, float32(1), dot(v.Position, a.Normal))
		}
	}
}

func TestSphere(t *testing.T) {
	const slices, stacks = 16, 8
	vs, is := Sphere(slices, stacks)
	require.Len(t, vs, (slices+1)*(stacks+1))
	require.Len(t, is, slices*stacks*6)

	for _, v := range vs {
		assert.InDelta(t, 1, length(v.Position), 1e-6)
		assert.Equal(t, v.Position, v.Normal)
	}
	// poles
	assert.InDelta(t, 1, vs[0].Position[1], 1e-6)
	assert.InDelta(t, -1, vs[len(vs)-1].Position[1], 1e-6)

	for _, idx := range is {
		require.Less(t, int(idx), len(vs))
	}
	// first quad
	assert.Equal(t, []uint32{0, 17, 18, 0, 18, 1}, is[:6])

	// non-degenerate triangles face outwards
	for i := 0; i < len(is); i += 3 {
		a, b, c := vs[is[i]].Position, vs[is[i+1]].Position, vs[is[i+2]].Position
		n := cross(sub(b, a), sub(c, a))
		if length(n) < 1e-6 {
			continue // collapsed at the poles
		}
		center := [3]float32{(a[0] + b[0] + c[0]) / 3, (a[1] + b[1] + c[1]) / 3, (a[2] + b[2] + c[2]) / 3}
		assert.Greater(t, dot(n, center), float32(0), "triangle %d", i/3)
	}
}

func TestSphereClamp(t *testing.T) {
	vs, is := Sphere(0, 0)
	assert.Len(t, vs, 4*3)
	assert.Len(t, is, 3*2*6)
}
