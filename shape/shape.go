// Package shape uploads meshes to vertex array objects and draws them.
//
// All functions require a current OpenGL 3.2 core context.
//
package shape

import (
	"github.com/db47h/gltut/mesh"
	"github.com/go-gl/gl/v3.2-core/gl"
)

// Vertex attribute locations used by shapes. Shader programs must bind their
// position and normal inputs to these.
//
const (
	PositionAttrib uint32 = 0
	NormalAttrib   uint32 = 1
)

// Mode selects the primitive used to draw a shape. Values map directly to
// their OpenGL equivalents.
//
type Mode uint32

const (
	Lines     Mode = gl.LINES
	LineLoop  Mode = gl.LINE_LOOP
	Triangles Mode = gl.TRIANGLES
)

// Object is a vertex array object with its vertex buffer and, optionally,
// its index buffer.
//
type Object struct {
	vao uint32
	vbo uint32
	ebo uint32
}

// NewObject uploads vertices, and indices if any, to new buffer objects. size
// is the number of position components used by the shader (2 or 3).
//
func NewObject(size int32, vertices []mesh.Vertex, indices []uint32) *Object {
	o := new(Object)
	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	if len(vertices) > 0 {
		data := mesh.Flatten(vertices)
		gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*mesh.Stride, gl.Ptr(data), gl.STATIC_DRAW)
	}
	gl.VertexAttribPointer(PositionAttrib, size, gl.FLOAT, false, mesh.Stride, gl.PtrOffset(mesh.PositionOffset))
	gl.EnableVertexAttribArray(PositionAttrib)
	gl.VertexAttribPointer(NormalAttrib, 3, gl.FLOAT, false, mesh.Stride, gl.PtrOffset(mesh.NormalOffset))
	gl.EnableVertexAttribArray(NormalAttrib)

	if len(indices) > 0 {
		gl.GenBuffers(1, &o.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, o.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	}
	return o
}

// Bind binds the vertex array object for drawing.
func (o *Object) Bind() {
	gl.BindVertexArray(o.vao)
}

// Delete releases the GL objects.
func (o *Object) Delete() {
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteBuffers(1, &o.vbo)
	if o.ebo != 0 {
		gl.DeleteBuffers(1, &o.ebo)
	}
	*o = Object{}
}

// Shape draws an Object with a given primitive.
//
type Shape struct {
	obj     *Object
	mode    Mode
	count   int32
	indexed bool
}

// New returns a shape drawing all vertices in order.
func New(mode Mode, size int32, vertices []mesh.Vertex) *Shape {
	return &Shape{
		obj:   NewObject(size, vertices, nil),
		mode:  mode,
		count: int32(len(vertices)),
	}
}

// NewIndexed returns a shape drawing vertices in the order given by indices.
func NewIndexed(mode Mode, size int32, vertices []mesh.Vertex, indices []uint32) *Shape {
	return &Shape{
		obj:     NewObject(size, vertices, indices),
		mode:    mode,
		count:   int32(len(indices)),
		indexed: true,
	}
}

// Draw draws the shape with the current program.
func (s *Shape) Draw() {
	s.obj.Bind()
	if s.indexed {
		gl.DrawElements(uint32(s.mode), s.count, gl.UNSIGNED_INT, nil)
		return
	}
	gl.DrawArrays(uint32(s.mode), 0, s.count)
}

func (s *Shape) Delete() {
	s.obj.Delete()
}
