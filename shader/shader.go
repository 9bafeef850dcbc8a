// Package shader compiles and links GLSL programs and uploads uniform values.
//
// All functions require a current OpenGL 3.2 core context.
//
package shader

import (
	"strings"

	"github.com/db47h/gltut/matrix"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/pkg/errors"
	"golang.org/x/image/math/f32"
)

// Shader is a compiled shader object.
//
type Shader uint32

// New compiles source as a shader of type typ (gl.VERTEX_SHADER or
// gl.FRAGMENT_SHADER). On failure, the returned error holds the compiler log.
//
func New(typ uint32, source []byte) (Shader, error) {
	if len(source) == 0 {
		return 0, errors.New("empty shader source")
	}
	s := gl.CreateShader(typ)
	csrc, free := gl.Strs(string(source) + "\x00")
	gl.ShaderSource(s, 1, csrc, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		log := shaderLog(s)
		gl.DeleteShader(s)
		return 0, errors.Errorf("compile error in %s shader: %s", stageName(typ), log)
	}
	return Shader(s), nil
}

func (s Shader) Delete() {
	gl.DeleteShader(uint32(s))
}

func shaderLog(s uint32) string {
	var n int32
	gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(n))
	gl.GetShaderInfoLog(s, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func stageName(typ uint32) string {
	switch typ {
	case gl.VERTEX_SHADER:
		return "vertex"
	case gl.FRAGMENT_SHADER:
		return "fragment"
	case gl.GEOMETRY_SHADER:
		return "geometry"
	}
	return "unknown"
}

// Binding binds a vertex attribute or a fragment output to a fixed location
// before linking.
//
type Binding struct {
	Name     string
	Location uint32
}

// Program is a linked shader program.
//
type Program uint32

// NewProgram links the given shaders. Attributes and fragment outputs are
// bound to the requested locations before linking. The shaders can be
// deleted once the program is linked.
//
func NewProgram(attribs, frags []Binding, shaders ...Shader) (Program, error) {
	if len(shaders) == 0 {
		return 0, errors.New("no shaders to link")
	}
	p := gl.CreateProgram()
	for _, s := range shaders {
		gl.AttachShader(p, uint32(s))
	}
	for _, b := range attribs {
		gl.BindAttribLocation(p, b.Location, gl.Str(b.Name+"\x00"))
	}
	for _, b := range frags {
		gl.BindFragDataLocation(p, b.Location, gl.Str(b.Name+"\x00"))
	}
	gl.LinkProgram(p)

	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programLog(p)
		gl.DeleteProgram(p)
		return 0, errors.Errorf("link error: %s", log)
	}
	return Program(p), nil
}

// Load compiles the vertex and fragment sources and links them into a
// program.
//
func Load(vsrc, fsrc []byte, attribs, frags []Binding) (Program, error) {
	vs, err := New(gl.VERTEX_SHADER, vsrc)
	if err != nil {
		return 0, err
	}
	defer vs.Delete()
	fs, err := New(gl.FRAGMENT_SHADER, fsrc)
	if err != nil {
		return 0, err
	}
	defer fs.Delete()
	return NewProgram(attribs, frags, vs, fs)
}

func programLog(p uint32) string {
	var n int32
	gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &n)
	if n <= 1 {
		return ""
	}
	log := strings.Repeat("\x00", int(n))
	gl.GetProgramInfoLog(p, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (p Program) Delete() {
	gl.DeleteProgram(uint32(p))
}

func (p Program) Use() {
	gl.UseProgram(uint32(p))
}

// UniformLocation returns the location of the named uniform, or -1 if the
// program has no active uniform with that name. Setting a value at location
// -1 is a no-op.
//
func (p Program) UniformLocation(name string) Uniform {
	return Uniform(gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00")))
}

// UniformBlockBinding assigns the named uniform block to a uniform buffer
// binding point.
//
func (p Program) UniformBlockBinding(name string, bindingPoint uint32) error {
	idx := gl.GetUniformBlockIndex(uint32(p), gl.Str(name+"\x00"))
	if idx == gl.INVALID_INDEX {
		return errors.Errorf("unknown uniform block %s", name)
	}
	gl.UniformBlockBinding(uint32(p), idx, bindingPoint)
	return nil
}

// Uniform is a uniform location in the current program.
//
type Uniform int32

// Matrix4 uploads a 4x4 matrix.
func (u Uniform) Matrix4(m *matrix.Matrix) {
	gl.UniformMatrix4fv(int32(u), 1, false, &m[0])
}

// Matrix3 uploads a column-major 3x3 matrix.
func (u Uniform) Matrix3(m *[9]float32) {
	gl.UniformMatrix3fv(int32(u), 1, false, &m[0])
}

func (u Uniform) Vec4(v *f32.Vec4) {
	gl.Uniform4fv(int32(u), 1, &v[0])
}

func (u Uniform) Vec3(v *f32.Vec3) {
	gl.Uniform3fv(int32(u), 1, &v[0])
}
