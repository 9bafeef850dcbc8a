// Command gltut draws two lit, spinning shapes in a window.
//
// Arrow keys move the first shape, the left mouse button drops it under the
// cursor and the mouse wheel zooms. Escape quits.
//
package main

import (
	"flag"
	"log"
	"time"

	"github.com/db47h/gltut"
	"github.com/db47h/gltut/app"
	"github.com/db47h/gltut/assets"
	"github.com/db47h/gltut/debug"
	"github.com/db47h/gltut/matrix"
	"github.com/db47h/gltut/mesh"
	"github.com/db47h/gltut/shader"
	"github.com/db47h/gltut/shape"
	"github.com/db47h/gltut/uniform"
	"github.com/db47h/ofs"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/pkg/errors"
)

var (
	width     = flag.Int("w", 640, "window width")
	height    = flag.Int("h", 480, "window height")
	title     = flag.String("title", "Hello", "window title")
	vsync     = flag.Int("vsync", 1, "vsync value for glfw.SwapInterval")
	resDir    = flag.String("res", "resources", "directory holding point.vert and point.frag")
	fps       = flag.Int("fps", 0, "maximum frame rate, 0 for no limit")
	shapeName = flag.String("shape", "sphere", "shape to draw: sphere, cube, wirecube or square")
	showFPS   = flag.Bool("stats", false, "log the frame rate every second")
	hidden    = flag.Bool("hidden", false, "do not show the window")
)

type uniforms struct {
	projection   shader.Uniform
	modelView    shader.Uniform
	normalMatrix shader.Uniform
	lpos         shader.Uniform
	lamb         shader.Uniform
	ldiff        shader.Uniform
	lspec        shader.Uniform
}

type program struct {
	mgr       *assets.Manager
	prog      shader.Program
	u         uniforms
	materials *uniform.Buffer[gltut.Material]
	shape     *shape.Shape
	view      gltut.View
	light     gltut.Light

	timer    debug.Timer
	last     time.Duration
	lastStat time.Duration
}

func (p *program) Init(w app.Window) error {
	log.Print(app.DriverVersion())
	fw, fh := w.FrameBufferSize()
	log.Printf("framebuffer %dx%d", fw, fh)

	vsrc, fsrc := p.sources()
	prog, err := shader.Load(vsrc, fsrc,
		[]shader.Binding{
			{Name: gltut.AttribPosition, Location: shape.PositionAttrib},
			{Name: gltut.AttribNormal, Location: shape.NormalAttrib},
		},
		[]shader.Binding{{Name: gltut.FragData, Location: 0}})
	if err != nil {
		return err
	}
	p.prog = prog
	if err = prog.UniformBlockBinding(gltut.BlockMaterial, gltut.MaterialBinding); err != nil {
		return err
	}
	p.u = uniforms{
		projection:   prog.UniformLocation(gltut.UniformProjection),
		modelView:    prog.UniformLocation(gltut.UniformModelView),
		normalMatrix: prog.UniformLocation(gltut.UniformNormalMatrix),
		lpos:         prog.UniformLocation(gltut.UniformLightPos),
		lamb:         prog.UniformLocation(gltut.UniformLightAmb),
		ldiff:        prog.UniformLocation(gltut.UniformLightDiff),
		lspec:        prog.UniformLocation(gltut.UniformLightSpec),
	}

	p.materials, err = uniform.New(gltut.DefaultMaterials, len(gltut.DefaultMaterials))
	if err != nil {
		return err
	}

	p.shape, err = newShape(*shapeName)
	if err != nil {
		return err
	}

	p.view = gltut.DefaultView()
	p.light = gltut.DefaultLight

	gl.ClearColor(1, 1, 1, 0)
	gl.FrontFace(gl.CCW)
	gl.CullFace(gl.BACK)
	gl.Enable(gl.CULL_FACE)
	gl.ClearDepth(1)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

// sources returns the shader sources from the resource directory, or the
// built-in ones if they cannot be loaded.
//
func (p *program) sources() (vsrc, fsrc []byte) {
	vsrc, fsrc = gltut.VertexShader, gltut.FragmentShader
	if p.mgr == nil {
		return
	}
	if err := p.mgr.Wait(); err != nil {
		log.Printf("using built-in shaders: %v", err)
		return
	}
	// Wait returned no error, so both files are loaded.
	vsrc, _ = p.mgr.File("point.vert")
	fsrc, _ = p.mgr.File("point.frag")
	return
}

func newShape(name string) (*shape.Shape, error) {
	switch name {
	case "sphere":
		v, i := mesh.Sphere(16, 8)
		return shape.NewIndexed(shape.Triangles, 3, v, i), nil
	case "cube":
		v, i := mesh.SolidCube()
		return shape.NewIndexed(shape.Triangles, 3, v, i), nil
	case "wirecube":
		v, i := mesh.WireCube()
		return shape.NewIndexed(shape.Lines, 3, v, i), nil
	case "square":
		return shape.New(shape.LineLoop, 2, mesh.Square()), nil
	}
	return nil, errors.Errorf("unknown shape %q", name)
}

func (p *program) Draw(w app.Window, elapsed time.Duration) {
	if *showFPS {
		p.stats(elapsed)
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	p.prog.Use()

	f := p.view.Frame(w.Controls(), float32(elapsed.Seconds()))
	p.u.projection.Matrix4(&f.Projection)

	lpos := p.light.EyePosition(f.View)
	p.u.lpos.Vec4(&lpos)
	p.u.lamb.Vec3(&p.light.Ambient)
	p.u.ldiff.Vec3(&p.light.Diffuse)
	p.u.lspec.Vec3(&p.light.Specular)

	p.drawObject(&f, 0)
	child := f.Child(matrix.Translate(0, 0, 3))
	p.drawObject(&child, 1)
}

func (p *program) drawObject(f *gltut.Frame, material int) {
	nm := f.NormalMatrix()
	p.u.modelView.Matrix4(&f.ModelView)
	p.u.normalMatrix.Matrix3(&nm)
	p.materials.Select(gltut.MaterialBinding, material)
	p.shape.Draw()
}

func (p *program) stats(elapsed time.Duration) {
	p.timer.Add(elapsed - p.last)
	p.last = elapsed
	if elapsed-p.lastStat >= time.Second {
		p.lastStat = elapsed
		log.Print(&p.timer)
	}
}

func (p *program) Terminate() error {
	if p.shape != nil {
		p.shape.Delete()
	}
	if p.materials != nil {
		p.materials.Delete()
	}
	p.prog.Delete()
	return nil
}

func main() {
	flag.Parse()

	p := new(program)

	// start loading shaders while the window opens
	var ovl ofs.Overlay
	if err := ovl.Add(false, *resDir); err != nil {
		log.Printf("resource directory: %v", err)
	} else {
		p.mgr = assets.NewManager(&ovl)
		defer p.mgr.Close()
		p.mgr.Preload("point.vert", "point.frag")
	}

	opts := []app.WindowOption{
		app.Title(*title),
		app.Size(*width, *height),
		app.SwapInterval(*vsync),
		app.Visible(!*hidden),
	}
	if *fps > 0 {
		opts = append(opts, app.MinFrameTime(time.Second/time.Duration(*fps)))
	}
	if err := app.Main(p, opts...); err != nil {
		log.Fatal(err)
	}
}
