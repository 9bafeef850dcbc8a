package app

import (
	"fmt"

	"github.com/db47h/gltut"
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
)

// DriverVersion returns the GLFW and OpenGL versions in use. It must be
// called from Interface.Init or later.
//
func DriverVersion() string {
	return fmt.Sprintf("GLFW %s - %s %s (%s)",
		glfw.GetVersionString(),
		gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.VERSION)),
		gl.GoStr(gl.GetString(gl.RENDERER)))
}

var drv driver = new(glfwDriver)

type glfwDriver struct {
	w *glfwWindow
}

func (d *glfwDriver) init(cfg *winCfg) error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw init")
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if cfg.hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.True)
	}

	w, err := glfw.CreateWindow(cfg.w, cfg.h, cfg.title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return errors.Wrap(err, "create window")
	}
	w.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		w.Destroy()
		glfw.Terminate()
		return errors.Wrap(err, "gl init")
	}
	glfw.SwapInterval(cfg.swapInterval)

	d.w = &glfwWindow{
		glfw:     w,
		controls: gltut.NewControls(w.GetSize()),
	}
	w.SetSizeCallback(d.w.sizeCallback)
	w.SetFramebufferSizeCallback(d.w.frameBufferSizeCallback)
	w.SetScrollCallback(d.w.scrollCallback)
	d.w.frameBufferSizeCallback(w, 0, 0)
	return nil
}

func (d *glfwDriver) terminate() {
	glfw.Terminate()
}

func (d *glfwDriver) window() window {
	return d.w
}

type glfwWindow struct {
	glfw     *glfw.Window
	controls *gltut.Controls
}

func (w *glfwWindow) Controls() *gltut.Controls {
	return w.controls
}

func (w *glfwWindow) FrameBufferSize() (int, int) {
	return w.glfw.GetFramebufferSize()
}

func (w *glfwWindow) Destroy() {
	w.glfw.Destroy()
}

func (w *glfwWindow) swapBuffers() {
	w.glfw.SwapBuffers()
}

func (w *glfwWindow) processEvents() bool {
	glfw.PollEvents()

	gw, c := w.glfw, w.controls
	switch {
	case gw.GetKey(glfw.KeyLeft) != glfw.Release:
		c.Nudge(-1, 0)
	case gw.GetKey(glfw.KeyRight) != glfw.Release:
		c.Nudge(1, 0)
	}
	switch {
	case gw.GetKey(glfw.KeyDown) != glfw.Release:
		c.Nudge(0, -1)
	case gw.GetKey(glfw.KeyUp) != glfw.Release:
		c.Nudge(0, 1)
	}
	if gw.GetMouseButton(glfw.MouseButton1) != glfw.Release {
		c.PointAt(gw.GetCursorPos())
	}

	return gw.ShouldClose() || gw.GetKey(glfw.KeyEscape) != glfw.Release
}

func (w *glfwWindow) sizeCallback(_ *glfw.Window, width, height int) {
	w.controls.Resize(width, height)
}

// frameBufferSizeCallback ignores the size arguments and queries the
// framebuffer size, so that it can be called directly at startup.
//
func (w *glfwWindow) frameBufferSizeCallback(_ *glfw.Window, _, _ int) {
	fw, fh := w.FrameBufferSize()
	gl.Viewport(0, 0, int32(fw), int32(fh))
}

func (w *glfwWindow) scrollCallback(_ *glfw.Window, _, yoff float64) {
	w.controls.Scroll(yoff)
}
