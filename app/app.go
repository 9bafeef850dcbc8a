// Package app runs a tutorial program in a GLFW window with an OpenGL 3.2
// core context.
//
package app

import (
	"log"
	"runtime"
	"time"

	"github.com/db47h/gltut"
	"github.com/db47h/gltut/loop"
	"github.com/pkg/errors"
)

func init() {
	// GLFW and OpenGL calls must be made from the main thread.
	runtime.LockOSThread()
}

// Main creates the window, then calls a.Init, runs the render loop until the
// window is closed or Escape is pressed, and finally calls a.Terminate.
// Terminate is also called if Init fails, so it must handle a partially
// initialized state.
//
func Main(a Interface, opts ...WindowOption) error {
	cfg := defaultConfig()
	for _, o := range opts {
		o.set(&cfg)
	}
	if err := drv.init(&cfg); err != nil {
		return err
	}
	defer drv.terminate()
	w := drv.window()
	defer w.Destroy()
	if err := a.Init(w); err != nil {
		// release whatever Init created before failing
		if terr := a.Terminate(); terr != nil {
			log.Printf("terminate: %v", terr)
		}
		return errors.Wrap(err, "init")
	}
	l := loop.Loop{MinFrameTime: cfg.minFrameTime}
	l.Run(&runner{w: w, a: a})
	return a.Terminate()
}

// Window is the window a program draws to.
//
type Window interface {
	// Controls returns the input state, updated before each frame.
	Controls() *gltut.Controls
	// FrameBufferSize returns the size of the framebuffer in pixels.
	FrameBufferSize() (width, height int)
	Destroy()
}

// Interface is implemented by programs run by Main.
//
type Interface interface {
	Init(Window) error
	Terminate() error

	// Draw renders a frame, elapsed being the time since the render loop
	// started.
	Draw(w Window, elapsed time.Duration)
}

type driver interface {
	init(*winCfg) error
	terminate()
	window() window
}

type window interface {
	Window
	swapBuffers()
	// processEvents polls events and updates the controls. It returns true
	// if the window should close.
	processEvents() (quit bool)
}

type runner struct {
	w      window
	a      Interface
	frames int
}

func (r *runner) ProcessEvents() bool {
	if r.frames > 0 {
		r.w.swapBuffers()
	}
	r.frames++
	return r.w.processEvents()
}

func (r *runner) Draw(elapsed time.Duration) {
	r.a.Draw(r.w, elapsed)
}

// WindowOption configures the window created by Main.
//
type WindowOption interface {
	set(*winCfg)
}

type winCfg struct {
	hidden       bool
	w, h         int
	title        string
	swapInterval int
	minFrameTime time.Duration
}

func defaultConfig() winCfg {
	return winCfg{title: "Hello", w: 640, h: 480, swapInterval: 1}
}

type winOption func(*winCfg)

func (f winOption) set(cfg *winCfg) {
	f(cfg)
}

func Title(title string) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.title = title
	})
}

func Size(w, h int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.w, cfg.h = w, h
	})
}

func Visible(b bool) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.hidden = !b
	})
}

// SwapInterval sets the number of screen updates to wait for before
// swapping buffers. 0 disables vsync.
//
func SwapInterval(n int) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.swapInterval = n
	})
}

// MinFrameTime clamps the frame rate to time.Second/d.
func MinFrameTime(d time.Duration) WindowOption {
	return winOption(func(cfg *winCfg) {
		cfg.minFrameTime = d
	})
}
