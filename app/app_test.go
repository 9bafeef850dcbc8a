package app

import (
	"testing"
	"time"

	"github.com/db47h/gltut"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWindow struct {
	controls  *gltut.Controls
	frames    int // frames to run before quitting
	polls     int
	swaps     int
	destroyed bool
}

func (w *fakeWindow) Controls() *gltut.Controls { return w.controls }
func (w *fakeWindow) FrameBufferSize() (int, int) { return 640, 480 }
func (w *fakeWindow) Destroy() { w.destroyed = true }
func (w *fakeWindow) swapBuffers() { w.swaps++ }

func (w *fakeWindow) processEvents() bool {
	w.polls++
	return w.polls > w.frames
}

type fakeDriver struct {
	cfg        winCfg
	w          *fakeWindow
	terminated bool
}

func (d *fakeDriver) init(cfg *winCfg) error {
	d.cfg = *cfg
	return nil
}

func (d *fakeDriver) terminate() { d.terminated = true }
func (d *fakeDriver) window() window { return d.w }

type program struct {
	initErr    error
	draws      int
	terminated int
}

func (p *program) Init(Window) error { return p.initErr }

func (p *program) Draw(Window, time.Duration) { p.draws++ }

func (p *program) Terminate() error {
	p.terminated++
	return nil
}

func withDriver(t *testing.T, d driver) {
	t.Helper()
	saved := drv
	drv = d
	t.Cleanup(func() { drv = saved })
}

func TestMainLoop(t *testing.T) {
	d := &fakeDriver{w: &fakeWindow{controls: gltut.NewControls(640, 480), frames: 3}}
	withDriver(t, d)

	p := new(program)
	require.NoError(t, Main(p, Title("test"), Size(320, 200), Visible(false), SwapInterval(0)))
	assert.Equal(t, 3, p.draws)
	assert.Equal(t, 1, p.terminated)
	// no swap before the first frame
	assert.Equal(t, 3, d.w.swaps)
	assert.True(t, d.w.destroyed)
	assert.True(t, d.terminated)

	assert.Equal(t, "test", d.cfg.title)
	assert.Equal(t, 320, d.cfg.w)
	assert.Equal(t, 200, d.cfg.h)
	assert.True(t, d.cfg.hidden)
	assert.Equal(t, 0, d.cfg.swapInterval)
}

func TestMainInitError(t *testing.T) {
	d := &fakeDriver{w: &fakeWindow{controls: gltut.NewControls(640, 480), frames: 3}}
	withDriver(t, d)

	initErr := errors.New("no shaders")
	p := &program{initErr: initErr}
	err := Main(p)
	require.Error(t, err)
	assert.Equal(t, initErr, errors.Cause(err))
	// resources created before the failure are released
	assert.Equal(t, 1, p.terminated)
	assert.Zero(t, p.draws)
	assert.Zero(t, d.w.polls)
	assert.True(t, d.w.destroyed)
	assert.True(t, d.terminated)
}
