// The loop package provides the render loop of the tutorial programs.
//
package loop

import (
	"time"
)

// App is the interface implemented by programs run by a Loop.
//
// ProcessEvents is called at the start of each iteration; graphical
// applications should swap their buffers there before polling events. The
// loop exits as soon as it returns true.
//
// Draw renders a frame. elapsed is the time since the loop started, which
// drives animations.
//
type App interface {
	ProcessEvents() (quit bool)
	Draw(elapsed time.Duration)
}

// FrameStarter is the interface implemented by any App that wants the time
// stamp at the beginning of each loop iteration.
//
type FrameStarter interface {
	FrameStart(time.Time)
}

// Loop runs an App until it quits.
//
// The zero value runs frames as fast as the App allows.
//
type Loop struct {
	// If MinFrameTime is greater than 0, the frame rate is clamped to
	// time.Second/MinFrameTime.
	MinFrameTime time.Duration
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	ticker *time.Ticker
}

func (l *Loop) now() time.Time {
	if l.ticker != nil {
		<-l.ticker.C
	}
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

// Run runs a until it quits and returns the number of frames drawn.
func (l *Loop) Run(a App) int {
	if l.MinFrameTime > 0 {
		l.ticker = time.NewTicker(l.MinFrameTime)
		defer func() {
			l.ticker.Stop()
			l.ticker = nil
		}()
	}
	fStart, _ := a.(FrameStarter)
	start := l.now()
	n := 0
	for !a.ProcessEvents() {
		now := l.now()
		if fStart != nil {
			fStart.FrameStart(now)
		}
		a.Draw(now.Sub(start))
		n++
	}
	return n
}
