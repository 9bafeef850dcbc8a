// Package debug provides frame timing statistics.
//
package debug

import (
	"fmt"
	"time"
)

const samples = 32

// Timer keeps a rolling window of the last 32 frame times.
//
type Timer struct {
	times [samples]time.Duration
	index int
	n     int
}

// Add records a frame time.
func (t *Timer) Add(dt time.Duration) {
	t.times[t.index] = dt
	t.index = (t.index + 1) & (samples - 1)
	if t.n < samples {
		t.n++
	}
}

// Average returns the average of the recorded frame times, or 0 if none has
// been recorded.
//
func (t *Timer) Average() time.Duration {
	if t.n == 0 {
		return 0
	}
	var avg time.Duration
	for _, dt := range t.times[:t.n] {
		avg += dt
	}
	return avg / time.Duration(t.n)
}

// AveragePerSecond returns the average number of frames per second.
func (t *Timer) AveragePerSecond() float64 {
	avg := t.Average()
	if avg == 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

func (t *Timer) String() string {
	return fmt.Sprintf("%.0f fps (%v/frame)", t.AveragePerSecond(), t.Average())
}
