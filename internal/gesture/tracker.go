package gesture

import (
	"time"

	"github.com/llehouerou/drawer/internal/sheet"
)

// Tracker estimates pointer velocity from the samples of a recent window.
type Tracker struct {
	window  time.Duration
	samples []Point
}

// NewTracker creates a tracker. A non-positive window uses DefaultWindow.
func NewTracker(window time.Duration) Tracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return Tracker{window: window}
}

// Reset drops all samples.
func (t *Tracker) Reset() {
	t.samples = t.samples[:0]
}

// Add records p, discarding samples older than the window.
func (t *Tracker) Add(p Point) {
	t.samples = append(t.samples, p)
	t.trim(p.Time)
}

// Velocity returns units per second over the window ending at now.
// A pointer that has not moved within the window has no velocity.
func (t *Tracker) Velocity(now time.Time) sheet.Vector {
	t.trim(now)
	if len(t.samples) < 2 {
		return sheet.Vector{}
	}
	first := t.samples[0]
	last := t.samples[len(t.samples)-1]
	dt := last.Time.Sub(first.Time).Seconds()
	if dt <= 0 {
		return sheet.Vector{}
	}
	return sheet.Vector{
		X: (last.X - first.X) / dt,
		Y: (last.Y - first.Y) / dt,
	}
}

func (t *Tracker) trim(now time.Time) {
	cutoff := now.Add(-t.window)
	i := 0
	for i < len(t.samples) && t.samples[i].Time.Before(cutoff) {
		i++
	}
	if i > 0 {
		t.samples = append(t.samples[:0], t.samples[i:]...)
	}
}
