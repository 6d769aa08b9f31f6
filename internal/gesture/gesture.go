// Package gesture turns raw pointer events into drag samples with
// cumulative translation and release velocity.
package gesture

import (
	"time"

	"github.com/llehouerou/drawer/internal/sheet"
)

// DefaultWindow is how far back the velocity tracker looks.
const DefaultWindow = 100 * time.Millisecond

// Point is a timestamped pointer location.
type Point struct {
	X, Y float64
	Time time.Time
}

// Recognizer follows one pointer drag at a time.
type Recognizer struct {
	dragging bool
	start    Point
	tracker  Tracker
}

// NewRecognizer creates a recognizer with a velocity window.
func NewRecognizer(window time.Duration) *Recognizer {
	return &Recognizer{tracker: NewTracker(window)}
}

// Dragging reports whether a drag is in progress.
func (r *Recognizer) Dragging() bool {
	return r.dragging
}

// Press starts a drag at p.
func (r *Recognizer) Press(p Point) sheet.Sample {
	r.dragging = true
	r.start = p
	r.tracker.Reset()
	r.tracker.Add(p)
	return sheet.Sample{Phase: sheet.PhaseBegan}
}

// Move reports the translation of p since the press. It returns false when
// no drag is in progress.
func (r *Recognizer) Move(p Point) (sheet.Sample, bool) {
	if !r.dragging {
		return sheet.Sample{}, false
	}
	r.tracker.Add(p)
	return sheet.Sample{
		Phase:       sheet.PhaseChanged,
		Translation: r.translation(p),
		Velocity:    r.tracker.Velocity(p.Time),
	}, true
}

// Release ends the drag at p with the tracked velocity.
func (r *Recognizer) Release(p Point) (sheet.Sample, bool) {
	if !r.dragging {
		return sheet.Sample{}, false
	}
	r.tracker.Add(p)
	s := sheet.Sample{
		Phase:       sheet.PhaseEnded,
		Translation: r.translation(p),
		Velocity:    r.tracker.Velocity(p.Time),
	}
	r.dragging = false
	return s, true
}

// Fail aborts the drag, for example when the pointer leaves the window.
func (r *Recognizer) Fail() (sheet.Sample, bool) {
	if !r.dragging {
		return sheet.Sample{}, false
	}
	r.dragging = false
	r.tracker.Reset()
	return sheet.Sample{Phase: sheet.PhaseFailed}, true
}

func (r *Recognizer) translation(p Point) sheet.Vector {
	return sheet.Vector{X: p.X - r.start.X, Y: p.Y - r.start.Y}
}
