package sheet

import (
	"math"

	"github.com/llehouerou/drawer/internal/snap"
)

// session is the state of one drag, from begin to end.
type session struct {
	origin      float64
	translation Vector
	point       float64 // last raw drag point applied to the sheet

	scroll           Scrollable
	scrollWasEnabled bool
	latched          bool // content went past its top: the sheet owns the rest of the drag
	childActive      bool // the nested region consumed the last sample
}

// Handle feeds one gesture sample to the drag controller.
// Cancelled and failed gestures resolve exactly like ended ones.
func (e *Engine) Handle(s Sample) {
	switch s.Phase {
	case PhaseBegan:
		e.begin()
	case PhaseChanged:
		e.change(s.Translation)
	case PhaseEnded, PhaseCancelled, PhaseFailed:
		e.end(s.Velocity)
	}
}

// Cancel ends an active drag as if the gesture failed with no velocity.
func (e *Engine) Cancel() {
	e.Handle(Sample{Phase: PhaseCancelled})
}

func (e *Engine) begin() {
	if e.drag != nil {
		e.release()
	}

	origin := e.offset
	if e.animator.Animating() {
		origin = e.animator.Presentation()
	} else if off, ok := e.host.Geometry().Offset(e.position); ok {
		origin = off
	}

	e.delegate.WillTransition(e.position)
	e.animator.Stop()

	e.drag = &session{origin: origin, point: origin}
	e.applyDrag()
}

func (e *Engine) change(translation Vector) {
	d := e.drag
	if d == nil {
		return
	}
	d.translation = translation
	if e.deferToScrollable() {
		return
	}
	e.applyDrag()
}

func (e *Engine) end(velocity Vector) {
	d := e.drag
	if d == nil {
		return
	}
	defer e.release()

	if d.childActive {
		// The nested region consumed the drag; the sheet never moved.
		_ = e.SetPosition(e.position, Vector{}, true)
		return
	}

	table := e.Table()
	target := e.offset + velocity.Y*e.motion.LookAhead
	predicted, ok := snap.Nearest(target, table)
	if !ok {
		e.log.Warn().Float64("offset", target).Msg("drag end abandoned: geometry unavailable")
		return
	}

	landing := predicted.Position
	if landing == e.position && math.Abs(velocity.Y) > e.motion.VelocityThreshold {
		step := 1
		if velocity.Y > 0 {
			step = -1
		}
		landing = snap.Advance(e.position, step, positions(table))
	}

	e.log.Debug().
		Float64("offset", e.offset).
		Float64("velocity", velocity.Y).
		Float64("target", target).
		Stringer("predicted", predicted.Position).
		Stringer("landing", landing).
		Msg("drag ended")

	_ = e.SetPosition(landing, velocity, true)
}

// release closes the drag session. The nested region always gets its
// original scroll flag back.
func (e *Engine) release() {
	d := e.drag
	e.drag = nil
	if d == nil || d.scroll == nil {
		return
	}
	d.scroll.SetScrollEnabled(d.scrollWasEnabled)
}

func (e *Engine) applyDrag() {
	d := e.drag
	point := d.origin + d.translation.Y
	table := e.Table()
	if len(table) == 0 {
		e.log.Debug().Float64("point", point).Msg("drag sample dropped: geometry unavailable")
		return
	}

	offset, height := e.stretch(point, table)
	d.point = point
	e.place(offset, height)
	e.delegate.DidMove(point)
}

// holdDrag keeps the sheet at its resting offset under the current geometry
// while the nested region consumes the drag. A later hand-off continues from
// that offset.
func (e *Engine) holdDrag() {
	g := e.host.Geometry()
	rest, ok := g.Offset(e.position)
	if !ok {
		e.log.Debug().Msg("drag layout skipped: geometry unavailable")
		return
	}
	e.drag.point = rest
	e.place(rest, g.SheetHeight())
}

// stretch maps a raw drag point to an offset and height. Past the most
// open offset the sheet rises with damping and grows so its bottom edge
// stays on the container bottom; past the most closed offset it sinks with
// damping.
func (e *Engine) stretch(point float64, table []snap.Entry) (offset, height float64) {
	base := e.host.Geometry().SheetHeight()
	lowest, highest, _ := snap.Bounds(table)
	switch {
	case point < lowest:
		s := snap.Damp(lowest-point, e.motion.DampingFactor)
		return lowest - s, base + s
	case point > highest:
		return highest + snap.Damp(point-highest, e.motion.DampingFactor), base
	}
	return point, base
}

func positions(table []snap.Entry) []snap.Position {
	out := make([]snap.Position, len(table))
	for i, e := range table {
		out[i] = e.Position
	}
	return out
}
