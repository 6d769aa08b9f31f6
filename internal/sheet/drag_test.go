package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/drawer/internal/snap"
)

func drag(e *Engine, dy float64) {
	e.Handle(Sample{Phase: PhaseChanged, Translation: Vector{Y: dy}})
}

func TestDrag_FlickUpLandsOnPredicted(t *testing.T) {
	f := newFixture(t)

	f.engine.Handle(Sample{Phase: PhaseBegan})
	drag(f.engine, -300)
	assert.Equal(t, 432.0, f.host.offset)

	f.engine.Handle(Sample{Phase: PhaseEnded, Translation: Vector{Y: -300}, Velocity: Vector{Y: -800}})

	// target = 432 - 120 = 312, closer to partially open (224) than open (244)
	assert.Equal(t, snap.PartiallyOpen, f.engine.Position())
	require.Len(t, f.animator.started, 1)
	assert.Equal(t, 536.0, f.animator.started[0].Target)
	assert.Equal(t, -800.0, f.animator.started[0].Velocity)
	assert.False(t, f.engine.Dragging())
}

func TestDrag_SmallVelocityStepsFromCurrent(t *testing.T) {
	f := newFixture(t)

	f.engine.Handle(Sample{Phase: PhaseBegan})
	f.engine.Handle(Sample{Phase: PhaseEnded, Velocity: Vector{Y: 50}})

	// 732 + 7.5 still predicts collapsed, so the positive velocity steps by -1.
	assert.Equal(t, snap.PartiallyOpen, f.engine.Position())
}

func TestDrag_NegativeVelocityStepsForward(t *testing.T) {
	f := newFixture(t, WithInitial(snap.Open))
	f.engine.Layout()

	f.engine.Handle(Sample{Phase: PhaseBegan})
	f.engine.Handle(Sample{Phase: PhaseEnded, Velocity: Vector{Y: -50}})

	assert.Equal(t, snap.PartiallyOpen, f.engine.Position())
}

func TestDrag_ZeroVelocityStaysOnCurrent(t *testing.T) {
	f := newFixture(t)

	f.engine.Handle(Sample{Phase: PhaseBegan})
	drag(f.engine, -20)
	f.engine.Handle(Sample{Phase: PhaseEnded})

	assert.Equal(t, snap.Collapsed, f.engine.Position())
	require.Len(t, f.animator.started, 1)
	assert.Equal(t, 712.0, f.animator.started[0].From)
	assert.Equal(t, 732.0, f.animator.started[0].Target)
}

func TestDrag_FailedAndCancelledResolveLikeEnded(t *testing.T) {
	for _, phase := range []Phase{PhaseFailed, PhaseCancelled} {
		t.Run(phase.String(), func(t *testing.T) {
			f := newFixture(t)

			f.engine.Handle(Sample{Phase: PhaseBegan})
			drag(f.engine, -300)
			f.engine.Handle(Sample{Phase: phase, Velocity: Vector{Y: -800}})

			assert.Equal(t, snap.PartiallyOpen, f.engine.Position())
			assert.False(t, f.engine.Dragging())
		})
	}
}

func TestDrag_BeginNotifiesAndStopsAnimation(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.engine.SetPosition(snap.Open, Vector{}, true))
	f.animator.frame(400)
	f.delegate.events = nil

	f.engine.Handle(Sample{Phase: PhaseBegan})
	assert.Equal(t, []string{"will:open"}, f.delegate.events)
	assert.False(t, f.animator.Animating())
	assert.Equal(t, 400.0, f.host.offset, "drag starts from the presented offset")

	drag(f.engine, 10)
	assert.Equal(t, 410.0, f.host.offset)
}

func TestDrag_DidMoveReportsRawPoint(t *testing.T) {
	f := newFixture(t)

	f.engine.Handle(Sample{Phase: PhaseBegan})
	drag(f.engine, 100)

	require.NotEmpty(t, f.delegate.moves)
	assert.Equal(t, 832.0, f.delegate.moves[len(f.delegate.moves)-1])
	assert.Less(t, f.host.offset, 832.0)
}

func TestDrag_StretchPastOpen(t *testing.T) {
	f := newFixture(t, WithInitial(snap.Open))
	f.engine.Layout()
	base := phone.SheetHeight()

	f.engine.Handle(Sample{Phase: PhaseBegan})
	for _, delta := range []float64{1, 10, 100, 1000} {
		drag(f.engine, -delta)
		assert.Greater(t, f.host.offset, 68.0-delta, "damping compresses overscroll of %v", delta)
		assert.Less(t, f.host.offset, 68.0)
		assert.InDelta(t, base+(68.0-f.host.offset), f.host.height, 1e-9, "height grows by the stretch")
	}
}

func TestDrag_StretchPastCollapsed(t *testing.T) {
	f := newFixture(t)
	base := phone.SheetHeight()

	f.engine.Handle(Sample{Phase: PhaseBegan})
	drag(f.engine, 100)

	assert.Greater(t, f.host.offset, 732.0)
	assert.Less(t, f.host.offset, 832.0)
	assert.Equal(t, base, f.host.height, "no height growth toward closed")
}

func TestDrag_InRangePassesThrough(t *testing.T) {
	f := newFixture(t)

	f.engine.Handle(Sample{Phase: PhaseBegan})
	drag(f.engine, -196)

	assert.Equal(t, 536.0, f.host.offset)
	assert.Equal(t, phone.SheetHeight(), f.host.height)
}

func TestDrag_UnavailableGeometry(t *testing.T) {
	f := newFixture(t)
	f.host.geometry = snap.Geometry{}
	applies := f.host.applies

	f.engine.Handle(Sample{Phase: PhaseBegan})
	drag(f.engine, -50)
	f.engine.Handle(Sample{Phase: PhaseEnded, Velocity: Vector{Y: -100}})

	assert.Equal(t, applies, f.host.applies)
	assert.Equal(t, snap.Collapsed, f.engine.Position())
	assert.False(t, f.engine.Dragging())
}

func TestDrag_ChangeWithoutBeginIgnored(t *testing.T) {
	f := newFixture(t)
	applies := f.host.applies

	drag(f.engine, -50)
	f.engine.Handle(Sample{Phase: PhaseEnded})

	assert.Equal(t, applies, f.host.applies)
	assert.Empty(t, f.animator.started)
}

func TestDrag_Cancel(t *testing.T) {
	f := newFixture(t)

	f.engine.Handle(Sample{Phase: PhaseBegan})
	drag(f.engine, -10)
	f.engine.Cancel()

	assert.False(t, f.engine.Dragging())
	assert.Equal(t, snap.Collapsed, f.engine.Position())
}

func TestDrag_LayoutRemapsSheetOwnedDrag(t *testing.T) {
	f := newFixture(t)

	f.engine.Handle(Sample{Phase: PhaseBegan})
	drag(f.engine, -300)
	require.Equal(t, 432.0, f.host.offset)
	f.delegate.moves = nil

	f.host.geometry.ContainerHeight = 900
	f.engine.Layout()
	assert.Equal(t, 432.0, f.host.offset)
	assert.Equal(t, 832.0, f.host.height, "the drag point is mapped under the new geometry")
	assert.Equal(t, []float64{432}, f.delegate.moves)

	f.host.geometry.TopMargin = 500
	f.engine.Layout()
	assert.Less(t, f.host.offset, 500.0, "a point above the new open offset stretches")
	assert.Greater(t, f.host.offset, 432.0)
	assert.InDelta(t, 400+(500-f.host.offset), f.host.height, 1e-9)
}
