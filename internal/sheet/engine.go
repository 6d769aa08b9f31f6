package sheet

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/llehouerou/drawer/internal/snap"
)

// Option configures an Engine.
type Option func(*Engine)

// WithDelegate sets the notification receiver.
func WithDelegate(d Delegate) Option {
	return func(e *Engine) {
		if d != nil {
			e.delegate = d
		}
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMotion overrides the drag and animation tuning.
func WithMotion(m Motion) Option {
	return func(e *Engine) { e.motion = m }
}

// WithPositions sets the supported positions.
func WithPositions(s snap.Positions) Option {
	return func(e *Engine) { e.supported = s }
}

// WithInitial sets the starting position. It is normalized against the
// supported set when the engine is created.
func WithInitial(p snap.Position) Option {
	return func(e *Engine) { e.position = p }
}

// WithOpacities overrides the overlay opacity targets.
func WithOpacities(o snap.Opacities) Option {
	return func(e *Engine) { e.opacities = o }
}

// WithScrollPolicy overrides when a nested region may consume a drag.
func WithScrollPolicy(p ScrollPolicy) Option {
	return func(e *Engine) {
		if p != nil {
			e.policy = p
		}
	}
}

// Engine is the position state machine, drag controller and nested scroll
// arbiter of one sheet.
type Engine struct {
	host      Host
	animator  Animator
	delegate  Delegate
	log       zerolog.Logger
	motion    Motion
	policy    ScrollPolicy
	opacities snap.Opacities

	supported snap.Positions
	position  snap.Position

	offset float64
	height float64

	drag *session
}

// New creates an engine resting at its initial position. Nothing is applied
// to the host until Layout, SetPosition or a gesture.
func New(host Host, animator Animator, opts ...Option) *Engine {
	e := &Engine{
		host:      host,
		animator:  animator,
		delegate:  NopDelegate{},
		log:       zerolog.Nop(),
		motion:    DefaultMotion(),
		policy:    DefaultScrollPolicy,
		opacities: snap.DefaultOpacities(),
		supported: snap.DefaultPositions(),
		position:  snap.Collapsed,
	}
	for _, opt := range opts {
		opt(e)
	}
	if !e.supported.Contains(e.position) {
		e.position = e.supported.MostClosed()
	}
	return e
}

// Position returns the current logical position.
func (e *Engine) Position() snap.Position {
	return e.position
}

// Supported returns the supported positions.
func (e *Engine) Supported() snap.Positions {
	return e.supported
}

// Offset returns the last offset applied to the host.
func (e *Engine) Offset() float64 {
	return e.offset
}

// Height returns the last height applied to the host.
func (e *Engine) Height() float64 {
	return e.height
}

// Dragging reports whether a drag session is active.
func (e *Engine) Dragging() bool {
	return e.drag != nil
}

// Table returns the snap table for the current geometry, most open first.
func (e *Engine) Table() []snap.Entry {
	return snap.Table(e.supported, e.host.Geometry(), e.opacities)
}

// Sorted returns the resolvable supported positions, most open first.
func (e *Engine) Sorted() []snap.Position {
	return snap.Sorted(e.supported, e.host.Geometry())
}

// SetSupported replaces the supported positions. When the current position
// is no longer supported the sheet snaps, unanimated, to the most closed
// member.
func (e *Engine) SetSupported(s snap.Positions) {
	e.supported = s
	if s.Contains(e.position) {
		return
	}
	fallback := s.MostClosed()
	e.log.Debug().
		Stringer("from", e.position).
		Stringer("to", fallback).
		Msg("current position no longer supported")
	// Failures are logged by SetPosition and leave the position updated.
	_ = e.SetPosition(fallback, Vector{}, false)
}

// Layout re-validates the sheet against the host geometry and re-snaps,
// unanimated, when the applied offset drifted. Call it after every geometry
// change. During a drag the sheet-owned point is re-mapped under the new
// geometry; while the nested region owns the drag the sheet stays at rest.
func (e *Engine) Layout() {
	if d := e.drag; d != nil {
		if d.childActive {
			e.holdDrag()
			return
		}
		e.applyDrag()
		return
	}
	g := e.host.Geometry()
	target, ok := g.Offset(e.position)
	if !ok {
		e.log.Debug().Msg("layout skipped: geometry unavailable")
		return
	}
	if e.animator.Animating() {
		// Stopping finalizes at the presentation offset, which the new
		// geometry may have invalidated.
		e.animator.Stop()
	}
	if target == e.offset && g.SheetHeight() == e.height {
		return
	}
	e.log.Debug().
		Stringer("position", e.position).
		Float64("from", e.offset).
		Float64("to", target).
		Msg("re-snap after geometry change")
	e.apply(target, g.SheetHeight())
}

// SetPosition transitions to target. With animated set, the driver moves
// the sheet from its live offset, seeded with velocity.Y; otherwise the
// target offset is applied at once.
//
// WillTransition is emitted before the position changes. No DidTransition
// is emitted here.
func (e *Engine) SetPosition(target snap.Position, velocity Vector, animated bool) error {
	if !e.supported.Contains(target) {
		e.log.Warn().Stringer("position", target).Msg("transition to unsupported position ignored")
		return fmt.Errorf("%w: %s", ErrUnsupportedPosition, target)
	}

	e.delegate.WillTransition(e.position)
	e.position = target

	g := e.host.Geometry()
	offset, ok := g.Offset(target)
	if !ok {
		e.log.Warn().Stringer("position", target).Msg("transition abandoned: geometry unavailable")
		return fmt.Errorf("%w: resolve %s", ErrUnresolvedGeometry, target)
	}

	if !animated {
		e.animator.Stop()
		e.apply(offset, g.SheetHeight())
		return nil
	}
	e.animate(offset, velocity.Y)
	return nil
}

// Step moves by n positions through the sorted supported positions
// (negative is toward open), animated, and emits DidTransition once the
// animation is requested.
func (e *Engine) Step(n int) error {
	target := snap.Advance(e.position, n, e.Sorted())
	if err := e.SetPosition(target, Vector{}, true); err != nil {
		return err
	}
	e.delegate.DidTransition(target)
	return nil
}

// TapOverlay handles a tap on the dimming overlay: an open sheet collapses.
// It reports whether the tap was consumed.
func (e *Engine) TapOverlay() (bool, error) {
	target := snap.Collapsed
	if !e.supported.Contains(target) {
		target = e.supported.MostClosed()
	}
	if e.drag != nil || e.position == target || e.opacities.For(e.position) == 0 {
		return false, nil
	}
	if err := e.SetPosition(target, Vector{}, true); err != nil {
		return true, err
	}
	e.delegate.DidTransition(target)
	return true, nil
}

func (e *Engine) animate(target, velocity float64) {
	from := e.offset
	if e.animator.Animating() {
		from = e.animator.Presentation()
	}
	// Start finalizes any running animation before this one begins.
	e.animator.Start(AnimationRequest{
		From:         from,
		Target:       target,
		Velocity:     velocity,
		DampingRatio: e.motion.DampingRatio,
		Duration:     e.motion.Duration,
		Frame:        e.animationFrame,
		Done:         e.animationDone,
	})
	if e.animator.Animating() {
		// Grow before the first frame so the spring never uncovers the bottom.
		e.place(e.offset, e.host.Geometry().SheetHeight()+e.motion.HeightLeeway)
	}
}

func (e *Engine) animationFrame(offset float64) {
	e.apply(offset, e.host.Geometry().SheetHeight()+e.motion.HeightLeeway)
}

func (e *Engine) animationDone(offset float64) {
	e.apply(offset, e.host.Geometry().SheetHeight())
}

func (e *Engine) apply(offset, height float64) {
	e.place(offset, height)
	e.delegate.DidMove(offset)
}

// place positions the sheet on the host. Offset and height always travel
// together.
func (e *Engine) place(offset, height float64) {
	e.offset = offset
	e.height = height
	e.host.Apply(offset, height)
	e.delegate.OverlayOpacity(snap.Opacity(offset, e.Table()))
}
