// Package sheet drives a bottom sheet: it keeps the logical position,
// turns drag samples into live offsets and landing positions, and arbitrates
// drags with a scrollable region nested in the sheet.
//
// The engine is single-threaded. Samples, animation frames and geometry
// changes must all be delivered from one loop (the bubbletea Update loop in
// this application).
package sheet

import (
	"errors"
	"time"

	"github.com/llehouerou/drawer/internal/snap"
)

var (
	// ErrUnresolvedGeometry is returned when a position cannot be resolved
	// to an offset because the sheet has no container yet.
	ErrUnresolvedGeometry = errors.New("sheet: geometry unavailable")

	// ErrUnsupportedPosition is returned when a transition targets a
	// position outside the supported set.
	ErrUnsupportedPosition = errors.New("sheet: position not supported")
)

// Vector is a 2D translation or velocity. Y grows toward the container bottom.
type Vector struct {
	X, Y float64
}

// Phase is the lifecycle tag of a gesture sample.
type Phase int

const (
	PhaseBegan Phase = iota
	PhaseChanged
	PhaseEnded
	PhaseCancelled
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseBegan:
		return "began"
	case PhaseChanged:
		return "changed"
	case PhaseEnded:
		return "ended"
	case PhaseCancelled:
		return "cancelled"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Sample is one gesture event. Translation is cumulative since the gesture
// began; Velocity is instantaneous, in units per second.
type Sample struct {
	Phase       Phase
	Translation Vector
	Velocity    Vector
}

// Host is the container the sheet lives in.
type Host interface {
	// Geometry is queried on demand; it may change between calls.
	Geometry() snap.Geometry
	// Apply places the sheet immediately, without animation.
	Apply(offset, height float64)
}

// AnimationRequest asks the animation driver to move the sheet to Target.
type AnimationRequest struct {
	From         float64
	Target       float64
	Velocity     float64
	DampingRatio float64
	Duration     time.Duration

	// Frame is called with each intermediate offset.
	Frame func(offset float64)
	// Done is called exactly once, with the final offset, when the
	// animation completes or is stopped.
	Done func(offset float64)
}

// Animator executes one AnimationRequest at a time.
type Animator interface {
	// Start stops any running animation (calling its Done) and starts req.
	Start(req AnimationRequest)
	// Stop finalizes the running animation at its current offset.
	Stop()
	Animating() bool
	// Presentation is the offset currently shown by the running animation.
	Presentation() float64
}

// Delegate receives lifecycle notifications.
type Delegate interface {
	WillTransition(from snap.Position)
	DidTransition(to snap.Position)
	DidMove(offset float64)
	OverlayOpacity(opacity float64)
}

// NopDelegate ignores every notification. Embed it to implement a subset.
type NopDelegate struct{}

func (NopDelegate) WillTransition(snap.Position) {}
func (NopDelegate) DidTransition(snap.Position)  {}
func (NopDelegate) DidMove(float64)              {}
func (NopDelegate) OverlayOpacity(float64)       {}

// Scrollable is a scrolling region nested inside the sheet.
// Content offsets below 0 mean the content is pulled past its top.
type Scrollable interface {
	ScrollEnabled() bool
	SetScrollEnabled(enabled bool)
	ContentOffset() float64
	SetContentOffset(offset float64, animated bool)
}

// ScrollPolicy decides whether a nested region may consume the drag.
type ScrollPolicy func(current snap.Position, supported snap.Positions) bool

// DefaultScrollPolicy lets the nested region scroll only when the sheet
// rests at its most open supported position.
func DefaultScrollPolicy(current snap.Position, supported snap.Positions) bool {
	return current == supported.MostOpen()
}

// Motion tunes drag and animation behavior.
type Motion struct {
	// DampingFactor scales the overscroll damping curve.
	DampingFactor float64
	// LookAhead extrapolates the release velocity, in seconds.
	LookAhead float64
	// VelocityThreshold is the speed above which a release that would land
	// on the current position steps to a neighbor instead.
	// TODO: 0 makes every non-zero release step; revisit once we have
	// tuning feedback from real drags.
	VelocityThreshold float64
	// HeightLeeway is added to the height during animations so spring
	// overshoot never shows the container bottom.
	HeightLeeway float64
	DampingRatio float64
	Duration     time.Duration
}

// DefaultMotion returns the stock tuning, in points.
func DefaultMotion() Motion {
	return Motion{
		DampingFactor:     50,
		LookAhead:         0.15,
		VelocityThreshold: 0,
		HeightLeeway:      20,
		DampingRatio:      0.8,
		Duration:          500 * time.Millisecond,
	}
}
