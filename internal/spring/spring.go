// Package spring animates the sheet toward a target offset with a damped
// harmonic spring, stepped by bubbletea ticks.
package spring

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/llehouerou/drawer/internal/sheet"
)

// DefaultFPS is the frame rate used when none is given.
const DefaultFPS = 60

// settleTolerance is the distance and speed under which the spring is
// considered at rest.
const settleTolerance = 0.01

// FrameMsg advances the running animation by one frame.
type FrameMsg struct {
	id   int
	Time time.Time
}

// Driver executes sheet.AnimationRequests one at a time. It implements
// sheet.Animator.
type Driver struct {
	fps   int
	frame time.Duration

	id        int
	running   bool
	scheduled bool
	req       sheet.AnimationRequest
	spring    harmonica.Spring
	pos       float64
	vel       float64
	elapsed   time.Duration
}

var _ sheet.Animator = (*Driver)(nil)

// New creates a driver stepping at fps frames per second.
func New(fps int) *Driver {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Driver{
		fps:   fps,
		frame: time.Second / time.Duration(fps),
	}
}

// Start stops any running animation, finalizing it, and starts req.
// A request without duration completes immediately.
func (d *Driver) Start(req sheet.AnimationRequest) {
	d.Stop()

	d.id++
	d.req = req
	d.pos = req.From
	d.vel = req.Velocity
	d.elapsed = 0
	d.scheduled = false

	if req.Duration <= 0 {
		d.pos = req.Target
		d.done(req.Target)
		return
	}

	d.spring = harmonica.NewSpring(harmonica.FPS(d.fps), AngularFrequency(req.Duration, req.DampingRatio), req.DampingRatio)
	d.running = true
}

// Stop finalizes the running animation at its current offset.
func (d *Driver) Stop() {
	if !d.running {
		return
	}
	d.running = false
	d.done(d.pos)
}

// Animating reports whether an animation is in flight.
func (d *Driver) Animating() bool {
	return d.running
}

// Presentation returns the offset of the current frame.
func (d *Driver) Presentation() float64 {
	return d.pos
}

// Cmd schedules the next frame if an animation is running and no frame is
// pending. Hosts call it after anything that may have started an animation.
func (d *Driver) Cmd() tea.Cmd {
	if !d.running || d.scheduled {
		return nil
	}
	d.scheduled = true
	id := d.id
	return tea.Tick(d.frame, func(t time.Time) tea.Msg {
		return FrameMsg{id: id, Time: t}
	})
}

// Update steps the animation on its own frames and ignores stale ones.
func (d *Driver) Update(msg FrameMsg) tea.Cmd {
	if msg.id != d.id || !d.running {
		return nil
	}
	d.scheduled = false
	d.step()
	return d.Cmd()
}

func (d *Driver) step() {
	d.pos, d.vel = d.spring.Update(d.pos, d.vel, d.req.Target)
	d.elapsed += d.frame

	settled := math.Abs(d.pos-d.req.Target) < settleTolerance && math.Abs(d.vel) < settleTolerance
	if settled || d.elapsed >= d.req.Duration {
		d.running = false
		d.pos = d.req.Target
		d.vel = 0
		d.done(d.pos)
		return
	}
	if d.req.Frame != nil {
		d.req.Frame(d.pos)
	}
}

func (d *Driver) done(offset float64) {
	if d.req.Done != nil {
		d.req.Done(offset)
	}
}

// AngularFrequency picks the spring stiffness so a spring with dampingRatio
// decays to about 1% of its initial displacement within duration.
func AngularFrequency(duration time.Duration, dampingRatio float64) float64 {
	const decay = 4.6 // -ln(0.01)
	if duration <= 0 {
		return 0
	}
	if dampingRatio <= 0 || dampingRatio > 1 {
		dampingRatio = 1
	}
	return decay / (dampingRatio * duration.Seconds())
}
