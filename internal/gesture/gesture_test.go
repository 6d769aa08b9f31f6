package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/drawer/internal/sheet"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func at(y float64, ms int) Point {
	return Point{X: 3, Y: y, Time: t0.Add(time.Duration(ms) * time.Millisecond)}
}

func TestRecognizer_Lifecycle(t *testing.T) {
	r := NewRecognizer(DefaultWindow)

	_, ok := r.Move(at(10, 0))
	assert.False(t, ok, "no drag before press")

	began := r.Press(at(20, 0))
	assert.Equal(t, sheet.PhaseBegan, began.Phase)
	assert.True(t, r.Dragging())

	moved, ok := r.Move(at(15, 20))
	require.True(t, ok)
	assert.Equal(t, sheet.PhaseChanged, moved.Phase)
	assert.Equal(t, -5.0, moved.Translation.Y)

	ended, ok := r.Release(at(10, 40))
	require.True(t, ok)
	assert.Equal(t, sheet.PhaseEnded, ended.Phase)
	assert.Equal(t, -10.0, ended.Translation.Y)
	assert.InDelta(t, -250.0, ended.Velocity.Y, 1e-9)
	assert.False(t, r.Dragging())

	_, ok = r.Release(at(10, 50))
	assert.False(t, ok)
}

func TestRecognizer_Fail(t *testing.T) {
	r := NewRecognizer(0)

	_, ok := r.Fail()
	assert.False(t, ok)

	r.Press(at(5, 0))
	failed, ok := r.Fail()
	require.True(t, ok)
	assert.Equal(t, sheet.PhaseFailed, failed.Phase)
	assert.False(t, r.Dragging())
}

func TestTracker_Velocity(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		now    time.Time
		want   float64
	}{
		{"single sample", []Point{at(0, 0)}, at(0, 0).Time, 0},
		{"steady downward", []Point{at(0, 0), at(5, 50), at(10, 100)}, at(10, 100).Time, 100},
		{"old samples dropped", []Point{at(0, 0), at(100, 500), at(104, 540)}, at(104, 540).Time, 100},
		{"pointer held still", []Point{at(0, 0), at(10, 50)}, at(10, 400).Time, 0},
		{"same timestamp", []Point{at(0, 10), at(5, 10)}, at(5, 10).Time, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(DefaultWindow)
			for _, p := range tt.points {
				tr.Add(p)
			}
			got := tr.Velocity(tt.now)
			assert.InDelta(t, tt.want, got.Y, 1e-9)
		})
	}
}
