// Package scrollview is the scrollable content region inside the sheet.
// It wraps a bubbles viewport and can be pulled past its top, which the
// sheet engine reads as a request to move the sheet instead.
package scrollview

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/llehouerou/drawer/internal/sheet"
	"github.com/llehouerou/drawer/internal/ui/render"
)

// Compile-time check that Model can join a sheet drag.
var _ sheet.Scrollable = (*Model)(nil)

// Model holds the content and its scroll state.
type Model struct {
	vp         viewport.Model
	lines      []string
	enabled    bool
	overscroll float64 // <= 0, distance pulled past the top
}

// New creates an empty region of the given size with scrolling enabled.
func New(width, height int) *Model {
	return &Model{
		vp:      viewport.New(width, max(height, 0)),
		enabled: true,
	}
}

// SetContent replaces the text shown in the region.
func (m *Model) SetContent(text string) {
	m.lines = strings.Split(strings.TrimRight(text, "\n"), "\n")
	m.refresh()
}

// SetSize resizes the region, keeping the scroll offset when possible.
func (m *Model) SetSize(width, height int) {
	if width == m.vp.Width && height == m.vp.Height {
		return
	}
	m.vp.Width = width
	m.vp.Height = max(height, 0)
	m.refresh()
}

// Height returns the number of visible rows.
func (m *Model) Height() int {
	return m.vp.Height
}

func (m *Model) refresh() {
	rows := make([]string, len(m.lines))
	for i, line := range m.lines {
		rows[i] = render.TruncateAndPad(line, m.vp.Width)
	}
	y := m.vp.YOffset
	m.vp.SetContent(strings.Join(rows, "\n"))
	m.vp.SetYOffset(y)
}

// ScrollEnabled implements sheet.Scrollable.
func (m *Model) ScrollEnabled() bool {
	return m.enabled
}

// SetScrollEnabled implements sheet.Scrollable.
func (m *Model) SetScrollEnabled(enabled bool) {
	m.enabled = enabled
}

// ContentOffset implements sheet.Scrollable. It is negative while the
// content is pulled past its top.
func (m *Model) ContentOffset() float64 {
	return float64(m.vp.YOffset) + m.overscroll
}

// SetContentOffset implements sheet.Scrollable. A terminal cannot show a
// partial row, so animated moves land immediately.
func (m *Model) SetContentOffset(offset float64, _ bool) {
	if offset < 0 {
		m.overscroll = offset
		m.vp.SetYOffset(0)
		return
	}
	m.overscroll = 0
	m.vp.SetYOffset(int(math.Round(offset)))
}

// ScrollBy moves the content by dy rows, positive toward the end. Past the
// top the offset goes negative instead of stopping. It reports whether the
// content moved; a disabled region ignores input.
func (m *Model) ScrollBy(dy float64) bool {
	if !m.enabled || dy == 0 {
		return false
	}
	before := m.ContentOffset()
	m.SetContentOffset(before+dy, false)
	return m.ContentOffset() != before
}

// ScrollLines scrolls by n lines for wheel and keyboard input. Unlike
// ScrollBy it never pulls past the top.
func (m *Model) ScrollLines(n int) bool {
	if !m.enabled || n == 0 {
		return false
	}
	before := m.ContentOffset()
	m.SetContentOffset(max(math.Round(before)+float64(n), 0), false)
	return m.ContentOffset() != before
}

// View renders the visible rows. Rows hidden by an overscroll show as blank
// lines at the top.
func (m *Model) View() string {
	if m.vp.Height == 0 {
		return ""
	}
	pulled := min(int(math.Round(-m.overscroll)), m.vp.Height)
	if pulled <= 0 {
		return m.vp.View()
	}
	rows := strings.Split(m.vp.View(), "\n")
	blank := render.EmptyLine(m.vp.Width)
	out := make([]string, 0, m.vp.Height)
	for range pulled {
		out = append(out, blank)
	}
	out = append(out, rows[:m.vp.Height-pulled]...)
	return strings.Join(out, "\n")
}
