// Package headerbar renders the one-line status bar above the sheet.
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drawer/internal/snap"
	"github.com/llehouerou/drawer/internal/ui/render"
	"github.com/llehouerou/drawer/internal/ui/styles"
)

// minWidth is the narrowest bar that still shows the tabs.
const minWidth = 20

// tab represents a position tab and the key that moves there.
type tab struct {
	key      string
	name     string
	position snap.Position
}

var tabs = []tab{
	{"o", "Open", snap.Open},
	{"p", "Partial", snap.PartiallyOpen},
	{"c", "Collapsed", snap.Collapsed},
	{"x", "Closed", snap.Closed},
}

// State is what the bar shows.
type State struct {
	Current   snap.Position
	Supported snap.Positions
	Dragging  bool
	Offset    float64
	Opacity   float64
	Err       string // replaces the tabs when set
}

// Render returns the header bar for the given width: a tab per supported
// position on the left, live offset and opacity on the right.
func Render(s State, width int) string {
	right := fmt.Sprintf("%.1f  %.2f ", s.Offset, s.Opacity)
	if s.Dragging {
		right = "dragging  " + right
	}
	if width < minWidth {
		return render.TruncateAndPad(s.Current.String(), width)
	}

	st := styles.T().S()
	var left string
	if s.Err != "" {
		left = " " + st.Error.Render(render.Truncate(s.Err, max(width-len(right)-2, 0)))
	} else {
		left = " " + renderTabs(s)
	}
	if lipgloss.Width(left)+lipgloss.Width(right) >= width {
		right = ""
	}
	return render.Row(left, st.Muted.Render(right), width)
}

func renderTabs(s State) string {
	st := styles.T().S()
	parts := make([]string, 0, len(tabs))
	separator := st.Subtle.Render(" │ ")

	for _, t := range tabs {
		if !s.Supported.Contains(t.position) {
			continue
		}

		keyStyle, nameStyle := st.Muted, st.Base
		if t.position == s.Current {
			keyStyle, nameStyle = st.Active, st.Active
		}

		parts = append(parts, keyStyle.Render(t.key)+" "+nameStyle.Render(t.name))
	}

	return strings.Join(parts, separator)
}
