package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Border names accepted in the [look] config section.
const (
	BorderRounded = "rounded"
	BorderNormal  = "normal"
	BorderThick   = "thick"
	BorderDouble  = "double"
	BorderHidden  = "hidden"
)

// Chrome describes how the sheet frame is drawn.
type Chrome struct {
	Border string
	Title  string
}

// BorderFor maps a border name to a lipgloss border. Unknown names use the
// rounded border.
func BorderFor(name string) lipgloss.Border {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case BorderNormal:
		return lipgloss.NormalBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	case BorderDouble:
		return lipgloss.DoubleBorder()
	case BorderHidden:
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}

// SheetStyle returns the frame style for the sheet. The bottom edge is
// never drawn since the sheet runs off the bottom of the screen.
func (c Chrome) SheetStyle(dragging bool) lipgloss.Style {
	color := T().Border
	if dragging {
		color = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(BorderFor(c.Border)).
		BorderTop(true).
		BorderLeft(true).
		BorderRight(true).
		BorderBottom(false).
		BorderForeground(color)
}

// Handle renders the grab handle row, centered in width.
func (c Chrome) Handle(width int) string {
	label := "━━━━"
	if c.Title != "" {
		label = c.Title
	}
	title := BoldGradient(label, T().Primary, T().Secondary)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, title)
}
