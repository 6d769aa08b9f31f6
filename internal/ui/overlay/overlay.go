// Package overlay composes the sheet onto the background and dims the
// background by the overlay opacity.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/drawer/internal/ui/styles"
)

// Place draws over on top of base with its top-left corner at (row, col).
// Lines of over falling outside base are dropped, and base lines shorter
// than width are padded first. This function is ANSI-aware and handles
// styled text correctly.
func Place(base, over string, row, col, width int) string {
	baseLines := strings.Split(base, "\n")
	overLines := strings.Split(over, "\n")

	for i, overLine := range overLines {
		y := row + i
		if y < 0 {
			continue
		}
		if y >= len(baseLines) {
			break
		}

		overWidth := ansi.StringWidth(overLine)
		if overWidth == 0 {
			continue
		}
		endCol := min(col+overWidth, width)
		if endCol <= col {
			continue
		}
		content := ansi.Cut(overLine, 0, endCol-col)

		baseLine := baseLines[y]
		if w := ansi.StringWidth(baseLine); w < width {
			baseLine += strings.Repeat(" ", width-w)
		}

		line := ansi.Cut(baseLine, 0, col) + content
		if endCol < width {
			line += ansi.Cut(baseLine, endCol, width)
		}
		baseLines[y] = line
	}

	return strings.Join(baseLines, "\n")
}

// Dim re-renders view with its foreground blended from fg toward dim by
// opacity. Existing styling is dropped. An opacity of zero returns view
// unchanged.
func Dim(view string, opacity float64, fg, dim lipgloss.Color) string {
	if opacity <= 0 {
		return view
	}
	style := lipgloss.NewStyle().Foreground(styles.Blend(fg, dim, opacity))

	lines := strings.Split(view, "\n")
	for i, line := range lines {
		plain := ansi.Strip(line)
		if plain == "" {
			continue
		}
		lines[i] = style.Render(plain)
	}
	return strings.Join(lines, "\n")
}
