package sheetview

import (
	"fmt"
	"math"
	"strings"

	"github.com/llehouerou/drawer/internal/ui"
	"github.com/llehouerou/drawer/internal/ui/headerbar"
	"github.com/llehouerou/drawer/internal/ui/overlay"
	"github.com/llehouerou/drawer/internal/ui/render"
	"github.com/llehouerou/drawer/internal/ui/styles"
)

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	view := overlay.Dim(m.backgroundView(width, height), m.surface.opacity, styles.T().FgBase, m.dim)
	view = overlay.Place(view, m.statusLine(width), ui.StatusRow, 0, width)

	top := m.sheetTop()
	rows := min(int(math.Round(m.surface.height)), height-top)
	if top < height && rows > 0 {
		view = overlay.Place(view, m.sheetView(width, rows), top, 0, width)
	}
	return view
}

func (m *Model) backgroundView(width, height int) string {
	src := strings.Split(m.background, "\n")
	lines := make([]string, height)
	for i := range lines {
		line := ""
		if i < len(src) {
			line = src[i]
		}
		lines[i] = render.TruncateAndPad(line, width)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) statusLine(width int) string {
	return headerbar.Render(headerbar.State{
		Current:   m.engine.Position(),
		Supported: m.engine.Supported(),
		Dragging:  m.engine.Dragging(),
		Offset:    m.surface.offset,
		Opacity:   m.surface.opacity,
		Err:       m.err,
	}, width)
}

// sheetView renders the sheet cut to its visible rows. The frame spans the
// current height, so a stretched sheet shows blank rows under the content.
func (m *Model) sheetView(width, rows int) string {
	inner := max(width-ui.BorderWidth, 0)
	body := []string{m.chrome.Handle(inner)}
	if content := m.scroll.View(); content != "" {
		body = append(body, content)
	}

	total := max(int(math.Round(m.surface.height))-ui.BorderHeight, ui.HandleHeight)
	used := ui.HandleHeight + m.scroll.Height()
	if extra := total - used; extra > 0 {
		body = append(body, render.Fill(inner, extra))
	}

	frame := m.chrome.SheetStyle(m.engine.Dragging()).Width(inner)
	return render.Clip(frame.Render(strings.Join(body, "\n")), rows)
}

func (m *Model) helpText() string {
	var b strings.Builder
	for _, ctx := range m.keys.Contexts() {
		for _, binding := range m.keys.Help(ctx) {
			fmt.Fprintf(&b, "  %-16s %s\n", strings.Join(binding.Keys, " / "), binding.Description)
		}
		b.WriteString("\n")
	}
	return b.String()
}
