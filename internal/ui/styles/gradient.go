package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// BoldGradient renders bold text whose color runs from one end to the
// other across its grapheme clusters.
func BoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(true).Render(text)
	}

	c1, c2 := toColorful(from), toColorful(to)
	last := float64(len(clusters) - 1)

	var b strings.Builder
	for i, cluster := range clusters {
		// HCL keeps the transition perceptually even.
		c := c1.BlendHcl(c2, float64(i)/last).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(true).Render(cluster))
	}
	return b.String()
}

// Blend mixes from toward to by t in [0, 1] and returns a hex color.
// Used to dim the background by the overlay opacity.
func Blend(from, to lipgloss.Color, t float64) lipgloss.Color {
	t = min(max(t, 0), 1)
	return lipgloss.Color(toColorful(from).BlendRgb(toColorful(to), t).Clamped().Hex())
}

// toColorful converts a "#rrggbb" lipgloss color. ANSI palette colors have
// no fixed value and map to a neutral gray.
func toColorful(c lipgloss.Color) colorful.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	col, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return col
}
