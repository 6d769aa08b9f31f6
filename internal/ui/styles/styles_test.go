package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestBlend(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want lipgloss.Color
	}{
		{"none", 0, "#ffffff"},
		{"full", 1, "#000000"},
		{"clamped low", -1, "#ffffff"},
		{"clamped high", 2, "#000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blend("#ffffff", "#000000", tt.t)
			if got != tt.want {
				t.Errorf("Blend(t=%v) = %q, want %q", tt.t, got, tt.want)
			}
		})
	}
}

func TestBlend_Midpoint(t *testing.T) {
	got := Blend("#000000", "#ffffff", 0.5)
	if got != "#808080" {
		t.Errorf("Blend midpoint = %q, want #808080", got)
	}
}

func TestBorderFor(t *testing.T) {
	tests := []struct {
		name string
		want lipgloss.Border
	}{
		{"rounded", lipgloss.RoundedBorder()},
		{"normal", lipgloss.NormalBorder()},
		{"THICK", lipgloss.ThickBorder()},
		{"double", lipgloss.DoubleBorder()},
		{"hidden", lipgloss.HiddenBorder()},
		{"bogus", lipgloss.RoundedBorder()},
		{"", lipgloss.RoundedBorder()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BorderFor(tt.name); got != tt.want {
				t.Errorf("BorderFor(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestBoldGradient_KeepsText(t *testing.T) {
	if got := BoldGradient("", T().Primary, T().Secondary); got != "" {
		t.Errorf("BoldGradient(\"\") = %q, want empty", got)
	}
	got := ansi.Strip(BoldGradient("drawer", T().Primary, T().Secondary))
	if got != "drawer" {
		t.Errorf("BoldGradient text = %q, want %q", got, "drawer")
	}
}

func TestBlend_ANSIColorFallsBackToGray(t *testing.T) {
	if got := Blend("240", "240", 0.5); got != "#808080" {
		t.Errorf("Blend(ansi) = %q, want #808080", got)
	}
}
