package testutil

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no ansi codes", "hello world", "hello world"},
		{"with color codes", "\x1b[31mred\x1b[0m text", "red text"},
		{"with multiple codes", "\x1b[1;32mbold green\x1b[0m", "bold green"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("StripANSI(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLineHelpers(t *testing.T) {
	output := "first\n\x1b[1msecond line\x1b[0m\nthird\n\n"

	if got := LineIndex(output, "second"); got != 1 {
		t.Errorf("LineIndex = %d, want 1", got)
	}
	if got := LineIndex(output, "missing"); got != -1 {
		t.Errorf("LineIndex(missing) = %d, want -1", got)
	}
	if got := FindLine(output, "second"); got != "second line" {
		t.Errorf("FindLine = %q", got)
	}
	if !ContainsLine(output, "third") {
		t.Error("ContainsLine(third) = false")
	}
	if got := len(SplitLines(output)); got != 3 {
		t.Errorf("SplitLines = %d lines, want 3", got)
	}
}

func TestMouseBuilders(t *testing.T) {
	if m := Press(3, 4); m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft || m.X != 3 || m.Y != 4 {
		t.Errorf("Press = %+v", m)
	}
	if m := Wheel(0, 0, -1); m.Button != tea.MouseButtonWheelUp {
		t.Errorf("Wheel(-1) button = %v", m.Button)
	}
	if m := Wheel(0, 0, 1); m.Button != tea.MouseButtonWheelDown {
		t.Errorf("Wheel(1) button = %v", m.Button)
	}
}

func TestKey(t *testing.T) {
	tests := []string{"q", "[", "esc", "ctrl+c", "down"}
	for _, k := range tests {
		if got := Key(k).String(); got != k {
			t.Errorf("Key(%q).String() = %q", k, got)
		}
	}
}

func TestExecuteCmd(t *testing.T) {
	type ping struct{}

	if ExecuteCmd(nil) != nil {
		t.Error("nil command should give nil message")
	}
	batch := tea.Batch(nil, func() tea.Msg { return ping{} })
	if _, ok := ExecuteCmd(batch).(ping); !ok {
		t.Error("batch message was not flattened")
	}
}
