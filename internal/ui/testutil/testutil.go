// Package testutil provides helpers for driving and inspecting terminal
// views in tests.
package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes escape sequences so rendered output can be compared
// as plain text.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// MeasureWidth returns the visual width of a string, accounting for
// wide characters and ignoring styling.
func MeasureWidth(s string) int {
	return lipgloss.Width(StripANSI(s))
}

// SplitLines splits plain output into lines, removing trailing empty lines.
func SplitLines(output string) []string {
	lines := strings.Split(StripANSI(output), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return LineIndex(output, substr) >= 0
}

// FindLine returns the first plain line containing substr, or empty string.
func FindLine(output, substr string) string {
	i := LineIndex(output, substr)
	if i < 0 {
		return ""
	}
	return strings.Split(StripANSI(output), "\n")[i]
}

// LineIndex returns the row of the first line containing substr, or -1.
func LineIndex(output, substr string) int {
	for i, line := range strings.Split(StripANSI(output), "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// Press builds a left button press at column x, row y.
func Press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// Motion builds a drag motion with the left button held.
func Motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

// Release builds a left button release.
func Release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

// Wheel builds a wheel event; positive steps scroll down.
func Wheel(x, y, steps int) tea.MouseMsg {
	button := tea.MouseButtonWheelDown
	if steps < 0 {
		button = tea.MouseButtonWheelUp
	}
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: button}
}

// Key builds a key message from its string form, as keymap bindings name
// keys. Runes are sent as typed text.
func Key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// ExecuteCmd runs a command and returns its message, or nil for a nil
// command. Batches are flattened and the first non-nil message wins.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if m := ExecuteCmd(c); m != nil {
				return m
			}
		}
		return nil
	}
	return msg
}

// Drain feeds the messages produced by cmd back into model until it stops
// returning commands or limit rounds have passed. It returns the final
// model. Used to run animations to completion.
func Drain(model tea.Model, cmd tea.Cmd, limit int) tea.Model {
	for range limit {
		msg := ExecuteCmd(cmd)
		if msg == nil {
			return model
		}
		model, cmd = model.Update(msg)
	}
	return model
}
