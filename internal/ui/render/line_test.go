package render

import (
	"strings"
	"testing"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", "hello"},
		{"escape sequence start", "a\x1b[2Jb", "a[2Jb"},
		{"tab expands", "a\tb", "a    b"},
		{"nbsp", "a\u00a0b", "a b"},
		{"invalid utf8", "a\xffb", "ab"},
		{"wide kept", "日本", "日本"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"pads", "hi", 5, "hi   "},
		{"exact", "hello", 5, "hello"},
		{"cuts", "hello world", 8, "hello..."},
		{"wide chars", "日本語テキスト", 7, "日本..."},
		{"empty", "", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateAndPad(tt.input, tt.width); got != tt.want {
				t.Errorf("TruncateAndPad(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestRow(t *testing.T) {
	if got := Row("left", "right", 12); got != "left   right" {
		t.Errorf("Row() = %q", got)
	}
	if got := Row("left", "right", 4); got != "left right" {
		t.Errorf("Row() too narrow = %q", got)
	}
}

func TestFill(t *testing.T) {
	got := Fill(3, 2)
	if got != "   \n   " {
		t.Errorf("Fill(3, 2) = %q", got)
	}
	if Fill(3, 0) != "" {
		t.Error("Fill with no height should be empty")
	}
}

func TestClip(t *testing.T) {
	s := strings.Join([]string{"a", "b", "c"}, "\n")
	tests := []struct {
		n    int
		want string
	}{
		{0, ""},
		{2, "a\nb"},
		{3, s},
		{9, s},
	}

	for _, tt := range tests {
		if got := Clip(s, tt.n); got != tt.want {
			t.Errorf("Clip(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
