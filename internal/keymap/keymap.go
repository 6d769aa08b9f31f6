package keymap

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "sheet", "content"
}

// All contains all key bindings for dispatch and help generation.
// Content scrolling keys are handled by the viewport and listed for help only.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Sheet
	{ActionOpen, []string{"o"}, "Open sheet", "sheet"},
	{ActionPartiallyOpen, []string{"p"}, "Partially open sheet", "sheet"},
	{ActionCollapse, []string{"c"}, "Collapse sheet", "sheet"},
	{ActionClose, []string{"x"}, "Close sheet", "sheet"},
	{ActionStepOpen, []string{"[", "shift+up"}, "One position more open", "sheet"},
	{ActionStepClosed, []string{"]", "shift+down"}, "One position more closed", "sheet"},
	{ActionDismiss, []string{"esc"}, "Dismiss open sheet", "sheet"},

	// Content
	{"", []string{"j", "down"}, "Scroll content down", "content"},
	{"", []string{"k", "up"}, "Scroll content up", "content"},
	{"", []string{"pgdown", "pgup"}, "Page content", "content"},
}
