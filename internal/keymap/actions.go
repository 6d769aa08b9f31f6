// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Sheet positions
	ActionOpen          Action = "open"
	ActionPartiallyOpen Action = "partially_open"
	ActionCollapse      Action = "collapse"
	ActionClose         Action = "close"

	// Stepping through the supported positions
	ActionStepOpen   Action = "step_open"   // one position more open
	ActionStepClosed Action = "step_closed" // one position more closed

	// Same as tapping the dimmed overlay
	ActionDismiss Action = "dismiss"
)
