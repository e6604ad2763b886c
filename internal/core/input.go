package core

// Action represents a semantic page action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionReveal         // Space, Enter - reveal or cycle the message
	ActionCommand        // : - open the command bar
	ActionHelp           // ? - toggle full help
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionReveal:
		return "Reveal"
	case ActionCommand:
		return "Command"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
