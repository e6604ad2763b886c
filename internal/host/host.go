// Package host integrates the page with the program hosting it. The only
// supported host is an interactive terminal; anything else gets a no-op
// host so the page runs unchanged.
package host

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-glimmer/internal/core"
)

// Host is the capability set the page may ask of its environment.
// Every method is safe to call on any implementation.
type Host interface {
	// Name identifies the host in logs.
	Name() string

	// Available reports whether a real host was detected.
	Available() bool

	// Expand asks the host to give the page its full height.
	Expand() tea.Cmd

	// SetHeader asks the host to show a themed header.
	SetHeader(title string) tea.Cmd

	// Background returns the color the page paints behind every cell, or
	// the default color to leave the host's background alone.
	Background(theme core.Color) core.Color
}

// Probe returns a terminal host when out is an interactive terminal and
// disabled is false, and a no-op host otherwise.
func Probe(out *os.File, disabled bool) Host {
	if disabled || out == nil || !term.IsTerminal(int(out.Fd())) {
		return Nop{}
	}
	return Terminal{}
}

// Terminal drives a real terminal: the alternate screen gives the page the
// full window and the window title carries the header.
type Terminal struct{}

// Name implements Host.
func (Terminal) Name() string { return "terminal" }

// Available implements Host.
func (Terminal) Available() bool { return true }

// Expand implements Host.
func (Terminal) Expand() tea.Cmd {
	return tea.EnterAltScreen
}

// SetHeader implements Host.
func (Terminal) SetHeader(title string) tea.Cmd {
	if title == "" {
		return nil
	}
	return tea.SetWindowTitle(title)
}

// Background implements Host.
func (Terminal) Background(theme core.Color) core.Color {
	return theme
}

// Nop is used when no host is present. Its commands are nil, which Bubble
// Tea ignores.
type Nop struct{}

// Name implements Host.
func (Nop) Name() string { return "none" }

// Available implements Host.
func (Nop) Available() bool { return false }

// Expand implements Host.
func (Nop) Expand() tea.Cmd { return nil }

// SetHeader implements Host.
func (Nop) SetHeader(string) tea.Cmd { return nil }

// Background implements Host.
func (Nop) Background(core.Color) core.Color { return core.ColorDefault }
