// Package tui provides the Bubble Tea integration for glimmer.
// It runs the frame loop and maps terminal input onto page interactions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per display refresh.
type FrameMsg time.Time

// frameCmd schedules the next frame after interval.
// Each handled frame schedules the next one, so the loop runs until the
// program exits.
func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
