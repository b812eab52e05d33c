// Package tui runs the snake game in a terminal through Bubble Tea, both
// locally and for SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg asks the model to run one host frame.
type FrameMsg time.Time

// frameCmd schedules the next host frame. The simulation clock inside the
// game turns frames into movement and food ticks.
func frameCmd(fps int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(fps, 1)), func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
