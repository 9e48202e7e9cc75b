// Package ui binds the playback session to a terminal front end.
// It is deliberately thin: all session logic lives in internal/session,
// the UI only forwards actions and renders snapshots.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mveldt/chime/internal/player"
)

// TickMsg drives the once-a-second position refresh.
type TickMsg time.Time

// FinishedMsg is emitted when the engine reports natural end of output.
type FinishedMsg struct{}

// TickCmd schedules the next position tick.
func TickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// WaitFinishedCmd funnels the engine's asynchronous finish signal onto the
// single update loop.
func WaitFinishedCmd(engine player.Interface) tea.Cmd {
	return func() tea.Msg {
		<-engine.FinishedChan()
		return FinishedMsg{}
	}
}
