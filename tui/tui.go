// Package tui is the terminal front end of a playback session.
package tui

import (
	"github.com/anisan-cli/reel/controller"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configure the player screen.
type Options struct {
	// Title overrides the source title in the header.
	Title string
	// SeekStep is how far, in seconds, the arrow keys move the playhead.
	SeekStep float64
}

func (b *playerBubble) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(b.title),
		waitForState(b.ctrl.Updates()),
	)
}

// Run shows the player screen until the user quits or the controller closes.
// Closing the controller is left to the caller.
func Run(ctrl *controller.Controller, options Options) error {
	bubble := newBubble(ctrl, options)

	_, err := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	return err
}
