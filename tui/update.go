package tui

import (
	"github.com/anisan-cli/reel/constant"
	"github.com/anisan-cli/reel/controller"
	"github.com/anisan-cli/reel/icon"
	"github.com/anisan-cli/reel/internal/ui"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type (
	stateMsg  controller.State
	closedMsg struct{}
)

// waitForState blocks on the next snapshot from the controller.
func waitForState(updates <-chan controller.State) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-updates
		if !ok {
			return closedMsg{}
		}
		return stateMsg(st)
	}
}

func (b *playerBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := b.notifier.Update(msg)

	switch msg := msg.(type) {
	case stateMsg:
		b.sync(controller.State(msg))
		return b, tea.Batch(cmd, waitForState(b.ctrl.Updates()))
	case closedMsg:
		return b, tea.Quit
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case tea.MouseMsg:
		b.handleMouse(msg)
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) || key.Matches(msg, b.keymap.quit) {
			return b, tea.Quit
		}
		cmd = tea.Batch(cmd, b.handleKey(msg))
	}

	return b, cmd
}

func (b *playerBubble) handleMouse(msg tea.MouseMsg) {
	b.ctrl.Activity()

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == progressRow {
		b.ctrl.SeekByPointerPosition(float64(msg.X), trackLeft, float64(b.trackWidth()))
	}

	b.sync(b.ctrl.Snapshot())
}

func (b *playerBubble) handleKey(msg tea.KeyMsg) tea.Cmd {
	b.ctrl.Activity()
	defer func() { b.sync(b.ctrl.Snapshot()) }()

	if b.ctrl.Snapshot().SpeedMenuOpen {
		return b.handleMenuKey(msg)
	}

	switch {
	case key.Matches(msg, b.keymap.toggle):
		return b.toggle()
	case key.Matches(msg, b.keymap.seekBack):
		b.ctrl.SeekBy(-b.seekStep)
	case key.Matches(msg, b.keymap.seekForward):
		b.ctrl.SeekBy(b.seekStep)
	case key.Matches(msg, b.keymap.volumeUp):
		b.ctrl.SetVolume(b.state.Volume + volumeStep)
	case key.Matches(msg, b.keymap.volumeDown):
		b.ctrl.SetVolume(b.state.Volume - volumeStep)
	case key.Matches(msg, b.keymap.mute):
		b.ctrl.ToggleMute()
	case key.Matches(msg, b.keymap.fullscreen):
		b.ctrl.RequestFullscreen()
	case key.Matches(msg, b.keymap.speed):
		b.ctrl.ToggleSpeedMenu()
		b.openRateMenu()
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}

	return nil
}

func (b *playerBubble) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.menuPrev):
		b.moveRateCursor(-1)
	case key.Matches(msg, b.keymap.menuNext):
		b.moveRateCursor(1)
	case key.Matches(msg, b.keymap.menuSelect):
		b.ctrl.SelectRate(constant.PlaybackRates[b.rateCursor])
	case key.Matches(msg, b.keymap.menuClose), key.Matches(msg, b.keymap.speed):
		b.ctrl.CloseSpeedMenu()
	}

	return nil
}

// toggle flips playback and reports a refused play as a notification.
func (b *playerBubble) toggle() tea.Cmd {
	future := b.ctrl.Toggle()

	return func() tea.Msg {
		if _, err := future.Collect(); err != nil {
			return ui.NotificationMsg(icon.Get(icon.Fail) + " playback refused")
		}
		return nil
	}
}
