package tui

import (
	"github.com/anisan-cli/reel/color"
	"github.com/anisan-cli/reel/controller"
	"github.com/anisan-cli/reel/style"
	"github.com/charmbracelet/bubbles/key"
)

// keymap holds the bindings of the player screen. The speed menu reuses the
// arrow keys, so the help shown depends on the current state.
type keymap struct {
	state controller.State

	quit, forceQuit,
	toggle,
	seekBack, seekForward,
	volumeUp, volumeDown, mute,
	speed, fullscreen,
	menuPrev, menuNext, menuSelect, menuClose,
	showHelp key.Binding
}

func (k *keymap) setState(st controller.State) {
	k.state = st
}

func newKeymap() *keymap {
	return &keymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		toggle: key.NewBinding(
			key.WithKeys(" ", "space", "k"),
			key.WithHelp(style.Fg(color.Orange)("space"), style.Fg(color.Orange)("play/pause")),
		),
		seekBack: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "back"),
		),
		seekForward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "forward"),
		),
		volumeUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "louder"),
		),
		volumeDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "quieter"),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		speed: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "speed"),
		),
		fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		menuPrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "slower"),
		),
		menuNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "faster"),
		),
		menuSelect: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		menuClose: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *keymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	if k.state.Phase == controller.Idle {
		return h(k.quit), h(k.quit, k.forceQuit)
	}

	if k.state.SpeedMenuOpen {
		all := h(k.menuPrev, k.menuNext, k.menuSelect, k.menuClose)
		return all, all
	}

	caps := k.state.Capabilities
	short := h(k.toggle)
	full := h(k.toggle)

	if caps.Seek {
		short = append(short, k.seekBack, k.seekForward)
		full = append(full, k.seekBack, k.seekForward)
	}
	if caps.Volume {
		full = append(full, k.volumeUp, k.volumeDown, k.mute)
	}
	if caps.Rate {
		full = append(full, k.speed)
	}
	if caps.Fullscreen {
		full = append(full, k.fullscreen)
	}

	return append(short, k.showHelp, k.quit), append(full, k.showHelp, k.quit, k.forceQuit)
}

func (k *keymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *keymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
