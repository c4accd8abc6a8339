package tui

import (
	"github.com/anisan-cli/reel/constant"
	"github.com/anisan-cli/reel/controller"
	"github.com/anisan-cli/reel/internal/ui"
	"github.com/anisan-cli/reel/util"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/samber/lo"
)

// Screen layout. The progress row is fixed so pointer coordinates can be
// mapped onto the track without measuring rendered output.
const (
	progressRow = 2
	trackLeft   = 9
	// trackMargin is the label width on both sides of the track.
	trackMargin = 2 * trackLeft

	volumeStep = 0.05
)

// playerBubble renders a controller and forwards input to it.
type playerBubble struct {
	ctrl     *controller.Controller
	state    controller.State
	title    string
	seekStep float64

	width, height int

	keymap *keymap

	progressC progress.Model
	helpC     help.Model
	notifier  *ui.Model

	rateCursor int
}

func newBubble(ctrl *controller.Controller, options Options) *playerBubble {
	b := &playerBubble{
		ctrl:     ctrl,
		title:    options.Title,
		seekStep: options.SeekStep,
		keymap:   newKeymap(),
		helpC:    help.New(),
		notifier: &ui.Model{},
		progressC: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
	}

	if b.seekStep <= 0 {
		b.seekStep = 5
	}

	if b.title == "" {
		src := ctrl.Source()
		b.title = lo.Ternary(src.Title != "", src.Title, src.URL)
	}

	if w, h, err := util.TerminalSize(); err == nil {
		b.resize(w, h)
	}

	b.sync(ctrl.Snapshot())
	return b
}

func (b *playerBubble) sync(st controller.State) {
	b.state = st
	b.keymap.setState(st)
}

func (b *playerBubble) resize(width, height int) {
	b.width = width
	b.height = height
	b.progressC.Width = b.trackWidth()
	b.helpC.Width = width
}

func (b *playerBubble) trackWidth() int {
	return lo.Max([]int{b.width - trackMargin, 0})
}

// openRateMenu points the menu cursor at the active rate.
func (b *playerBubble) openRateMenu() {
	idx := lo.IndexOf(constant.PlaybackRates, b.state.PlaybackRate)
	if idx < 0 {
		idx = lo.IndexOf(constant.PlaybackRates, 1)
	}
	b.rateCursor = idx
}

func (b *playerBubble) moveRateCursor(delta int) {
	b.rateCursor = lo.Clamp(b.rateCursor+delta, 0, len(constant.PlaybackRates)-1)
}
