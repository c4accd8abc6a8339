package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/anisan-cli/reel/color"
	"github.com/anisan-cli/reel/constant"
	"github.com/anisan-cli/reel/controller"
	"github.com/anisan-cli/reel/icon"
	"github.com/anisan-cli/reel/seek"
	"github.com/anisan-cli/reel/source"
	"github.com/anisan-cli/reel/style"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/samber/lo"
)

func (b *playerBubble) View() string {
	var lines []string

	if b.state.Phase == controller.Idle {
		lines = []string{
			style.ErrorTitle("no video source"),
			"",
			style.Faint(b.title),
		}
	} else {
		lines = []string{
			b.viewTitle(),
			"",
			b.viewProgress(),
			"",
			b.viewControls(),
			b.viewSpeedMenu(),
		}
	}

	return b.notifier.View(b.renderLines(lines))
}

func (b *playerBubble) renderLines(lines []string) string {
	helpView := b.helpC.View(b.keymap)
	out := strings.Join(lines, "\n")

	if pad := b.height - len(lines) - lipgloss.Height(helpView); pad > 0 {
		out += strings.Repeat("\n", pad)
	}

	return out + "\n" + helpView
}

func (b *playerBubble) viewTitle() string {
	title := b.title
	if b.width > 4 {
		title = truncate.StringWithTail(title, uint(b.width-4), "…")
	}

	tag := style.Tag(color.New("230"), color.Purple)(b.state.Kind.String())
	return style.Title(title) + " " + tag
}

func (b *playerBubble) viewProgress() string {
	if b.state.Kind == source.Embedded {
		return strings.Repeat(" ", trackLeft) + style.Faint(icon.Get(icon.Embedded)+" playing in the browser")
	}

	current := fmt.Sprintf("%*s ", trackLeft-1, seek.Format(b.state.CurrentTime))
	total := fmt.Sprintf(" %-*s", trackLeft-1, seek.Format(b.state.Duration))

	if b.trackWidth() == 0 {
		return current + total
	}

	return current + b.progressC.ViewAs(seek.Fraction(b.state.CurrentTime, b.state.Duration)) + total
}

func (b *playerBubble) viewControls() string {
	if !b.state.ControlsVisible {
		return ""
	}

	caps := b.state.Capabilities
	parts := []string{b.viewPlayback()}

	if caps.Volume {
		if b.state.Muted {
			parts = append(parts, icon.Get(icon.Muted)+" muted")
		} else {
			parts = append(parts, fmt.Sprintf("%s %d%%", icon.Get(icon.Volume), int(b.state.Volume*100+0.5)))
		}
	}

	if caps.Rate {
		parts = append(parts, icon.Get(icon.Speed)+" "+formatRate(b.state.PlaybackRate))
	}

	if caps.Fullscreen && b.state.Fullscreen {
		parts = append(parts, icon.Get(icon.Fullscreen)+" fullscreen")
	}

	return strings.Repeat(" ", trackLeft) + strings.Join(parts, style.Faint("  │  "))
}

func (b *playerBubble) viewPlayback() string {
	if b.state.IsPlaying {
		return style.Fg(color.Green)(icon.Get(icon.Play) + " playing")
	}
	return style.Fg(color.Yellow)(icon.Get(icon.Pause) + " paused")
}

func (b *playerBubble) viewSpeedMenu() string {
	if !b.state.SpeedMenuOpen {
		return ""
	}

	rates := lo.Map(constant.PlaybackRates, func(rate float64, i int) string {
		label := formatRate(rate)
		switch {
		case i == b.rateCursor:
			return style.Tag(color.New("230"), color.Purple)(label)
		case rate == b.state.PlaybackRate:
			return style.Bold(" " + label + " ")
		default:
			return " " + label + " "
		}
	})

	return strings.Repeat(" ", trackLeft) + strings.Join(rates, "")
}

func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64) + "x"
}
