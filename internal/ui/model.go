// Package ui holds small reusable pieces of the terminal interface.
package ui

import (
	"strings"
	"time"

	"github.com/anisan-cli/reel/style"
	tea "github.com/charmbracelet/bubbletea"
)

// NotificationDuration is how long a notification stays on screen.
const NotificationDuration = 3 * time.Second

// NotificationMsg replaces the current notification.
type NotificationMsg string

// ClearNotificationMsg resets the notification line.
type ClearNotificationMsg struct{}

// Model shows one short-lived notification next to the last line of a view.
type Model struct {
	notification string
}

// Notify returns a command that raises text as a notification.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

// ClearNotification clears the notification after NotificationDuration.
func ClearNotification() tea.Cmd {
	return tea.Tick(NotificationDuration, func(time.Time) tea.Msg {
		return ClearNotificationMsg{}
	})
}

// Notification returns the text on screen, if any.
func (m *Model) Notification() string {
	return m.notification
}

// Update handles notification messages and ignores everything else.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.notification = string(msg)
		return ClearNotification()
	case ClearNotificationMsg:
		m.notification = ""
	}
	return nil
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
