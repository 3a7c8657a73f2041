package components

import (
	"strings"

	"github.com/theirongolddev/economanager/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// StatusKind selects the color of the status message.
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusOK
	StatusError
)

// RenderStatusBar renders the bottom status bar: key hints on the left and
// the latest message on the right.
func RenderStatusBar(width int, hints, message string, kind StatusKind) string {
	t := theme.Active

	style := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	msgStyle := style
	switch kind {
	case StatusOK:
		msgStyle = msgStyle.Foreground(t.Paid)
	case StatusError:
		msgStyle = msgStyle.Foreground(t.Error).Bold(true)
	}

	left := style.Render(" " + hints)
	right := ""
	if message != "" {
		right = msgStyle.Render(message + " ")
	}

	// Pad middle
	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}
	gap := style.Render(strings.Repeat(" ", padding))

	return lipgloss.NewStyle().MaxWidth(width).Render(left + gap + right)
}
