package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// MessageType selects the color of a console output line
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

// RenderMessage renders one output line, truncated to width.
func RenderMessage(text string, msgType MessageType, theme *Theme, width int) string {
	if text == "" {
		return ""
	}

	// prefix (2) + frame padding (2)
	maxLength := width - 4
	if maxLength < 20 {
		maxLength = 20
	}
	runes := []rune(text)
	if len(runes) > maxLength {
		text = string(runes[:maxLength-1]) + "…"
	}

	color := theme.Foreground
	prefix := "  "
	switch msgType {
	case MessageTypeSuccess:
		color = theme.Success
		prefix = "✓ "
	case MessageTypeError:
		color = theme.Error
		prefix = "✗ "
	}

	return lipgloss.NewStyle().Foreground(color).Render(prefix + text)
}
