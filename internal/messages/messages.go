// Package messages carries command results back to the application.
//
// Commands never touch the output pane directly. They return a tea.Cmd that
// produces an OutputMsg (or ClearOutputMsg), and the application prints it.
//
// Pattern:
//
//	func HistoryCommand() ExecuteFunc {
//	    return func(ctx Context) tea.Cmd {
//	        if err := ctx.ParseArgs(&args); err != nil {
//	            return messages.ErrorCmd("history: %v", err)
//	        }
//	        return messages.LinesCmd(ui.MessageTypeInfo, lines...)
//	    }
//	}
package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/dbgcmd/internal/ui"
)

// OutputMsg asks the application to print lines in the output pane
type OutputMsg struct {
	Entry string // Confirmed text the lines answer, set by WithEntry
	Lines []string
	Type  ui.MessageType
}

// ClearOutputMsg asks the application to empty the output pane
type ClearOutputMsg struct{}

// ErrorCmd returns a tea.Cmd that prints one error line.
func ErrorCmd(format string, args ...any) tea.Cmd {
	return LinesCmd(ui.MessageTypeError, fmt.Sprintf(format, args...))
}

// SuccessCmd returns a tea.Cmd that prints one success line.
func SuccessCmd(format string, args ...any) tea.Cmd {
	return LinesCmd(ui.MessageTypeSuccess, fmt.Sprintf(format, args...))
}

// InfoCmd returns a tea.Cmd that prints one info line.
func InfoCmd(format string, args ...any) tea.Cmd {
	return LinesCmd(ui.MessageTypeInfo, fmt.Sprintf(format, args...))
}

// LinesCmd returns a tea.Cmd that prints lines in order with one type.
func LinesCmd(msgType ui.MessageType, lines ...string) tea.Cmd {
	return func() tea.Msg {
		return OutputMsg{Lines: lines, Type: msgType}
	}
}

// ClearCmd returns a tea.Cmd that empties the output pane.
func ClearCmd() tea.Cmd {
	return func() tea.Msg {
		return ClearOutputMsg{}
	}
}

// WithEntry tags the OutputMsg produced by cmd with the entry that ran it.
// Other messages pass through unchanged, and a nil cmd stays nil.
//
// Example:
//
//	return m, messages.WithEntry(def.Execute(ctx), "echo hi")
func WithEntry(cmd tea.Cmd, entry string) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if out, ok := msg.(OutputMsg); ok {
			out.Entry = entry
			return out
		}
		return msg
	}
}

// WrapError wraps err with formatted context, preserving the chain for
// errors.Is and errors.As.
func WrapError(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
