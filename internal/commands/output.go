package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/dbgcmd/internal/messages"
	"github.com/renato0307/dbgcmd/internal/ui"
)

// EchoArgs defines arguments for the echo command
type EchoArgs struct {
	Text string `form:"text" optional:"true" rest:"true"`
}

// EchoCommand prints its arguments
func EchoCommand() ExecuteFunc {
	return func(ctx Context) tea.Cmd {
		var args EchoArgs
		if err := ctx.ParseArgs(&args); err != nil {
			return messages.ErrorCmd("echo: %v", err)
		}
		return messages.LinesCmd(ui.MessageTypeInfo, args.Text)
	}
}

// HelpCommand lists every command in the registry with its usage
func HelpCommand() ExecuteFunc {
	return func(ctx Context) tea.Cmd {
		defs := ctx.Registry.All()
		lines := make([]string, len(defs))
		for i, def := range defs {
			lines[i] = fmt.Sprintf("%-16s %s", def.Usage(), def.Description)
		}
		return messages.LinesCmd(ui.MessageTypeInfo, lines...)
	}
}

// ClearCommand empties the output pane
func ClearCommand() ExecuteFunc {
	return func(ctx Context) tea.Cmd {
		return messages.ClearCmd()
	}
}
