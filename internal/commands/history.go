package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/dbgcmd/internal/messages"
	"github.com/renato0307/dbgcmd/internal/ui"
)

// HistoryArgs defines arguments for the history command
type HistoryArgs struct {
	Count int `form:"count" optional:"true" default:"10" validate:"min=1"`
}

// HistoryCommand lists confirmed entries, newest first. The listing includes
// the "history" entry itself at position 0.
func HistoryCommand() ExecuteFunc {
	return func(ctx Context) tea.Cmd {
		var args HistoryArgs
		if err := ctx.ParseArgs(&args); err != nil {
			return messages.ErrorCmd("history: %v", err)
		}

		lines := []string{}
		for entry := range ctx.Console.History() {
			if len(lines) == args.Count {
				break
			}
			lines = append(lines, fmt.Sprintf("%3d  %s", len(lines), entry))
		}
		return messages.LinesCmd(ui.MessageTypeInfo, lines...)
	}
}

// ClearHistoryCommand forgets every confirmed entry, including its own
func ClearHistoryCommand() ExecuteFunc {
	return func(ctx Context) tea.Cmd {
		n := ctx.Console.HistoryLen()
		ctx.Console.ClearHistory()
		return messages.SuccessCmd("cleared %d entries", n)
	}
}
