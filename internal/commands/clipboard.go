package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/dbgcmd/internal/messages"
)

// writeClipboard is swapped in tests
var writeClipboard = clipboard.WriteAll

// CopyToClipboard copies text to the system clipboard and returns a message
// for the console output
func CopyToClipboard(text string) (string, error) {
	if err := writeClipboard(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return fmt.Sprintf("copied to clipboard: %s", text), nil
}

// CopyCommand copies the entry confirmed before "copy" using copyText
func CopyCommand(copyText CopyFunc) ExecuteFunc {
	return func(ctx Context) tea.Cmd {
		// Position 0 is the "copy" just confirmed.
		var previous string
		found := false
		i := 0
		for entry := range ctx.Console.History() {
			if i == 1 {
				previous, found = entry, true
				break
			}
			i++
		}
		if !found {
			return messages.ErrorCmd("copy: no previous entry")
		}

		return func() tea.Msg {
			msg, err := copyText(previous)
			if err != nil {
				return messages.ErrorCmd("%v", err)()
			}
			return messages.SuccessCmd("%s", msg)()
		}
	}
}
