// Package input translates Bubble Tea key events into console operations.
package input

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/dbgcmd/internal/console"
	"github.com/renato0307/dbgcmd/internal/keyboard"
	"github.com/renato0307/dbgcmd/internal/logging"
)

// Action tells the caller what a key event did.
type Action int

const (
	ActionNone      Action = iota // event ignored or rejected
	ActionEdited                  // entry text changed
	ActionNavigated               // history cursor moved
	ActionConfirm                 // caller should confirm the entry
	ActionToggled                 // visibility flipped
	ActionQuit                    // caller should exit
)

func (a Action) String() string {
	switch a {
	case ActionEdited:
		return "edited"
	case ActionNavigated:
		return "navigated"
	case ActionConfirm:
		return "confirm"
	case ActionToggled:
		return "toggled"
	case ActionQuit:
		return "quit"
	default:
		return "none"
	}
}

// Adapter feeds key events to a console. Apart from the toggle and quit
// bindings, events are ignored while the console is hidden.
type Adapter struct {
	console console.Console
	keys    *keyboard.Keys
	allow   AllowList

	// readClipboard is swapped in tests
	readClipboard func() (string, error)
}

// NewAdapter creates an adapter for c
func NewAdapter(c console.Console, keys *keyboard.Keys, allow AllowList) *Adapter {
	return &Adapter{
		console:       c,
		keys:          keys,
		allow:         allow,
		readClipboard: clipboard.ReadAll,
	}
}

// Handle applies msg to the console and reports the outcome.
func (a *Adapter) Handle(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return ActionQuit
	case !msg.Paste && key.Matches(msg, a.keys.Toggle):
		a.console.ToggleShown()
		return ActionToggled
	}

	if !a.console.Shown() {
		return ActionNone
	}

	if msg.Paste {
		return a.receive(string(msg.Runes))
	}

	switch {
	case key.Matches(msg, a.keys.Confirm):
		return ActionConfirm
	case key.Matches(msg, a.keys.Backspace):
		a.console.Backspace()
		return ActionEdited
	case key.Matches(msg, a.keys.ClearEntry):
		a.console.SetEntry("")
		return ActionEdited
	case key.Matches(msg, a.keys.Older):
		return navigated(a.console.UpDeduped())
	case key.Matches(msg, a.keys.Newer):
		return navigated(a.console.DownDeduped())
	case key.Matches(msg, a.keys.Paste):
		return a.pasteClipboard()
	}

	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		return a.receive(string(msg.Runes))
	}
	return ActionNone
}

func (a *Adapter) receive(text string) Action {
	if a.console.ReceiveTextIf(text, a.allow.Accepts) {
		return ActionEdited
	}
	return ActionNone
}

func (a *Adapter) pasteClipboard() Action {
	text, err := a.readClipboard()
	if err != nil {
		logging.Warn("clipboard read failed", "error", err)
		return ActionNone
	}
	return a.receive(strings.TrimRight(text, "\r\n"))
}

func navigated(moved bool) Action {
	if moved {
		return ActionNavigated
	}
	return ActionNone
}
