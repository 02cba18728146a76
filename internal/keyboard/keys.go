package keyboard

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/renato0307/dbgcmd/internal/config"
)

// Keys holds the console key bindings
type Keys struct {
	// Visibility
	Toggle key.Binding

	// Editing
	Backspace  key.Binding
	ClearEntry key.Binding
	Paste      key.Binding

	// History
	Older key.Binding
	Newer key.Binding

	// Submission
	Confirm key.Binding
	Quit    key.Binding
}

// Default returns the bindings of config.Default
func Default() *Keys {
	return FromConfig(config.Default().Keys)
}

// FromConfig builds bindings from configured key names
func FromConfig(k config.Keys) *Keys {
	return &Keys{
		Toggle:     binding(k.Toggle, "toggle console"),
		Backspace:  binding(k.Backspace, "delete char"),
		ClearEntry: binding(k.ClearEntry, "clear entry"),
		Paste:      binding(k.Paste, "paste"),
		Older:      binding(k.Older, "older entry"),
		Newer:      binding(k.Newer, "newer entry"),
		Confirm:    binding(k.Confirm, "run"),
		Quit:       binding(k.Quit, "quit"),
	}
}

// ShortHelp lists the bindings shown in the console footer
func (k *Keys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Older, k.Newer, k.Toggle, k.Quit}
}

func binding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], desc),
	)
}
