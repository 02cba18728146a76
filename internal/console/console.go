// Package console models the input state of a line-oriented debug console:
// an editable entry, the history of confirmed entries and a cursor for
// browsing that history the way a shell recalls previous lines.
//
// It does not render anything and does not interpret commands. The host
// feeds characters into a Console, reads back Entry and History for display,
// and calls Confirm with its own parser when the user submits a line.
//
// Builds tagged with noconsole get a Disabled console from New, where every
// method is a no-op returning zero values.
package console

import "iter"

// Console is the full set of operations shared by the working console and
// its disabled stand-in.
type Console interface {
	// Enabled reports whether this build carries a working console.
	Enabled() bool

	Entry() string
	SetEntry(text string)
	ReceiveChar(r rune)
	ReceiveText(text string)
	ReceiveCharIf(r rune, accept func(rune) bool) bool
	ReceiveTextIf(text string, accept func(string) bool) bool
	Backspace()
	Clear()

	History() iter.Seq[string]
	HistoryDeduped() iter.Seq[string]
	HistoryLen() int
	ClearHistory()

	Up() bool
	Down() bool
	UpDeduped() bool
	DownDeduped() bool
	Browsing() (index int, ok bool)

	Shown() bool
	Show()
	Hide()
	ToggleShown()

	// Commit pushes the displayed entry to history, returns to live editing
	// and returns the text that was displayed. Use Confirm instead.
	Commit() string
}

// New returns the console selected for this build.
func New() Console {
	if Enabled {
		return NewState()
	}
	return Disabled{}
}
