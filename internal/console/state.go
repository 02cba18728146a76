package console

import (
	"iter"
	"unicode/utf8"

	"github.com/renato0307/dbgcmd/internal/logging"
)

// State is the working console. The zero value is ready to use: live
// editing, empty buffer, empty history, hidden.
type State struct {
	shown  bool
	buffer string
	// history is stored oldest first; position 0 of the public view is the
	// last element.
	history []string
	cursor  cursor
}

// NewState creates an empty, hidden console.
func NewState() *State {
	return &State{}
}

// Enabled always reports true for a working console.
func (s *State) Enabled() bool {
	return true
}

// Entry returns the displayed text: the browsed history entry while
// browsing, the live buffer otherwise.
func (s *State) Entry() string {
	if s.cursor.isLive() {
		return s.buffer
	}
	return s.at(s.cursor.index)
}

// SetEntry replaces the live buffer and returns to live editing. A browsed
// entry is discarded rather than copied.
func (s *State) SetEntry(text string) {
	s.buffer = text
	s.cursor = live()
}

// ReceiveChar appends r to the entry.
func (s *State) ReceiveChar(r rune) {
	s.fork()
	s.buffer += string(r)
}

// ReceiveText appends text to the entry.
func (s *State) ReceiveText(text string) {
	s.fork()
	s.buffer += text
}

// ReceiveCharIf appends r only when accept returns true for it, and
// reports whether it did.
func (s *State) ReceiveCharIf(r rune, accept func(rune) bool) bool {
	ok := accept(r)
	if ok {
		s.ReceiveChar(r)
	}
	return ok
}

// ReceiveTextIf appends text only when accept returns true for it, and
// reports whether it did.
func (s *State) ReceiveTextIf(text string, accept func(string) bool) bool {
	ok := accept(text)
	if ok {
		s.ReceiveText(text)
	}
	return ok
}

// Backspace removes the last character of the entry. It does nothing on an
// empty entry.
func (s *State) Backspace() {
	s.fork()
	_, size := utf8.DecodeLastRuneInString(s.buffer)
	s.buffer = s.buffer[:len(s.buffer)-size]
}

// Clear empties the live buffer. While browsing, the displayed history
// entry is left alone.
func (s *State) Clear() {
	s.buffer = ""
}

// Commit pushes the displayed entry to the front of the history, empties
// the live buffer and returns to live editing. It returns the committed text.
func (s *State) Commit() string {
	text := s.Entry()
	s.history = append(s.history, text)
	s.buffer = ""
	s.cursor = live()

	logging.Debug("console entry committed", "entry", text, "history_len", len(s.history))
	return text
}

// History yields confirmed entries from newest to oldest. The sequence is a
// snapshot of the history at call time and can be ranged over repeatedly.
func (s *State) History() iter.Seq[string] {
	return newestFirst(snapshot(s.history))
}

// HistoryDeduped is History with runs of equal adjacent entries collapsed.
func (s *State) HistoryDeduped() iter.Seq[string] {
	return Dedup(s.History())
}

// HistoryLen returns the number of confirmed entries, duplicates included.
func (s *State) HistoryLen() int {
	return len(s.history)
}

// ClearHistory drops every confirmed entry and returns to live editing.
func (s *State) ClearHistory() {
	logging.Debug("console history cleared", "history_len", len(s.history))
	s.history = nil
	s.cursor = live()
}

// Up moves towards older entries. It returns false when there is no older
// entry, in which case the cursor does not move.
func (s *State) Up() bool {
	next, moved := s.cursor.older(len(s.history))
	s.cursor = next
	return moved
}

// Down moves towards newer entries and finally back to the live buffer. It
// returns false when already editing the live buffer.
func (s *State) Down() bool {
	next, moved := s.cursor.newer()
	s.cursor = next
	return moved
}

// UpDeduped moves up past entries equal to the one displayed now. It
// returns true if the displayed text changed.
func (s *State) UpDeduped() bool {
	return s.skipWhileSame(s.Up)
}

// DownDeduped moves down past entries equal to the one displayed now. It
// returns true if the displayed text changed.
func (s *State) DownDeduped() bool {
	return s.skipWhileSame(s.Down)
}

// Browsing returns the browsed history position, 0 being the newest entry.
// ok is false while editing the live buffer.
func (s *State) Browsing() (index int, ok bool) {
	if s.cursor.isLive() {
		return 0, false
	}
	return s.cursor.index, true
}

// Shown reports the visibility flag. It has no effect on other methods.
func (s *State) Shown() bool {
	return s.shown
}

// Show sets the visibility flag.
func (s *State) Show() {
	s.shown = true
}

// Hide clears the visibility flag.
func (s *State) Hide() {
	s.shown = false
}

// ToggleShown flips the visibility flag.
func (s *State) ToggleShown() {
	s.shown = !s.shown
}

// fork copies the browsed entry into the live buffer and returns to live
// editing, so edits never touch confirmed history.
func (s *State) fork() {
	if s.cursor.isLive() {
		return
	}
	s.buffer = s.at(s.cursor.index)
	s.cursor = live()
}

// at returns the history entry at position n, 0 being the newest.
func (s *State) at(n int) string {
	return s.history[len(s.history)-1-n]
}

func (s *State) skipWhileSame(step func() bool) bool {
	start := s.Entry()
	for step() && s.Entry() == start {
	}
	return s.Entry() != start
}

var _ Console = (*State)(nil)
