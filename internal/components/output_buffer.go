package components

import (
	"slices"
	"time"

	"github.com/renato0307/dbgcmd/internal/ui"
)

// OutputLine is one line printed in response to a confirmed entry
type OutputLine struct {
	Entry     string // Confirmed text that produced the line
	Text      string
	Type      ui.MessageType
	Timestamp time.Time
}

// OutputBuffer keeps the most recent output lines
type OutputBuffer struct {
	lines []OutputLine
}

// NewOutputBuffer creates an empty output buffer
func NewOutputBuffer() *OutputBuffer {
	return &OutputBuffer{
		lines: make([]OutputLine, 0, MaxOutputLines),
	}
}

// Add appends line, dropping the oldest once full
func (b *OutputBuffer) Add(line OutputLine) {
	b.lines = append(b.lines, line)
	if len(b.lines) > MaxOutputLines {
		b.lines = b.lines[len(b.lines)-MaxOutputLines:]
	}
}

// Last returns a copy of up to n lines, oldest first, ending with the newest
func (b *OutputBuffer) Last(n int) []OutputLine {
	if n <= 0 {
		return nil
	}
	if n >= len(b.lines) {
		return slices.Clone(b.lines)
	}
	return slices.Clone(b.lines[len(b.lines)-n:])
}

// Clear removes all lines
func (b *OutputBuffer) Clear() {
	b.lines = b.lines[:0]
}

// Count returns the number of lines held
func (b *OutputBuffer) Count() int {
	return len(b.lines)
}
