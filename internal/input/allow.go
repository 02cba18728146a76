package input

import "strings"

// AllowList is the set of characters accepted from the keyboard.
type AllowList struct {
	chars string
}

// NewAllowList accepts exactly the runes in chars
func NewAllowList(chars string) AllowList {
	return AllowList{chars: chars}
}

// Accepts reports whether every rune of text is allowed. Empty text is
// rejected.
func (l AllowList) Accepts(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !strings.ContainsRune(l.chars, r) {
			return false
		}
	}
	return true
}
