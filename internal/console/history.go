package console

import (
	"iter"
	"slices"
)

// snapshot copies the stored history so later confirms do not show up in a
// sequence handed out earlier.
func snapshot(entries []string) []string {
	return slices.Clone(entries)
}

// newestFirst walks oldest-first storage backwards.
func newestFirst(entries []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := len(entries) - 1; i >= 0; i-- {
			if !yield(entries[i]) {
				return
			}
		}
	}
}

// Dedup yields the values of seq, skipping any value equal to the one
// yielded just before it. Equal values separated by a different one are
// all kept.
func Dedup(seq iter.Seq[string]) iter.Seq[string] {
	return func(yield func(string) bool) {
		first := true
		var prev string
		for v := range seq {
			if !first && v == prev {
				continue
			}
			first = false
			prev = v
			if !yield(v) {
				return
			}
		}
	}
}

func empty(yield func(string) bool) {}
