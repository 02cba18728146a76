package console

// cursorMode tells whether the console shows the live buffer or a history entry.
type cursorMode int

const (
	modeLive cursorMode = iota
	modeBrowsing
)

// cursor is the browsing position. index is only meaningful in modeBrowsing,
// where 0 is the newest history entry.
type cursor struct {
	mode  cursorMode
	index int
}

func live() cursor {
	return cursor{mode: modeLive}
}

func browsing(index int) cursor {
	return cursor{mode: modeBrowsing, index: index}
}

func (c cursor) isLive() bool {
	return c.mode == modeLive
}

// older returns the cursor one step back in a history of length n and
// whether it moved. It clamps at the oldest entry.
func (c cursor) older(n int) (cursor, bool) {
	switch {
	case c.isLive() && n > 0:
		return browsing(0), true
	case !c.isLive() && c.index+1 < n:
		return browsing(c.index + 1), true
	default:
		return c, false
	}
}

// newer returns the cursor one step towards the live buffer and whether it
// moved. Stepping down from the newest entry lands on the live buffer.
func (c cursor) newer() (cursor, bool) {
	switch {
	case c.isLive():
		return c, false
	case c.index > 0:
		return browsing(c.index - 1), true
	default:
		return live(), true
	}
}
