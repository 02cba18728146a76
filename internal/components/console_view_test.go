package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/dbgcmd/internal/console"
	"github.com/renato0307/dbgcmd/internal/keyboard"
	"github.com/renato0307/dbgcmd/internal/ui"
)

func newTestView() *ConsoleView {
	v := NewConsoleView(ui.GetTheme("charm"), keyboard.Default())
	v.SetSize(80, 20)
	return v
}

func confirmed(entries ...string) *console.State {
	c := console.NewState()
	for _, e := range entries {
		c.SetEntry(e)
		console.ConfirmString(c)
	}
	return c
}

func TestConsoleView_Hidden(t *testing.T) {
	c := confirmed("echo secret")
	c.SetEntry("typed")

	out := newTestView().View(c, NewOutputBuffer())

	assert.NotContains(t, out, "typed")
	assert.NotContains(t, out, "echo secret")
	assert.Contains(t, out, "enter run")
}

func TestConsoleView_ShowsEntryAndHistory(t *testing.T) {
	c := confirmed("help", "echo one", "echo one", "echo two")
	c.Show()
	c.ReceiveText("quit")

	buf := NewOutputBuffer()
	buf.Add(OutputLine{Entry: "echo two", Text: "two", Type: ui.MessageTypeInfo})

	out := newTestView().View(c, buf)

	assert.Contains(t, out, "> quit█")
	assert.Contains(t, out, "echo two")
	assert.Contains(t, out, "echo one")
	assert.Contains(t, out, "help")
	assert.Contains(t, out, "two")
	assert.NotContains(t, out, "[", "no browse marker while live")
}

func TestConsoleView_BrowseMarker(t *testing.T) {
	c := confirmed("a", "b", "c")
	c.Show()
	require.True(t, c.Up())
	require.True(t, c.Up())

	out := newTestView().View(c, NewOutputBuffer())

	assert.Contains(t, out, "> b█")
	assert.Contains(t, out, "[2/3]")
}

func TestConsoleView_DoesNotMutate(t *testing.T) {
	c := confirmed("a", "b")
	c.Show()
	require.True(t, c.Up())

	newTestView().View(c, NewOutputBuffer())

	idx, ok := c.Browsing()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 2, c.HistoryLen())
}

func TestSuggestion(t *testing.T) {
	tests := []struct {
		name   string
		setup  func() *console.State
		expect string
	}{
		{
			name: "fuzzy match on live entry",
			setup: func() *console.State {
				c := confirmed("history 5", "echo hello")
				c.SetEntry("ehl")
				return c
			},
			expect: "echo hello",
		},
		{
			name: "empty entry",
			setup: func() *console.State {
				return confirmed("echo hello")
			},
			expect: "",
		},
		{
			name: "exact match is not suggested",
			setup: func() *console.State {
				c := confirmed("echo hello")
				c.SetEntry("echo hello")
				return c
			},
			expect: "",
		},
		{
			name: "exact match skipped for a longer one",
			setup: func() *console.State {
				c := confirmed("echo one", "echo")
				c.SetEntry("echo")
				return c
			},
			expect: "echo one",
		},
		{
			name: "browsing",
			setup: func() *console.State {
				c := confirmed("echo hello")
				c.Up()
				return c
			},
			expect: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, Suggestion(tt.setup()))
		})
	}
}

func TestSuggestion_DisabledConsole(t *testing.T) {
	assert.Equal(t, "", Suggestion(console.Disabled{}))
}
