package commands

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/dbgcmd/internal/console"
	"github.com/renato0307/dbgcmd/internal/messages"
	"github.com/renato0307/dbgcmd/internal/ui"
)

// confirmed returns a console whose history holds entries, newest last
func confirmed(entries ...string) *console.State {
	c := console.NewState()
	for _, e := range entries {
		c.SetEntry(e)
		c.Commit()
	}
	return c
}

func runCommand(t *testing.T, r *Registry, c console.Console, line string) tea.Msg {
	t.Helper()
	cmd, err := r.Parse(line)
	require.NoError(t, err)
	teaCmd := r.Execute(c, cmd)
	if teaCmd == nil {
		return nil
	}
	return teaCmd()
}

func TestBuiltins(t *testing.T) {
	tests := []struct {
		name    string
		history []string
		line    string
		want    tea.Msg
	}{
		{
			name: "echo joins args",
			line: "echo hello   world",
			want: messages.OutputMsg{Lines: []string{"hello world"}, Type: ui.MessageTypeInfo},
		},
		{
			name: "echo without args prints a blank line",
			line: "echo",
			want: messages.OutputMsg{Lines: []string{""}, Type: ui.MessageTypeInfo},
		},
		{
			name:    "history newest first with count",
			history: []string{"echo a", "echo b", "history 2"},
			line:    "history 2",
			want: messages.OutputMsg{
				Lines: []string{"  0  history 2", "  1  echo b"},
				Type:  ui.MessageTypeInfo,
			},
		},
		{
			name: "clear",
			line: "clear",
			want: messages.ClearOutputMsg{},
		},
		{
			name:    "clear-history reports count",
			history: []string{"echo a", "clear-history"},
			line:    "clear-history",
			want:    messages.OutputMsg{Lines: []string{"cleared 2 entries"}, Type: ui.MessageTypeSuccess},
		},
		{
			name:    "copy without previous entry",
			history: []string{"copy"},
			line:    "copy",
			want:    messages.OutputMsg{Lines: []string{"copy: no previous entry"}, Type: ui.MessageTypeError},
		},
		{
			name: "quit",
			line: "quit",
			want: tea.QuitMsg{},
		},
	}

	r := NewRegistry(func(string) (string, error) { return "", errors.New("unused") })
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := confirmed(tt.history...)
			assert.Equal(t, tt.want, runCommand(t, r, c, tt.line))
		})
	}
}

func TestClearHistoryCommand_EmptiesConsole(t *testing.T) {
	c := confirmed("echo a", "clear-history")

	runCommand(t, NewRegistry(CopyToClipboard), c, "clear-history")

	assert.Equal(t, 0, c.HistoryLen())
}

func TestHideCommand(t *testing.T) {
	c := confirmed("hide")
	c.Show()

	msg := runCommand(t, NewRegistry(CopyToClipboard), c, "hide")

	assert.Nil(t, msg)
	assert.False(t, c.Shown())
}

func TestHelpCommand(t *testing.T) {
	r := NewRegistry(CopyToClipboard)

	msg := runCommand(t, r, confirmed("help"), "help")

	out, ok := msg.(messages.OutputMsg)
	require.True(t, ok)
	require.Len(t, out.Lines, len(r.All()))
	assert.Contains(t, out.Lines[0], "echo [text...]")
	assert.Contains(t, out.Lines[0], "Print the arguments")
}

func TestCopyCommand(t *testing.T) {
	var copied string
	r := NewRegistry(func(text string) (string, error) {
		copied = text
		return "copied " + text, nil
	})

	msg := runCommand(t, r, confirmed("echo hi", "copy"), "copy")

	assert.Equal(t, "echo hi", copied)
	assert.Equal(t, messages.OutputMsg{Lines: []string{"copied echo hi"}, Type: ui.MessageTypeSuccess}, msg)

	failing := NewRegistry(func(string) (string, error) { return "", errors.New("no display") })
	msg = runCommand(t, failing, confirmed("echo hi", "copy"), "copy")
	assert.Equal(t, messages.OutputMsg{Lines: []string{"no display"}, Type: ui.MessageTypeError}, msg)
}

func TestRegistry_ExecuteUnknown(t *testing.T) {
	r := NewRegistry(CopyToClipboard)
	assert.Nil(t, r.Execute(console.NewState(), Command{Name: "nope"}))
}
