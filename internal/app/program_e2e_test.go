//go:build e2e

package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/dbgcmd/internal/config"
	"github.com/renato0307/dbgcmd/internal/console"
	"github.com/renato0307/dbgcmd/internal/testutil"
)

func TestProgram_TypeRecallAndQuit(t *testing.T) {
	c := console.NewState()
	tp := testutil.NewTestProgram(t, NewModel(c, config.Default()), 80, 20)

	tp.Type("echo first")
	tp.SendKey(tea.KeyEnter)
	require.True(t, tp.WaitForOutput("first", time.Second))

	tp.SendKey(tea.KeyUp)
	require.True(t, tp.WaitForOutput("[1/1]", time.Second), "browse marker shown")

	tp.Type("x")
	tp.SendKey(tea.KeyEnter)
	require.True(t, tp.WaitForOutput("firstx", time.Second))

	tp.Type("quit")
	tp.SendKey(tea.KeyEnter)

	final, ok := tp.WaitForExit(2 * time.Second)
	require.True(t, ok, "program did not exit")
	assert.IsType(t, Model{}, final)
	assert.Equal(t, 3, c.HistoryLen())
}
