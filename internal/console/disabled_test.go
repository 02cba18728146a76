package console

import (
	"slices"
	"strconv"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestDisabled_IgnoresEverything(t *testing.T) {
	var c Console = Disabled{}

	c.Show()
	c.ReceiveChar('a')
	c.ReceiveText("bc")
	c.SetEntry("set")
	c.Backspace()
	assert.False(t, c.ReceiveCharIf('x', func(rune) bool { return true }))
	assert.False(t, c.ReceiveTextIf("xy", func(string) bool { return true }))
	c.ToggleShown()

	n, err := Confirm[int](c, strconv.Atoi)
	assert.Error(t, err, "the empty string is parsed")
	assert.Equal(t, 0, n)

	assert.False(t, c.Enabled())
	assert.Equal(t, "", c.Entry())
	assert.False(t, c.Shown())
	assert.Equal(t, 0, c.HistoryLen())
	assert.Empty(t, slices.Collect(c.History()))
	assert.Empty(t, slices.Collect(c.HistoryDeduped()))
	assert.False(t, c.Up())
	assert.False(t, c.Down())
	assert.False(t, c.UpDeduped())
	assert.False(t, c.DownDeduped())
	_, browsing := c.Browsing()
	assert.False(t, browsing)

	c.Clear()
	c.ClearHistory()
	c.Hide()
	assert.Equal(t, "", ConfirmString(c))
}

func TestDisabled_ZeroSize(t *testing.T) {
	assert.Zero(t, unsafe.Sizeof(Disabled{}))
}
