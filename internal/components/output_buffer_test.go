package components

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/renato0307/dbgcmd/internal/ui"
)

func TestOutputBuffer_Add(t *testing.T) {
	t.Run("basic add", func(t *testing.T) {
		buffer := NewOutputBuffer()
		line := OutputLine{
			Entry:     "echo hi",
			Text:      "hi",
			Type:      ui.MessageTypeInfo,
			Timestamp: time.Now(),
		}

		buffer.Add(line)

		assert.Equal(t, 1, buffer.Count())
		assert.Equal(t, []OutputLine{line}, buffer.Last(5))
	})

	t.Run("bounded - oldest removed when exceeding max", func(t *testing.T) {
		buffer := NewOutputBuffer()
		for i := 0; i <= MaxOutputLines; i++ {
			buffer.Add(OutputLine{Text: fmt.Sprintf("line %d", i)})
		}

		assert.Equal(t, MaxOutputLines, buffer.Count())
		last := buffer.Last(2)
		assert.Equal(t, fmt.Sprintf("line %d", MaxOutputLines-1), last[0].Text)
		assert.Equal(t, fmt.Sprintf("line %d", MaxOutputLines), last[1].Text)
	})
}

func TestOutputBuffer_Clear(t *testing.T) {
	buffer := NewOutputBuffer()
	buffer.Add(OutputLine{Text: "a"})
	buffer.Add(OutputLine{Text: "b"})

	buffer.Clear()

	assert.Equal(t, 0, buffer.Count())
	assert.Empty(t, buffer.Last(10))
}

func TestOutputBuffer_LastIsACopy(t *testing.T) {
	buffer := NewOutputBuffer()
	buffer.Add(OutputLine{Text: "a"})
	buffer.Add(OutputLine{Text: "b"})

	held := buffer.Last(2)
	buffer.Clear()
	buffer.Add(OutputLine{Text: "c"})

	assert.Equal(t, "a", held[0].Text)
	assert.Equal(t, "b", held[1].Text)

	held[0].Text = "changed"
	assert.Equal(t, "c", buffer.Last(1)[0].Text)
}
