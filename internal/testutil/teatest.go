package testutil

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// settle is how long Send waits for the program to process a message
const settle = 20 * time.Millisecond

// TestProgram runs a Bubble Tea program with fake terminal I/O
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	done    chan tea.Model
	t       *testing.T
}

// syncBuffer guards the output written by the program goroutine
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// NewTestProgram starts model in the background with a window of the given size
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	p := tea.NewProgram(
		model,
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithoutSignals(),
	)

	tp := &TestProgram{
		program: p,
		output:  output,
		done:    make(chan tea.Model, 1),
		t:       t,
	}

	go func() {
		final, err := p.Run()
		if err != nil {
			t.Logf("program error: %v", err)
		}
		tp.done <- final
	}()
	t.Cleanup(func() {
		p.Kill()
	})

	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return tp
}

// Send delivers msg and waits briefly for it to be processed
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
	time.Sleep(settle)
}

// Type sends s one key at a time
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		if r == ' ' {
			tp.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		tp.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey sends a special key
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// Output returns everything the program rendered so far
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput polls until needle appears in the output or timeout expires
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(settle)
	}
	return false
}

// WaitForExit waits for the program to stop and returns its final model
func (tp *TestProgram) WaitForExit(timeout time.Duration) (tea.Model, bool) {
	tp.t.Helper()

	select {
	case m := <-tp.done:
		return m, true
	case <-time.After(timeout):
		return nil, false
	}
}
