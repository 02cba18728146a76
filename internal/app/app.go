package app

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/dbgcmd/internal/commands"
	"github.com/renato0307/dbgcmd/internal/components"
	"github.com/renato0307/dbgcmd/internal/config"
	"github.com/renato0307/dbgcmd/internal/console"
	"github.com/renato0307/dbgcmd/internal/input"
	"github.com/renato0307/dbgcmd/internal/keyboard"
	"github.com/renato0307/dbgcmd/internal/logging"
	"github.com/renato0307/dbgcmd/internal/messages"
	"github.com/renato0307/dbgcmd/internal/ui"
)

// Model is the Bubble Tea model hosting one console
type Model struct {
	console  console.Console
	adapter  *input.Adapter
	view     *components.ConsoleView
	output   *components.OutputBuffer
	registry *commands.Registry
	quitting bool
}

// NewModel wires c to key handling and rendering as configured by cfg
func NewModel(c console.Console, cfg config.Config) Model {
	keys := keyboard.FromConfig(cfg.Keys)
	if cfg.StartShown {
		c.Show()
	}

	return Model{
		console:  c,
		adapter:  input.NewAdapter(c, keys, input.NewAllowList(cfg.AllowedChars)),
		view:     components.NewConsoleView(ui.GetTheme(cfg.Theme), keys),
		output:   components.NewOutputBuffer(),
		registry: commands.Default(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch m.adapter.Handle(msg) {
		case input.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case input.ActionConfirm:
			return m.confirm()
		}

	case messages.OutputMsg:
		for _, line := range msg.Lines {
			m.print(msg.Entry, line, msg.Type)
		}

	case messages.ClearOutputMsg:
		m.output.Clear()
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.view.View(m.console, m.output)
}

// confirm parses the displayed entry, commits it and runs the command.
// A blank line is discarded without touching history.
func (m Model) confirm() (tea.Model, tea.Cmd) {
	entry := m.console.Entry()
	if strings.TrimSpace(entry) == "" {
		m.console.SetEntry("")
		return m, nil
	}

	cmd, err := console.ConfirmText[commands.Command](m.console)
	if err != nil {
		logging.Warn("command rejected", "entry", entry, "error", err)
		return m, messages.WithEntry(messages.ErrorCmd("%v", err), entry)
	}

	logging.Info("command confirmed", "command", cmd.String())
	m.quitting = cmd.Name == commands.NameQuit
	next := logging.TimeWithResult("execute "+string(cmd.Name), func() tea.Cmd {
		return m.registry.Execute(m.console, cmd)
	})
	return m, messages.WithEntry(next, entry)
}

func (m *Model) print(entry, text string, msgType ui.MessageType) {
	m.output.Add(components.OutputLine{
		Entry:     entry,
		Text:      text,
		Type:      msgType,
		Timestamp: time.Now(),
	})
}
