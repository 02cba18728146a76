package commands

import (
	tea "github.com/charmbracelet/bubbletea"
)

// QuitCommand returns a command that quits the application
func QuitCommand() ExecuteFunc {
	return func(ctx Context) tea.Cmd {
		return tea.Quit
	}
}

// HideCommand returns a command that hides the console
func HideCommand() ExecuteFunc {
	return func(ctx Context) tea.Cmd {
		ctx.Console.Hide()
		return nil
	}
}
