package commands

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/dbgcmd/internal/console"
)

// Name identifies a built-in command
type Name string

const (
	NameEcho         Name = "echo"
	NameHelp         Name = "help"
	NameHistory      Name = "history"
	NameClear        Name = "clear"
	NameClearHistory Name = "clear-history"
	NameCopy         Name = "copy"
	NameHide         Name = "hide"
	NameQuit         Name = "quit"
)

// Command is a parsed console line
type Command struct {
	Name Name
	Args string // Inline args, single-space separated
}

// UnmarshalText parses text against the default registry, so a Command can
// be confirmed straight from the console.
func (c *Command) UnmarshalText(text []byte) error {
	cmd, err := Default().Parse(string(text))
	if err != nil {
		return err
	}
	*c = cmd
	return nil
}

// String renders the command back as a console line
func (c Command) String() string {
	if c.Args == "" {
		return string(c.Name)
	}
	return string(c.Name) + " " + c.Args
}

// Context provides context for command execution
type Context struct {
	Console  console.Console // Console the command was confirmed on
	Registry *Registry       // Registry the command was found in
	Args     string          // Inline args string
}

// ParseArgs parses inline args string into a typed struct using reflection
// Usage: ctx.ParseArgs(&myArgsStruct)
func (ctx *Context) ParseArgs(dest any) error {
	return ParseInlineArgs(dest, ctx.Args)
}

// ExecuteFunc runs a command and returns a Bubble Tea command with its output.
// It is called from Update, so it may change the console directly; the
// returned tea.Cmd runs later and must not.
type ExecuteFunc func(ctx Context) tea.Cmd

// CopyFunc writes text to the clipboard and returns a status line
type CopyFunc func(text string) (string, error)

// ErrEmpty is returned for a blank line
var ErrEmpty = errors.New("empty command")

// UnknownCommandError is returned for a name the registry does not know
type UnknownCommandError struct {
	Name        string
	Suggestions []Name
}

func (e *UnknownCommandError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("unknown command %q", e.Name)
	}
	names := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		names[i] = string(s)
	}
	return fmt.Sprintf("unknown command %q, did you mean: %s", e.Name, strings.Join(names, ", "))
}

// ArityError is returned when a command gets the wrong number of arguments
type ArityError struct {
	Name  Name
	Usage string
	Got   int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: wrong number of arguments (%d), usage: %s", e.Name, e.Got, e.Usage)
}
