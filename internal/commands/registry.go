package commands

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/dbgcmd/internal/console"
)

// maxSuggestions caps the names offered for an unknown command
const maxSuggestions = 3

// Definition describes a command the registry accepts
type Definition struct {
	Name        Name        // Command name typed at the prompt
	Description string      // Human-readable description
	ArgsType    any         // Pointer to args struct (e.g., &HistoryArgs{}); nil takes no args
	Execute     ExecuteFunc // Execution function
}

// Usage renders the name and argument pattern, e.g. "history [count]"
func (d Definition) Usage() string {
	fields, _ := ArgFields(d.ArgsType)

	var b strings.Builder
	b.WriteString(string(d.Name))
	for _, f := range fields {
		name := f.Name
		if f.Rest {
			name += "..."
		}
		if f.Required {
			fmt.Fprintf(&b, " <%s>", name)
		} else {
			fmt.Fprintf(&b, " [%s]", name)
		}
	}
	return b.String()
}

// Registry holds the known commands
type Registry struct {
	defs []Definition
}

// NewRegistry creates a registry with the built-in commands. copyText backs
// the copy command.
func NewRegistry(copyText CopyFunc) *Registry {
	return &Registry{
		defs: []Definition{
			{
				Name:        NameEcho,
				Description: "Print the arguments",
				ArgsType:    &EchoArgs{},
				Execute:     EchoCommand(),
			},
			{
				Name:        NameHelp,
				Description: "List commands",
				Execute:     HelpCommand(),
			},
			{
				Name:        NameHistory,
				Description: "Show confirmed entries, newest first",
				ArgsType:    &HistoryArgs{},
				Execute:     HistoryCommand(),
			},
			{
				Name:        NameClear,
				Description: "Clear the output",
				Execute:     ClearCommand(),
			},
			{
				Name:        NameClearHistory,
				Description: "Forget all confirmed entries",
				Execute:     ClearHistoryCommand(),
			},
			{
				Name:        NameCopy,
				Description: "Copy the previous entry to the clipboard",
				Execute:     CopyCommand(copyText),
			},
			{
				Name:        NameHide,
				Description: "Hide the console",
				Execute:     HideCommand(),
			},
			{
				Name:        NameQuit,
				Description: "Exit",
				Execute:     QuitCommand(),
			},
		},
	}
}

var defaultRegistry = NewRegistry(CopyToClipboard)

// Default returns the registry used by Command.UnmarshalText
func Default() *Registry {
	return defaultRegistry
}

// All returns every definition in registration order
func (r *Registry) All() []Definition {
	return r.defs
}

// Get returns the definition for name, or nil
func (r *Registry) Get(name string) *Definition {
	for i := range r.defs {
		if string(r.defs[i].Name) == name {
			return &r.defs[i]
		}
	}
	return nil
}

// Parse splits text on whitespace, looks the name up and checks the args
// against the command's ArgsType.
func (r *Registry) Parse(text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, ErrEmpty
	}

	def := r.Get(fields[0])
	if def == nil {
		return Command{}, &UnknownCommandError{
			Name:        fields[0],
			Suggestions: r.Suggest(fields[0]),
		}
	}

	args := strings.Join(fields[1:], " ")
	if err := ParseInlineArgs(newArgs(def.ArgsType), args); err != nil {
		if errors.Is(err, ErrMissingArgument) || errors.Is(err, ErrTooManyArguments) {
			return Command{}, &ArityError{Name: def.Name, Usage: def.Usage(), Got: len(fields) - 1}
		}
		return Command{}, fmt.Errorf("%s: %w", def.Name, err)
	}

	return Command{Name: def.Name, Args: args}, nil
}

// Execute runs cmd on c. Unknown names return nil.
func (r *Registry) Execute(c console.Console, cmd Command) tea.Cmd {
	def := r.Get(string(cmd.Name))
	if def == nil || def.Execute == nil {
		return nil
	}
	return def.Execute(Context{Console: c, Registry: r, Args: cmd.Args})
}

// newArgs returns a fresh value of the type argsType points to, or nil
func newArgs(argsType any) any {
	if argsType == nil {
		return nil
	}
	typ := reflect.TypeOf(argsType)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return reflect.New(typ).Interface()
}

// Suggest returns up to three command names fuzzy-matching query, best first
func (r *Registry) Suggest(query string) []Name {
	names := make([]string, len(r.defs))
	for i, s := range r.defs {
		names[i] = string(s.Name)
	}

	matches := fuzzy.Find(query, names)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	result := make([]Name, len(matches))
	for i, m := range matches {
		result[i] = r.defs[m.Index].Name
	}
	return result
}
