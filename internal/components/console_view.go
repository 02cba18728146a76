package components

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/renato0307/dbgcmd/internal/console"
	"github.com/renato0307/dbgcmd/internal/keyboard"
	"github.com/renato0307/dbgcmd/internal/ui"
)

// ConsoleView renders a console. It only reads from the console.
type ConsoleView struct {
	theme  *ui.Theme
	keys   *keyboard.Keys
	width  int
	height int
}

// NewConsoleView creates a view with the given theme and bindings
func NewConsoleView(theme *ui.Theme, keys *keyboard.Keys) *ConsoleView {
	return &ConsoleView{
		theme:  theme,
		keys:   keys,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// SetSize updates the area available to the view
func (v *ConsoleView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// View renders output, the prompt line, a suggestion and the recent
// history. A hidden console renders only the help line.
func (v *ConsoleView) View(c console.Console, out *OutputBuffer) string {
	help := v.theme.Hint.Render(v.helpLine())
	if !c.Shown() {
		return help
	}

	history := v.renderHistory(c)
	prompt := v.renderPrompt(c)
	hint := ""
	if s := Suggestion(c); s != "" {
		hint = v.theme.Hint.Render("  history: " + s)
	}

	outputRows := v.height - ReservedLines - lipgloss.Height(history)
	var lines []string
	for _, l := range out.Last(outputRows) {
		lines = append(lines, ui.RenderMessage(l.Text, l.Type, v.theme, v.width))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(lines, "\n"),
		prompt,
		hint,
		history,
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		v.theme.Frame.Width(v.width-2).Render(body),
		help,
	)
}

func (v *ConsoleView) renderPrompt(c console.Console) string {
	line := v.theme.Prompt.Render(promptSymbol) + v.theme.Entry.Render(c.Entry()+cursorBlock)
	if idx, ok := c.Browsing(); ok {
		marker := fmt.Sprintf(" [%d/%d]", idx+1, c.HistoryLen())
		line += v.theme.BrowseMarker.Render(marker)
	}
	return line
}

func (v *ConsoleView) renderHistory(c console.Console) string {
	entry := c.Entry()
	_, browsing := c.Browsing()

	var rows []string
	for e := range c.HistoryDeduped() {
		if len(rows) == MaxHistoryRows {
			break
		}
		style := v.theme.HistoryItem
		if browsing && e == entry {
			style = v.theme.HistoryMatch
		}
		rows = append(rows, style.Render("  "+e))
	}
	return strings.Join(rows, "\n")
}

func (v *ConsoleView) helpLine() string {
	var parts []string
	for _, b := range v.keys.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		parts = append(parts, helpText(b))
	}
	return strings.Join(parts, " • ")
}

func helpText(b key.Binding) string {
	return b.Help().Key + " " + b.Help().Desc
}

// Suggestion returns the best fuzzy match for the live entry among earlier
// entries other than the entry itself, or "" when browsing or when the entry
// is empty.
func Suggestion(c console.Console) string {
	if _, browsing := c.Browsing(); browsing {
		return ""
	}
	entry := c.Entry()
	if entry == "" {
		return ""
	}

	candidates := slices.Collect(c.HistoryDeduped())
	for _, m := range fuzzy.Find(entry, candidates) {
		if m.Str != entry {
			return m.Str
		}
	}
	return ""
}
