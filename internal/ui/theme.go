package ui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors and styles of the console
type Theme struct {
	Name string

	// Core colors
	Primary    lipgloss.AdaptiveColor
	Secondary  lipgloss.AdaptiveColor
	Accent     lipgloss.AdaptiveColor
	Foreground lipgloss.AdaptiveColor
	Muted      lipgloss.AdaptiveColor
	Error      lipgloss.AdaptiveColor
	Success    lipgloss.AdaptiveColor

	Border lipgloss.AdaptiveColor // Console frame
	Dimmed lipgloss.AdaptiveColor // Hints and suggestions

	// Component styles
	Frame        lipgloss.Style
	Prompt       lipgloss.Style
	Entry        lipgloss.Style
	BrowseMarker lipgloss.Style // [n/len] shown while browsing history
	HistoryItem  lipgloss.Style
	HistoryMatch lipgloss.Style // History item equal to the displayed entry
	Hint         lipgloss.Style
}

// palette is the set of colors a theme is built from
type palette struct {
	primary, secondary, accent  lipgloss.AdaptiveColor
	foreground, muted, border   lipgloss.AdaptiveColor
	errorColor, success, dimmed lipgloss.AdaptiveColor
}

func newTheme(name string, p palette) *Theme {
	t := &Theme{
		Name:       name,
		Primary:    p.primary,
		Secondary:  p.secondary,
		Accent:     p.accent,
		Foreground: p.foreground,
		Muted:      p.muted,
		Error:      p.errorColor,
		Success:    p.success,
		Border:     p.border,
		Dimmed:     p.dimmed,
	}

	t.Frame = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		BorderTop(true).
		PaddingLeft(1).
		PaddingRight(1)

	t.Prompt = lipgloss.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.Entry = lipgloss.NewStyle().
		Foreground(t.Foreground)

	t.BrowseMarker = lipgloss.NewStyle().
		Foreground(t.Accent)

	t.HistoryItem = lipgloss.NewStyle().
		Foreground(t.Muted)

	t.HistoryMatch = lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	t.Hint = lipgloss.NewStyle().
		Foreground(t.Dimmed).
		Italic(true)

	return t
}

// ThemeCharm returns the default Charm theme
func ThemeCharm() *Theme {
	return newTheme("charm", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"},
		secondary:  lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		accent:     lipgloss.AdaptiveColor{Light: "#F780E2", Dark: "#F780E2"},
		foreground: lipgloss.AdaptiveColor{Light: "235", Dark: "252"},
		muted:      lipgloss.AdaptiveColor{Light: "243", Dark: "243"},
		errorColor: lipgloss.AdaptiveColor{Light: "#FF4672", Dark: "#ED567A"},
		success:    lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"},
		border:     lipgloss.AdaptiveColor{Light: "240", Dark: "240"},
		dimmed:     lipgloss.AdaptiveColor{Light: "243", Dark: "243"},
	})
}

// ThemeDracula returns a Dracula-inspired theme
func ThemeDracula() *Theme {
	return newTheme("dracula", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#bd93f9", Dark: "#bd93f9"},
		secondary:  lipgloss.AdaptiveColor{Light: "#8be9fd", Dark: "#8be9fd"},
		accent:     lipgloss.AdaptiveColor{Light: "#ff79c6", Dark: "#ff79c6"},
		foreground: lipgloss.AdaptiveColor{Light: "#282a36", Dark: "#f8f8f2"},
		muted:      lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"},
		errorColor: lipgloss.AdaptiveColor{Light: "#ff5555", Dark: "#ff5555"},
		success:    lipgloss.AdaptiveColor{Light: "#50fa7b", Dark: "#50fa7b"},
		border:     lipgloss.AdaptiveColor{Light: "#44475a", Dark: "#44475a"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#6272a4", Dark: "#6272a4"},
	})
}

// ThemeNord returns a Nord-inspired theme
func ThemeNord() *Theme {
	return newTheme("nord", palette{
		primary:    lipgloss.AdaptiveColor{Light: "#5e81ac", Dark: "#88c0d0"},
		secondary:  lipgloss.AdaptiveColor{Light: "#81a1c1", Dark: "#81a1c1"},
		accent:     lipgloss.AdaptiveColor{Light: "#b48ead", Dark: "#b48ead"},
		foreground: lipgloss.AdaptiveColor{Light: "#2e3440", Dark: "#eceff4"},
		muted:      lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"},
		errorColor: lipgloss.AdaptiveColor{Light: "#bf616a", Dark: "#bf616a"},
		success:    lipgloss.AdaptiveColor{Light: "#a3be8c", Dark: "#a3be8c"},
		border:     lipgloss.AdaptiveColor{Light: "#d8dee9", Dark: "#3b4252"},
		dimmed:     lipgloss.AdaptiveColor{Light: "#4c566a", Dark: "#4c566a"},
	})
}

var themes = map[string]func() *Theme{
	"charm":   ThemeCharm,
	"dracula": ThemeDracula,
	"nord":    ThemeNord,
}

// GetTheme returns the named theme, falling back to charm
func GetTheme(name string) *Theme {
	if fn, ok := themes[name]; ok {
		return fn()
	}
	return ThemeCharm()
}

// AvailableThemes returns the theme names in alphabetical order
func AvailableThemes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
