package console

import "iter"

// Disabled is the console compiled into noconsole builds. It holds no
// state: mutators do nothing and queries return zero values.
type Disabled struct{}

func (Disabled) Enabled() bool                                { return false }
func (Disabled) Entry() string                                { return "" }
func (Disabled) SetEntry(string)                              {}
func (Disabled) ReceiveChar(rune)                             {}
func (Disabled) ReceiveText(string)                           {}
func (Disabled) ReceiveCharIf(rune, func(rune) bool) bool     { return false }
func (Disabled) ReceiveTextIf(string, func(string) bool) bool { return false }
func (Disabled) Backspace()                                   {}
func (Disabled) Clear()                                       {}
func (Disabled) History() iter.Seq[string]                    { return empty }
func (Disabled) HistoryDeduped() iter.Seq[string]             { return empty }
func (Disabled) HistoryLen() int                              { return 0 }
func (Disabled) ClearHistory()                                {}
func (Disabled) Up() bool                                     { return false }
func (Disabled) Down() bool                                   { return false }
func (Disabled) UpDeduped() bool                              { return false }
func (Disabled) DownDeduped() bool                            { return false }
func (Disabled) Browsing() (int, bool)                        { return 0, false }
func (Disabled) Shown() bool                                  { return false }
func (Disabled) Show()                                        {}
func (Disabled) Hide()                                        {}
func (Disabled) ToggleShown()                                 {}
func (Disabled) Commit() string                               { return "" }

var _ Console = Disabled{}
