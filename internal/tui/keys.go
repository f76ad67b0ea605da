package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Help     key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	EditA    key.Binding
	EditB    key.Binding
	Compare  key.Binding
	WriteCSV key.Binding
	WritePDF key.Binding
	Down     key.Binding
	Up       key.Binding
	HalfDown key.Binding
	HalfUp   key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Yearly   key.Binding
	Select   key.Binding
	Cancel   key.Binding
}

var keys = keyMap{
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "Toggle help")),
	NextTab:  key.NewBinding(key.WithKeys("right", "tab"), key.WithHelp("→", "Next tab")),
	PrevTab:  key.NewBinding(key.WithKeys("left", "shift+tab"), key.WithHelp("←", "Previous tab")),
	EditA:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "Edit scenario A")),
	EditB:    key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "Edit scenario B")),
	Compare:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "Toggle comparison")),
	WriteCSV: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "Write CSV ledgers")),
	WritePDF: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "Write PDF report")),
	Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "Scroll down")),
	Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "Scroll up")),
	HalfDown: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("^d", "Half page down")),
	HalfUp:   key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("^u", "Half page up")),
	Top:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "First row")),
	Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "Last row")),
	Yearly:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "Monthly / yearly rows")),
	Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "Change setting")),
	Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "Cancel")),
}
