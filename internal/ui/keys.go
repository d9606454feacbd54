package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Home     key.Binding
	End      key.Binding
	StepUp   key.Binding
	StepDown key.Binding
	Todo     key.Binding
	Done     key.Binding
	Archive  key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "line up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "line down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Home:     key.NewBinding(key.WithKeys("home", "0"), key.WithHelp("0", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "$"), key.WithHelp("$", "line end")),
		StepUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increment")),
		StepDown: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "decrement")),
		Todo:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "mark TODO")),
		Done:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "mark DONE")),
		Archive:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "archive")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StepUp, k.StepDown, k.Todo, k.Done, k.Archive, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Home, k.End},
		{k.StepUp, k.StepDown, k.Todo, k.Done, k.Archive},
		{k.Reload, k.Help, k.Quit},
	}
}
