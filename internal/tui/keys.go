package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down       key.Binding
	Prev, Next     key.Binding
	Toggle         key.Binding
	Add, Edit, Del key.Binding
	Filter         key.Binding
	Theme, Reload  key.Binding
	Help, Quit     key.Binding

	// form / edit mode
	Submit, Cancel, Assignee key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "done/undone")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Del:      key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Reload:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Assignee: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "assignee")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap for the table view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Toggle, k.Del, k.Filter, k.Theme, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Add, k.Edit, k.Toggle, k.Del},
		{k.Filter, k.Theme, k.Reload, k.Quit},
	}
}

// inputKeys is the help shown while the form or an edit row has focus.
type inputKeys struct{ k keyMap }

func (i inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{i.k.Submit, i.k.Assignee, i.k.Cancel}
}

func (i inputKeys) FullHelp() [][]key.Binding { return [][]key.Binding{i.ShortHelp()} }
