package controller

import "github.com/charmbracelet/bubbles/key"

// editorKeyMap defines the editor key bindings.
type editorKeyMap struct {
	Up, Down, Left, Right  key.Binding
	Home, End              key.Binding
	PageUp, PageDown       key.Binding
	Enter, Backspace, Del  key.Binding
	Tab                    key.Binding
	New, Open, Save        key.Binding
	SaveAs                 key.Binding
	Compile                key.Binding
	Diff                   key.Binding
	Quit                   key.Binding
	Help                   key.Binding
}

func defaultEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),

		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Del:       key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),

		New:     key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
		Open:    key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
		Save:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		SaveAs:  key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "save as")),
		Compile: key.NewBinding(key.WithKeys("f5", "ctrl+b"), key.WithHelp("f5", "compile")),
		Diff:    key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "diff vs disk")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		Help:    key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "help")),
	}
}

// ShortHelp implements help.KeyMap.
func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Open, k.Compile, k.Quit, k.Help}
}

// FullHelp implements help.KeyMap.
func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.New, k.Open, k.Save, k.SaveAs},
		{k.Compile, k.Diff, k.Quit},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Home, k.End, k.PageUp, k.PageDown},
	}
}
