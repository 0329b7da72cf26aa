package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Restart    key.Binding
	TabRestart key.Binding
	NextLesson key.Binding
	PrevLesson key.Binding
	CycleMode  key.Binding
	CycleValue key.Binding
	Finish     key.Binding
	Keyboard   key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Restart: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "restart"),
		),
		TabRestart: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab+enter", "restart"),
		),
		NextLesson: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "next lesson"),
		),
		PrevLesson: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "prev lesson"),
		),
		CycleMode: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "mode"),
		),
		CycleValue: key.NewBinding(
			key.WithKeys("ctrl+e"),
			key.WithHelp("ctrl+e", "length"),
		),
		Finish: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "finish"),
		),
		Keyboard: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "keyboard"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TabRestart, k.NextLesson, k.CycleMode, k.CycleValue, k.Finish, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TabRestart, k.Restart, k.Finish},
		{k.NextLesson, k.PrevLesson, k.CycleMode, k.CycleValue},
		{k.Keyboard, k.Quit},
	}
}

type resultKeyMap struct {
	Again key.Binding
	Next  key.Binding
	Quit  key.Binding
}

func defaultResultKeyMap() resultKeyMap {
	return resultKeyMap{
		Again: key.NewBinding(
			key.WithKeys("enter", "ctrl+r"),
			key.WithHelp("enter", "again"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next lesson"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k resultKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Again, k.Next, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k resultKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
