package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Search    key.Binding
	Category  key.Binding
	PrevCat   key.Binding
	Group     key.Binding
	PrevGroup key.Binding
	Clear     key.Binding
	Favorite  key.Binding
	Copy      key.Binding
	Retry     key.Binding
	Remove    key.Binding
	ClearAll  key.Binding
	Switch    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c/C", "category")),
		PrevCat:   key.NewBinding(key.WithKeys("C")),
		Group:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g/G", "group")),
		PrevGroup: key.NewBinding(key.WithKeys("G")),
		Clear:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Favorite:  key.NewBinding(key.WithKeys(" ", "f"), key.WithHelp("space", "favorite")),
		Copy:      key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter", "copy")),
		Retry:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Remove:    key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "remove")),
		ClearAll:  key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "clear all")),
		Switch:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch screen")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// catalogKeys and favoritesKeys implement help.KeyMap per screen.
type catalogKeys struct{ keyMap }

func (k catalogKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Category, k.Group, k.Clear, k.Favorite, k.Copy, k.Switch, k.Help, k.Quit}
}

func (k catalogKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Search, k.Category, k.Group, k.Clear},
		{k.Favorite, k.Copy, k.Retry},
		{k.Switch, k.Help, k.Quit},
	}
}

type favoritesKeys struct{ keyMap }

func (k favoritesKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Remove, k.ClearAll, k.Copy, k.Switch, k.Help, k.Quit}
}

func (k favoritesKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Remove, k.ClearAll, k.Copy},
		{k.Switch, k.Help, k.Quit},
	}
}
