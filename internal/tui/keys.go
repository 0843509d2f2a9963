package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextPage     key.Binding
	PrevPage     key.Binding
	NextTab      key.Binding
	PrevTab      key.Binding
	NextPanel    key.Binding
	Search       key.Binding
	SearchDone   key.Binding
	SearchCancel key.Binding
	PageSize     key.Binding
	Filter       key.Binding
	Reload       key.Binding
	Quit         key.Binding
}

var DefaultKeyMap = KeyMap{
	NextPage: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "next page"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "prev page"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next screen"),
	),
	PrevTab: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev screen"),
	),
	NextPanel: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "next table"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SearchDone: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "keep search"),
	),
	SearchCancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
	PageSize: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "rows per page"),
	),
	Filter: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "filter"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k KeyMap) help() []key.Binding {
	return []key.Binding{k.NextTab, k.NextPanel, k.Search, k.PrevPage, k.NextPage, k.PageSize, k.Filter, k.Reload, k.Quit}
}
