package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the learning TUI.
type KeyMap struct {
	NextPage key.Binding
	PrevPage key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Advance  key.Binding
	Retreat  key.Binding
	Reset    key.Binding
	Select   key.Binding
	Digits   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap is the vim-flavored default set of keybindings.
var DefaultKeyMap = KeyMap{
	NextPage: key.NewBinding(
		key.WithKeys("tab", "]"),
		key.WithHelp("tab/]", "next section"),
	),
	PrevPage: key.NewBinding(
		key.WithKeys("shift+tab", "["),
		key.WithHelp("S-tab/[", "previous section"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous / decrease"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next / increase"),
	),
	Advance: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "next step"),
	),
	Retreat: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "previous step"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset steps"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "select / check"),
	),
	Digits: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6"),
		key.WithHelp("1-6", "jump to section / assign rank"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}

// ArrowKeyMap is the arrows preset: movement is bound to the arrow
// keys only.
var ArrowKeyMap = func() KeyMap {
	km := DefaultKeyMap
	km.Up = key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up"))
	km.Down = key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down"))
	km.Left = key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous / decrease"))
	km.Right = key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next / increase"))
	return km
}()

// KeyMapForPreset resolves a configured preset name.
func KeyMapForPreset(preset string) KeyMap {
	if preset == "arrows" {
		return ArrowKeyMap
	}
	return DefaultKeyMap
}

// ShortHelp returns keybindings to be shown in the compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextPage, k.PrevPage, k.Digits},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Advance, k.Retreat, k.Reset},
		{k.Select, k.Help, k.Quit},
	}
}
