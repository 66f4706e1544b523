package cmd

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	RollDie   key.Binding
	Left      key.Binding
	Right     key.Binding
	Roll      key.Binding
	RollAll   key.Binding
	Clear     key.Binding
	History   key.Binding
	Settings  key.Binding
	Command   key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	Up     key.Binding
	Down   key.Binding
	Reset  key.Binding
	Yes    key.Binding
	No     key.Binding
	Back   key.Binding
	Close  key.Binding
	Scroll key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		RollDie: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "0"),
			key.WithHelp("1-0", "roll die"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "shift+tab"),
			key.WithHelp("←/→", "select"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "tab"),
		),
		Roll: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("space", "roll selected"),
		),
		RollAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "roll all"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear"),
		),
		History: key.NewBinding(
			key.WithKeys("h"),
			key.WithHelp("h", "history"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "choose setting"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset to defaults"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n", "cancel"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc", "enter", "h", "q"),
			key.WithHelp("esc", "close"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down"),
			key.WithHelp("↑/↓", "scroll"),
		),
	}
}

// diceHelp is the help.KeyMap of the dice screen.
type diceHelp keyMap

func (k diceHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.RollDie, k.Roll, k.RollAll, k.Clear, k.History, k.Settings, k.Command, k.Quit}
}

func (k diceHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.RollDie, k.Left, k.Roll},
		{k.RollAll, k.Clear, k.History},
		{k.Settings, k.Command, k.Quit},
	}
}

// settingsHelp is the help.KeyMap of the settings screen.
type settingsHelp keyMap

func (k settingsHelp) ShortHelp() []key.Binding {
	left := k.Left
	left.SetHelp("←/→", "change")
	return []key.Binding{k.Up, left, k.Reset, k.Back}
}

func (k settingsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// confirmHelp is shown while a reset waits for confirmation.
type confirmHelp keyMap

func (k confirmHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

func (k confirmHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// dialogHelp is shown while the history dialog is open.
type dialogHelp keyMap

func (k dialogHelp) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Close}
}

func (k dialogHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
