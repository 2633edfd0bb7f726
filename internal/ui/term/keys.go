package term

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle     key.Binding
	RoundsUp   key.Binding
	RoundsDown key.Binding
	WorkUp     key.Binding
	WorkDown   key.Binding
	RestUp     key.Binding
	RestDown   key.Binding
	Mute       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:     key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s/space", "start/stop")),
		RoundsUp:   key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "more rounds")),
		RoundsDown: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "fewer rounds")),
		WorkUp:     key.NewBinding(key.WithKeys("W"), key.WithHelp("W", "work +5s")),
		WorkDown:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "work -5s")),
		RestUp:     key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "rest +5s")),
		RestDown:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "rest -5s")),
		Mute:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (keys keyMap) ShortHelp() []key.Binding {
	return []key.Binding{keys.Toggle, keys.Help, keys.Quit}
}

func (keys keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Toggle, keys.Mute},
		{keys.RoundsUp, keys.RoundsDown},
		{keys.WorkUp, keys.WorkDown},
		{keys.RestUp, keys.RestDown},
		{keys.Help, keys.Quit},
	}
}

// setEditable enables the settings keys only while idle.
func (keys *keyMap) setEditable(editable bool) {
	for _, binding := range []*key.Binding{
		&keys.RoundsUp, &keys.RoundsDown,
		&keys.WorkUp, &keys.WorkDown,
		&keys.RestUp, &keys.RestDown,
	} {
		binding.SetEnabled(editable)
	}
}
