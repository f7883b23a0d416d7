package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	save    key.Binding
	reload  key.Binding
	refresh key.Binding
	delete  key.Binding
	copyID  key.Binding
	copyURL key.Binding
	toggle  key.Binding
	reply   key.Binding
	filter  key.Binding
	info    key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c")),
	save:    key.NewBinding(key.WithKeys("ctrl+s")),
	reload:  key.NewBinding(key.WithKeys("ctrl+r")),
	refresh: key.NewBinding(key.WithKeys("r")),
	delete:  key.NewBinding(key.WithKeys("d", "ctrl+d")),
	copyID:  key.NewBinding(key.WithKeys("c")),
	copyURL: key.NewBinding(key.WithKeys("u")),
	toggle:  key.NewBinding(key.WithKeys("t")),
	reply:   key.NewBinding(key.WithKeys("a")),
	filter:  key.NewBinding(key.WithKeys("f")),
	info:    key.NewBinding(key.WithKeys("v")),
	yes:     key.NewBinding(key.WithKeys("y", "o")),
	no:      key.NewBinding(key.WithKeys("n", "esc")),
}
