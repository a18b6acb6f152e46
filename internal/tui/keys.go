package tui

import "github.com/charmbracelet/bubbles/key"

// Key bindings are split in two groups: list screens have no text input so
// they use plain letters, while the conversation screen keeps the compose
// input focused and reserves only arrows and ctrl-chords for itself.
type keyMap struct {
	up      key.Binding
	down    key.Binding
	arrowUp key.Binding
	arrowDn key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	hardKey key.Binding
	logout  key.Binding
	refresh key.Binding
	reload  key.Binding
	copy    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	arrowUp: key.NewBinding(key.WithKeys("up")),
	arrowDn: key.NewBinding(key.WithKeys("down")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	hardKey: key.NewBinding(key.WithKeys("ctrl+c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	refresh: key.NewBinding(key.WithKeys("r")),
	reload:  key.NewBinding(key.WithKeys("ctrl+r")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y")),
}
