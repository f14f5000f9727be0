package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	left      key.Binding
	right     key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	quit      key.Binding
	logout    key.Binding
	newItem   key.Binding
	refresh   key.Binding
	search    key.Binding
	folders   key.Binding
	edit      key.Binding
	delete    key.Binding
	copy      key.Binding
	save      key.Binding
	flip      key.Binding
	correct   key.Binding
	incorrect key.Binding
	regen     key.Binding
	stats     key.Binding
	yes       key.Binding
	no        key.Binding

	timestamps key.Binding
	tags       key.Binding
	moveFolder key.Binding
	public     key.Binding
	flashcards key.Binding
	quiz       key.Binding
	explain    key.Binding
	summarize  key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	left:      key.NewBinding(key.WithKeys("left", "h")),
	right:     key.NewBinding(key.WithKeys("right", "l")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:    key.NewBinding(key.WithKeys("L")),
	newItem:   key.NewBinding(key.WithKeys("a")),
	refresh:   key.NewBinding(key.WithKeys("r")),
	search:    key.NewBinding(key.WithKeys("/")),
	folders:   key.NewBinding(key.WithKeys("f")),
	edit:      key.NewBinding(key.WithKeys("e")),
	delete:    key.NewBinding(key.WithKeys("d")),
	copy:      key.NewBinding(key.WithKeys("c")),
	save:      key.NewBinding(key.WithKeys("ctrl+s")),
	flip:      key.NewBinding(key.WithKeys(" ")),
	correct:   key.NewBinding(key.WithKeys("y")),
	incorrect: key.NewBinding(key.WithKeys("n")),
	regen:     key.NewBinding(key.WithKeys("R")),
	stats:     key.NewBinding(key.WithKeys("s")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n", "esc")),

	timestamps: key.NewBinding(key.WithKeys("t")),
	tags:       key.NewBinding(key.WithKeys("g")),
	moveFolder: key.NewBinding(key.WithKeys("m")),
	public:     key.NewBinding(key.WithKeys("p")),
	flashcards: key.NewBinding(key.WithKeys("F")),
	quiz:       key.NewBinding(key.WithKeys("Q")),
	explain:    key.NewBinding(key.WithKeys("x")),
	summarize:  key.NewBinding(key.WithKeys("u")),
}
