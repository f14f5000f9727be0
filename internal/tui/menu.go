package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type menuEntry struct {
	label string
	hint  string
	page  string
}

// MenuModel is the welcome page shown while no session exists.
type MenuModel struct {
	entries []menuEntry
	idx     int
}

func NewMenuModel() *MenuModel {
	return &MenuModel{entries: []menuEntry{
		{label: "Log in", hint: "continue with your notes", page: pageLogin},
		{label: "Register", hint: "create an account", page: pageRegister},
	}}
}

func (m *MenuModel) Init() tea.Cmd { return nil }

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(km, keys.up):
		m.idx = (m.idx - 1 + len(m.entries)) % len(m.entries)
	case key.Matches(km, keys.down), key.Matches(km, keys.tab):
		m.idx = (m.idx + 1) % len(m.entries)
	case key.Matches(km, keys.enter):
		page := m.entries[m.idx].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}
	return m, nil
}

func (m *MenuModel) View() string {
	width := 0
	for _, e := range m.entries {
		width = max(width, len(e.label))
	}

	var b strings.Builder
	b.WriteString("Take notes on YouTube videos and study them.\n\n")
	for i, e := range m.entries {
		line := padRight(e.label, width) + "  " + helpStyle.Render(e.hint)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteByte('\n')
	}

	return renderPage("VIDEO NOTES", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ v: about │ ctrl+c: quit")
}
