package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noteSavedMsg:
		m.busy = false
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.editor.Blur()
			m.screen = screenDetail
			return m, m.cmdFlushEditor()
		case "ctrl+s":
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.cmdSaveNote()
		}
	}

	before := m.editor.Value()
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	if after := m.editor.Value(); after != before {
		m.services.Editor.Type(after)
	}
	return m, cmd
}

func (m mainLoopModel) viewEditor() string {
	note, _ := m.currentNote()

	state := okStyle.Render("saved")
	if m.services.Editor.Dirty() {
		state = warnStyle.Render("editing...")
	}

	var b strings.Builder
	b.WriteString(m.editor.View())
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s │ %d characters", state, len([]rune(m.editor.Value()))))

	return renderPage("EDIT: "+strings.ToUpper(fitText(noteTitle(note), 50)), b.String(),
		"ctrl+s: save now │ esc: done")
}

func (m mainLoopModel) cmdSaveNote() tea.Cmd {
	ctx := m.ctx
	editor := m.services.Editor

	return func() tea.Msg {
		return noteSavedMsg{err: editor.Save(ctx)}
	}
}

// cmdFlushEditor commits pending text when leaving the editor; the note
// stays open for the detail screen.
func (m mainLoopModel) cmdFlushEditor() tea.Cmd {
	ctx := m.ctx
	editor := m.services.Editor

	return func() tea.Msg {
		if err := editor.Flush(ctx); err != nil {
			return noteUpdatedMsg{err: err}
		}
		note, ok := editor.Note()
		if !ok {
			return noteUpdatedMsg{err: errNoNote}
		}
		return editorFlushedMsg{note: note}
	}
}
