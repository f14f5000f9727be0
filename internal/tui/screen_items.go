package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/youtube"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// openItems shows the timestamps or the tags panel of the open note.
func (m *mainLoopModel) openItems(s screen) {
	m.itemIdx = 0
	m.itemAdding = false
	m.itemFocus = 0
	if s == screenTimestamps {
		m.itemInputs = []textinput.Model{newInput("1:23 or 83", 12), newInput("label", 40)}
	} else {
		m.itemInputs = []textinput.Model{newInput("tag", 30)}
	}
	m.clearStatus()
	m.screen = s
}

func (m mainLoopModel) itemCount() int {
	note, ok := m.currentNote()
	if !ok {
		return 0
	}
	if m.screen == screenTimestamps {
		return len(note.Timestamps)
	}
	return len(note.Tags)
}

func (m mainLoopModel) updateTimestamps(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.updateItems(msg)
}

func (m mainLoopModel) updateTags(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.updateItems(msg)
}

func (m mainLoopModel) updateItems(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemChangedMsg:
		m.busy = false
		if msg.err == nil && m.itemAdding {
			m.itemAdding = false
			for i := range m.itemInputs {
				m.itemInputs[i].SetValue("")
				m.itemInputs[i].Blur()
			}
		}
		if n := m.itemCount(); m.itemIdx >= n {
			m.itemIdx = max(n-1, 0)
		}
		return m, nil
	case tea.KeyMsg:
		if m.itemAdding {
			return m.updateItemForm(msg)
		}
		return m.updateItemKeys(msg)
	}
	return m, nil
}

func (m mainLoopModel) updateItemKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.currentNote()
	if !ok {
		m.screen = screenList
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenDetail
	case key.Matches(msg, keys.up):
		if m.itemIdx > 0 {
			m.itemIdx--
		}
	case key.Matches(msg, keys.down):
		if m.itemIdx < m.itemCount()-1 {
			m.itemIdx++
		}
	case key.Matches(msg, keys.newItem):
		m.itemAdding = true
		m.itemFocus = 0
		m.itemInputs[0].Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		if m.busy || m.itemIdx >= m.itemCount() {
			return m, nil
		}
		m.busy = true
		if m.screen == screenTimestamps {
			return m, m.cmdRemoveTimestamp(note.Timestamps[m.itemIdx].ID)
		}
		return m, m.cmdRemoveTag(note.Tags[m.itemIdx])
	case key.Matches(msg, keys.copy), key.Matches(msg, keys.enter):
		if m.screen == screenTimestamps && m.itemIdx < len(note.Timestamps) {
			ts := note.Timestamps[m.itemIdx]
			m.copyToClipboard(youtube.WatchURLAt(note.VideoID, ts.Time), "Link to "+youtube.FormatOffset(ts.Time)+" copied")
		}
	}
	return m, nil
}

func (m mainLoopModel) updateItemForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.itemAdding = false
		for i := range m.itemInputs {
			m.itemInputs[i].Blur()
		}
		return m, nil
	case "tab", "down":
		m.itemFocus = focusNext(m.itemInputs, m.itemFocus)
		return m, nil
	case "shift+tab", "up":
		m.itemFocus = focusPrev(m.itemInputs, m.itemFocus)
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		if m.screen == screenTimestamps {
			seconds, err := youtube.ParseOffset(m.itemInputs[0].Value())
			if err != nil {
				m.setStatus(models.NotificationError, "Time must look like 1:23, 1:02:03 or 83")
				return m, nil
			}
			m.busy = true
			return m, m.cmdAddTimestamp(seconds, strings.TrimSpace(m.itemInputs[1].Value()))
		}
		tag := strings.TrimSpace(m.itemInputs[0].Value())
		if tag == "" {
			m.setStatus(models.NotificationError, "Tag is required")
			return m, nil
		}
		m.busy = true
		return m, m.cmdAddTag(tag)
	}

	var cmd tea.Cmd
	m.itemInputs[m.itemFocus], cmd = m.itemInputs[m.itemFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewTimestamps() string {
	note, _ := m.currentNote()
	var b strings.Builder

	if len(note.Timestamps) == 0 {
		b.WriteString("No timestamps yet.")
	}
	for i, ts := range note.Timestamps {
		line := fmt.Sprintf("%8s  %s", youtube.FormatOffset(ts.Time), orDash(ts.Label))
		if i == m.itemIdx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	if m.itemAdding {
		b.WriteString("\nTime  │ " + m.itemInputs[0].View() + "\n")
		b.WriteString("Label │ " + m.itemInputs[1].View() + "\n")
	}

	hint := "a: add │ d: delete │ c: copy link │ esc: back"
	if m.itemAdding {
		hint = "tab: next field │ enter: add │ esc: cancel"
	}
	return renderPage("TIMESTAMPS: "+strings.ToUpper(fitText(noteTitle(note), 40)), strings.TrimRight(b.String(), "\n"), hint)
}

func (m mainLoopModel) viewTags() string {
	note, _ := m.currentNote()
	var b strings.Builder

	if len(note.Tags) == 0 {
		b.WriteString("No tags yet.")
	}
	for i, tag := range note.Tags {
		if i == m.itemIdx {
			b.WriteString(selectedStyle.Render("> #" + tag))
		} else {
			b.WriteString("  #" + tag)
		}
		b.WriteString("\n")
	}
	if m.itemAdding {
		b.WriteString("\nTag │ " + m.itemInputs[0].View() + "\n")
	}

	hint := "a: add │ d: remove │ esc: back"
	if m.itemAdding {
		hint = "enter: add │ esc: cancel"
	}
	return renderPage("TAGS: "+strings.ToUpper(fitText(noteTitle(note), 40)), strings.TrimRight(b.String(), "\n"), hint)
}

func (m mainLoopModel) cmdAddTimestamp(seconds float64, label string) tea.Cmd {
	ctx := m.ctx
	editor := m.services.Editor
	return func() tea.Msg {
		return itemChangedMsg{err: editor.AddTimestamp(ctx, seconds, label)}
	}
}

func (m mainLoopModel) cmdRemoveTimestamp(id string) tea.Cmd {
	ctx := m.ctx
	editor := m.services.Editor
	return func() tea.Msg {
		return itemChangedMsg{err: editor.RemoveTimestamp(ctx, id)}
	}
}

func (m mainLoopModel) cmdAddTag(tag string) tea.Cmd {
	ctx := m.ctx
	editor := m.services.Editor
	return func() tea.Msg {
		return itemChangedMsg{err: editor.AddTag(ctx, tag)}
	}
}

func (m mainLoopModel) cmdRemoveTag(tag string) tea.Cmd {
	ctx := m.ctx
	editor := m.services.Editor
	return func() tea.Msg {
		return itemChangedMsg{err: editor.RemoveTag(ctx, tag)}
	}
}
