package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	titleColWidth  = 36
	folderColWidth = 14
)

func (m mainLoopModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noteDeletedMsg:
		m.busy = false
		if msg.err == nil {
			m.setStatus(models.NotificationInfo, "Note deleted")
		}
		m.clampIndex()
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.confirmDelete {
			return m.updateConfirmDelete(msg)
		}
		return m.updateListKeys(msg)
	}
	return m, nil
}

func (m mainLoopModel) updateListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notes := m.services.NoteService.FilteredNotes()

	switch {
	case key.Matches(msg, keys.quit):
		return m, m.cmdQuit()
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(notes)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(notes) == 0 {
			m.setStatus(models.NotificationInfo, "No notes")
			return m, nil
		}
		m.services.NoteService.SetCurrentNote(notes[m.idx].ID)
		m.clearStatus()
		m.screen = screenDetail
	case key.Matches(msg, keys.newItem):
		m.startNewNote()
		return m, textinput.Blink
	case key.Matches(msg, keys.search):
		m.searching = true
		m.searchInput.SetValue(m.services.NoteService.SearchQuery())
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.folders):
		m.openFolders(false)
	case key.Matches(msg, keys.delete):
		if len(notes) == 0 {
			return m, nil
		}
		m.confirmDelete = true
	case key.Matches(msg, keys.refresh):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdRefresh()
	case key.Matches(msg, keys.stats):
		m.screen = screenStats
		m.busy = true
		return m, m.cmdLoadStats()
	case key.Matches(msg, keys.logout):
		m.logout = true
		return m, m.cmdQuit()
	case key.Matches(msg, keys.esc):
		// esc clears the active filters
		m.services.NoteService.SetSearchQuery("")
		m.services.NoteService.SetSelectedFolder("")
		m.idx = 0
	}
	return m, nil
}

func (m mainLoopModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.searchInput.Blur()
		m.idx = 0
		return m, nil
	case "esc":
		m.searching = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.services.NoteService.SetSearchQuery("")
		m.idx = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	// filter as you type
	m.services.NoteService.SetSearchQuery(m.searchInput.Value())
	m.idx = 0
	return m, cmd
}

func (m mainLoopModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.confirmDelete = false
	if !key.Matches(msg, keys.yes) {
		return m, nil
	}

	notes := m.services.NoteService.FilteredNotes()
	if m.idx >= len(notes) {
		return m, nil
	}
	m.busy = true
	return m, m.cmdDeleteNote(notes[m.idx].ID)
}

func (m mainLoopModel) viewList() string {
	svc := m.services.NoteService
	var b strings.Builder

	if filters := m.filterLine(); filters != "" {
		b.WriteString(helpStyle.Render(filters))
		b.WriteString("\n\n")
	}
	if m.searching {
		b.WriteString(m.searchInput.View())
		b.WriteString("\n\n")
	}

	notes := svc.FilteredNotes()
	switch {
	case svc.IsLoading():
		b.WriteString(m.spinner.View())
		b.WriteString(" loading notes...")
	case len(notes) == 0 && len(svc.Notes()) == 0:
		b.WriteString("No notes yet. Press a to add a video.")
	case len(notes) == 0:
		b.WriteString("No notes match the current filters.")
	default:
		b.WriteString(fmt.Sprintf("  %-*s │ %-*s │ %s\n", titleColWidth, "Title", folderColWidth, "Folder", "Updated"))
		b.WriteString("  " + strings.Repeat("─", titleColWidth) + "─┼─" + strings.Repeat("─", folderColWidth) + "─┼─" + strings.Repeat("─", 16) + "\n")
		for i, note := range notes {
			line := fmt.Sprintf("%s │ %s │ %s",
				padRight(fitText(noteTitle(note), titleColWidth), titleColWidth),
				padRight(fitText(m.folderName(note.FolderID), folderColWidth), folderColWidth),
				note.UpdatedAt.Local().Format("2006-01-02 15:04"))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.confirmDelete {
		if note, ok := m.selectedNote(); ok {
			b.WriteString("\n")
			b.WriteString(warnStyle.Render(fmt.Sprintf("Delete %q? y: yes │ n: no", fitText(noteTitle(note), 40))))
		}
	}

	title := fmt.Sprintf("NOTES (%s)", m.session.Login)
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"enter: open │ a: add │ /: search │ f: folders │ d: delete │ r: refresh │ s: stats │ esc: clear filters │ L: logout │ q: quit")
}

func (m mainLoopModel) filterLine() string {
	svc := m.services.NoteService
	var parts []string
	if id := svc.SelectedFolder(); id != "" {
		parts = append(parts, "folder: "+m.folderName(&id))
	}
	if q := svc.SearchQuery(); q != "" && !m.searching {
		parts = append(parts, fmt.Sprintf("search: %q", q))
	}
	return strings.Join(parts, " │ ")
}

func (m mainLoopModel) selectedNote() (models.Note, bool) {
	notes := m.services.NoteService.FilteredNotes()
	if m.idx < 0 || m.idx >= len(notes) {
		return models.Note{}, false
	}
	return notes[m.idx], true
}

func (m mainLoopModel) folderName(id *string) string {
	if id == nil || *id == "" {
		return "-"
	}
	for _, f := range m.services.NoteService.Folders() {
		if f.ID == *id {
			return f.Name
		}
	}
	return "-"
}

func noteTitle(note models.Note) string {
	if strings.TrimSpace(note.VideoTitle) != "" {
		return note.VideoTitle
	}
	return note.VideoID
}

func (m mainLoopModel) cmdDeleteNote(id string) tea.Cmd {
	ctx := m.ctx
	notes := m.services.NoteService
	editor := m.services.Editor

	return func() tea.Msg {
		if open, ok := editor.Note(); ok && open.ID == id {
			editor.Close()
		}
		return noteDeletedMsg{err: notes.RemoveNote(ctx, id)}
	}
}
