package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// openFolders shows the folder list. With assign set the choice moves the
// active note; otherwise it filters the note list. Row 0 is "no folder".
func (m *mainLoopModel) openFolders(assign bool) {
	m.folderAssign = assign
	m.folderCreating = false
	m.folderConfirmDelete = false
	m.folderIdx = 0

	current := m.services.NoteService.SelectedFolder()
	if assign {
		if note, ok := m.currentNote(); ok && note.FolderID != nil {
			current = *note.FolderID
		} else {
			current = ""
		}
	}
	for i, f := range m.services.NoteService.Folders() {
		if f.ID == current {
			m.folderIdx = i + 1
		}
	}

	m.clearStatus()
	m.screen = screenFolders
}

func (m mainLoopModel) foldersBack() screen {
	if m.folderAssign {
		return screenDetail
	}
	return screenList
}

func (m mainLoopModel) updateFolders(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case folderCreatedMsg:
		m.busy = false
		if msg.err == nil {
			m.folderCreating = false
			m.folderInput.Blur()
			m.folderInput.SetValue("")
		}
		return m, nil
	case folderDeletedMsg:
		m.busy = false
		if m.folderIdx > len(m.services.NoteService.Folders()) {
			m.folderIdx = len(m.services.NoteService.Folders())
		}
		return m, nil
	case noteUpdatedMsg:
		m.busy = false
		if msg.err == nil {
			m.reopenEditor(msg.note)
			m.setStatus(models.NotificationInfo, "Note moved")
			m.screen = screenDetail
		}
		return m, nil
	case tea.KeyMsg:
		if m.folderCreating {
			return m.updateFolderInput(msg)
		}
		if m.folderConfirmDelete {
			m.folderConfirmDelete = false
			if key.Matches(msg, keys.yes) && m.folderIdx > 0 {
				folder := m.services.NoteService.Folders()[m.folderIdx-1]
				m.busy = true
				return m, m.cmdDeleteFolder(folder.ID)
			}
			return m, nil
		}
		return m.updateFolderKeys(msg)
	}
	return m, nil
}

func (m mainLoopModel) updateFolderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	folders := m.services.NoteService.Folders()

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = m.foldersBack()
	case key.Matches(msg, keys.up):
		if m.folderIdx > 0 {
			m.folderIdx--
		}
	case key.Matches(msg, keys.down):
		if m.folderIdx < len(folders) {
			m.folderIdx++
		}
	case key.Matches(msg, keys.newItem):
		m.folderCreating = true
		m.folderInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.delete):
		if m.folderIdx > 0 {
			m.folderConfirmDelete = true
		}
	case key.Matches(msg, keys.enter):
		var folderID string
		if m.folderIdx > 0 && m.folderIdx <= len(folders) {
			folderID = folders[m.folderIdx-1].ID
		}
		if !m.folderAssign {
			m.services.NoteService.SetSelectedFolder(folderID)
			m.idx = 0
			m.screen = screenList
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdMoveNote(folderID)
	}
	return m, nil
}

func (m mainLoopModel) updateFolderInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.folderCreating = false
		m.folderInput.Blur()
		m.folderInput.SetValue("")
		return m, nil
	case "enter":
		name := strings.TrimSpace(m.folderInput.Value())
		if name == "" {
			m.setStatus(models.NotificationError, "Folder name is required")
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdCreateFolder(name)
	}

	var cmd tea.Cmd
	m.folderInput, cmd = m.folderInput.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewFolders() string {
	folders := m.services.NoteService.Folders()
	var b strings.Builder

	first := "All notes"
	if m.folderAssign {
		first = "No folder"
	}
	rows := []string{first}
	for _, f := range folders {
		rows = append(rows, fmt.Sprintf("%s  %s", f.Name, helpStyle.Render(f.Color)))
	}
	for i, row := range rows {
		if i == m.folderIdx {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		b.WriteString("\n")
	}

	if m.folderCreating {
		b.WriteString("\nNew folder │ ")
		b.WriteString(m.folderInput.View())
		b.WriteString("\n")
	}
	if m.folderConfirmDelete && m.folderIdx > 0 && m.folderIdx <= len(folders) {
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(fmt.Sprintf("Delete folder %q? Its notes are kept. y: yes │ n: no", folders[m.folderIdx-1].Name)))
		b.WriteString("\n")
	}

	title := "FOLDERS"
	hint := "enter: filter │ a: new folder │ d: delete │ esc: back"
	if m.folderAssign {
		title = "MOVE NOTE TO FOLDER"
		hint = "enter: move │ a: new folder │ d: delete │ esc: back"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hint)
}

func (m mainLoopModel) cmdCreateFolder(name string) tea.Cmd {
	ctx := m.ctx
	notes := m.services.NoteService

	return func() tea.Msg {
		_, err := notes.CreateFolder(ctx, name, models.DefaultFolderColor)
		return folderCreatedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteFolder(id string) tea.Cmd {
	ctx := m.ctx
	notes := m.services.NoteService

	return func() tea.Msg {
		return folderDeletedMsg{err: notes.DeleteFolder(ctx, id)}
	}
}

// cmdMoveNote flushes pending text first so the folder change and the buffer
// reach the server in order.
func (m mainLoopModel) cmdMoveNote(folderID string) tea.Cmd {
	return m.cmdUpdateOpenNote(func(note *models.Note) {
		if folderID == "" {
			note.FolderID = nil
			return
		}
		id := folderID
		note.FolderID = &id
	})
}
