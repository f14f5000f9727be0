package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/youtube"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// previewLines limits the content preview of the note view.
const previewLines = 8

func (m *mainLoopModel) openDetailFor(note models.Note) {
	m.services.NoteService.SetCurrentNote(note.ID)
	m.services.Editor.Open(note)
	m.screen = screenDetail
}

// reopenEditor refreshes the editor metadata after a change made outside of
// it; the buffer is kept.
func (m *mainLoopModel) reopenEditor(note models.Note) {
	m.services.Editor.Open(note)
}

func (m mainLoopModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noteUpdatedMsg:
		m.busy = false
		if msg.err == nil {
			m.reopenEditor(msg.note)
			if msg.note.IsPublic {
				m.setStatus(models.NotificationInfo, "Note is public")
			} else {
				m.setStatus(models.NotificationInfo, "Note is private")
			}
		}
		return m, nil
	case tea.KeyMsg:
		return m.updateDetailKeys(msg)
	}
	return m, nil
}

func (m mainLoopModel) updateDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	note, ok := m.currentNote()
	if !ok {
		m.screen = screenList
		return m, nil
	}
	if _, open := m.services.Editor.Note(); !open {
		m.services.Editor.Open(note)
	}

	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenList
		return m, m.cmdCloseEditor()
	case key.Matches(msg, keys.edit), key.Matches(msg, keys.enter):
		m.editor.SetValue(m.services.Editor.Buffer())
		m.editor.Focus()
		m.clearStatus()
		m.screen = screenEditor
	case key.Matches(msg, keys.timestamps):
		m.openItems(screenTimestamps)
	case key.Matches(msg, keys.tags):
		m.openItems(screenTags)
	case key.Matches(msg, keys.moveFolder):
		m.openFolders(true)
	case key.Matches(msg, keys.public):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdUpdateOpenNote(func(n *models.Note) { n.IsPublic = !n.IsPublic })
	case key.Matches(msg, keys.copy):
		m.copyToClipboard(youtube.VideoURL(note.VideoID), "Video link copied")
	case key.Matches(msg, keys.flashcards):
		return m.startFlashcards(note, false)
	case key.Matches(msg, keys.quiz):
		return m.startQuiz(note, false)
	case key.Matches(msg, keys.explain):
		m.startExplain()
	case key.Matches(msg, keys.summarize):
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.cmdSummarize(note)
	}
	return m, nil
}

func (m mainLoopModel) viewDetail() string {
	note, ok := m.currentNote()
	if !ok {
		return renderPage("NOTE", "No note selected", "esc: back")
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Video      │ %s\n", youtube.VideoURL(note.VideoID)))
	b.WriteString(fmt.Sprintf("Thumbnail  │ %s\n", youtube.ThumbnailURL(note.VideoID)))
	b.WriteString(fmt.Sprintf("Folder     │ %s\n", m.folderName(note.FolderID)))
	b.WriteString(fmt.Sprintf("Tags       │ %s\n", orDash(strings.Join(note.Tags, ", "))))
	b.WriteString(fmt.Sprintf("Timestamps │ %d\n", len(note.Timestamps)))
	visibility := "private"
	if note.IsPublic {
		visibility = fmt.Sprintf("public, %d views", note.Views)
	}
	b.WriteString(fmt.Sprintf("Visibility │ %s\n", visibility))
	b.WriteString(fmt.Sprintf("Updated    │ %s\n", note.UpdatedAt.Local().Format("2006-01-02 15:04:05")))
	if m.services.Editor.Dirty() {
		b.WriteString(warnStyle.Render("unsaved changes"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	content := strings.TrimSpace(note.Content)
	if content == "" {
		b.WriteString(helpStyle.Render("(empty, press e to write)"))
	} else {
		lines := strings.Split(content, "\n")
		if len(lines) > previewLines {
			lines = append(lines[:previewLines], "...")
		}
		b.WriteString(strings.Join(lines, "\n"))
	}

	return renderPage(strings.ToUpper(fitText(noteTitle(note), 50)), b.String(),
		"e: edit │ t: timestamps │ g: tags │ m: move │ p: public │ c: copy link │ F: flashcards │ Q: quiz │ x: explain │ u: summary │ esc: back")
}

func (m *mainLoopModel) copyToClipboard(text, done string) {
	if err := clipboard.WriteAll(text); err != nil {
		m.setStatus(models.NotificationError, fmt.Sprintf("Copy failed: %v", err))
		return
	}
	m.setStatus(models.NotificationInfo, done)
}

// cmdUpdateOpenNote flushes the editor buffer, applies change to the
// resulting note and writes it.
func (m mainLoopModel) cmdUpdateOpenNote(change func(*models.Note)) tea.Cmd {
	ctx := m.ctx
	notes := m.services.NoteService
	editor := m.services.Editor

	return func() tea.Msg {
		if err := editor.Flush(ctx); err != nil {
			return noteUpdatedMsg{err: err}
		}
		note, ok := editor.Note()
		if !ok {
			if note, ok = notes.CurrentNote(); !ok {
				return noteUpdatedMsg{err: errNoNote}
			}
		}
		change(&note)
		updated, err := notes.UpdateNote(ctx, note)
		return noteUpdatedMsg{note: updated, err: err}
	}
}

func (m mainLoopModel) cmdCloseEditor() tea.Cmd {
	ctx := m.ctx
	editor := m.services.Editor

	return func() tea.Msg {
		err := editor.Flush(ctx)
		editor.Close()
		return editorClosedMsg{err: err}
	}
}
