package tui

import (
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/youtube"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *mainLoopModel) startNewNote() {
	url := newInput("https://www.youtube.com/watch?v=...", 54)
	url.Focus()
	title := newInput("title (optional)", 54)

	m.createInputs = []textinput.Model{url, title}
	m.createFocus = 0
	m.clearStatus()
	m.screen = screenNewNote
}

func (m mainLoopModel) updateNewNote(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noteCreatedMsg:
		m.busy = false
		if msg.err != nil {
			return m, nil
		}
		m.openDetailFor(msg.note)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.screen = screenList
			return m, nil
		case "tab", "shift+tab", "up", "down":
			if msg.String() == "tab" || msg.String() == "down" {
				m.createFocus = focusNext(m.createInputs, m.createFocus)
			} else {
				m.createFocus = focusPrev(m.createInputs, m.createFocus)
			}
			return m, nil
		case "enter":
			if m.busy {
				return m, nil
			}
			raw := strings.TrimSpace(m.createInputs[0].Value())
			videoID, err := youtube.ParseVideoID(raw)
			if err != nil {
				m.setStatus(models.NotificationError, "Not a YouTube link or video id")
				return m, nil
			}
			m.busy = true
			return m, m.cmdCreateNote(videoID, strings.TrimSpace(m.createInputs[1].Value()), raw)
		}
	}

	var cmd tea.Cmd
	m.createInputs[m.createFocus], cmd = m.createInputs[m.createFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewNewNote() string {
	var b strings.Builder
	b.WriteString("Video │ ")
	b.WriteString(m.createInputs[0].View())
	b.WriteString("\nTitle │ ")
	b.WriteString(m.createInputs[1].View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("An existing note for the same video is opened instead of creating a new one."))

	return renderPage("NEW NOTE", b.String(), "enter: create │ tab: next field │ esc: back")
}

func (m mainLoopModel) cmdCreateNote(videoID, title, rawURL string) tea.Cmd {
	ctx := m.ctx
	notes := m.services.NoteService

	url := rawURL
	if !strings.Contains(url, "://") {
		url = youtube.VideoURL(videoID)
	}

	return func() tea.Msg {
		note, err := notes.CreateNote(ctx, videoID, title, url)
		return noteCreatedMsg{note: note, err: err}
	}
}
