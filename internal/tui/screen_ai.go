package tui

import (
	"strings"

	"github.com/MKhiriev/go-video-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// startExplain opens the form for a fragment to explain. The text field is
// prefilled with the last paragraph of the note.
func (m *mainLoopModel) startExplain() {
	text := newInput("fragment to explain", 60)
	text.CharLimit = 2000
	surrounding := newInput("context (optional)", 60)
	surrounding.CharLimit = 4000

	if note, ok := m.currentNote(); ok {
		if p := lastParagraph(note.Content); p != "" {
			text.SetValue(p)
		}
		surrounding.SetValue(noteTitle(note))
	}
	text.Focus()

	m.explainInputs = []textinput.Model{text, surrounding}
	m.explainFocus = 0
	m.clearStatus()
	m.screen = screenExplain
}

func (m mainLoopModel) updateExplain(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		m.screen = screenDetail
		return m, nil
	case "tab", "down":
		m.explainFocus = focusNext(m.explainInputs, m.explainFocus)
		return m, nil
	case "shift+tab", "up":
		m.explainFocus = focusPrev(m.explainInputs, m.explainFocus)
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		if strings.TrimSpace(m.explainInputs[0].Value()) == "" {
			m.setStatus(models.NotificationError, "Enter the text to explain")
			return m, nil
		}
		m.busy = true
		return m, m.cmdExplain(m.explainInputs[0].Value(), m.explainInputs[1].Value())
	}

	var cmd tea.Cmd
	m.explainInputs[m.explainFocus], cmd = m.explainInputs[m.explainFocus].Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewExplain() string {
	var b strings.Builder
	b.WriteString("Text    │ " + m.explainInputs[0].View() + "\n")
	b.WriteString("Context │ " + m.explainInputs[1].View())
	return renderPage("EXPLAIN", b.String(), "tab: next field │ enter: explain │ esc: back")
}

// showAIText puts a generated answer into the reader screen. Answers
// arriving after the user left the originating screen are dropped.
func (m mainLoopModel) showAIText(msg aiTextMsg) (tea.Model, tea.Cmd) {
	m.busy = false
	if msg.err != nil {
		return m, nil
	}
	if m.screen != screenDetail && m.screen != screenExplain {
		return m, nil
	}
	m.aiTitle = msg.title
	m.aiText = msg.text
	m.aiView.SetContent(msg.text)
	m.aiView.GotoTop()
	m.screen = screenAIText
	return m, nil
}

func (m mainLoopModel) updateAIText(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc), key.Matches(keyMsg, keys.quit):
			m.screen = screenDetail
			return m, nil
		case key.Matches(keyMsg, keys.copy):
			m.copyToClipboard(m.aiText, "Copied to clipboard")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.aiView, cmd = m.aiView.Update(msg)
	return m, cmd
}

func (m mainLoopModel) viewAIText() string {
	return renderPage(m.aiTitle, m.aiView.View(), "↑/↓: scroll │ c: copy │ esc: back")
}

func (m mainLoopModel) cmdExplain(text, surrounding string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.StudyService
	return func() tea.Msg {
		answer, err := svc.Explain(ctx, text, surrounding)
		return aiTextMsg{title: "EXPLANATION", text: answer, err: err}
	}
}

func (m mainLoopModel) cmdSummarize(note models.Note) tea.Cmd {
	ctx := m.ctx
	svc := m.services.StudyService
	return func() tea.Msg {
		summary, err := svc.Summarize(ctx, note)
		return aiTextMsg{title: "SUMMARY: " + strings.ToUpper(fitText(noteTitle(note), 40)), text: summary, err: err}
	}
}

func lastParagraph(content string) string {
	paragraphs := strings.Split(strings.TrimSpace(content), "\n\n")
	return strings.TrimSpace(paragraphs[len(paragraphs)-1])
}
