package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/study"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// startFlashcards enters the flashcards screen. A deck already generated for
// the same note is resumed unless force is set.
func (m mainLoopModel) startFlashcards(note models.Note, force bool) (tea.Model, tea.Cmd) {
	m.clearStatus()
	m.screen = screenFlashcards

	ctx := m.ctx
	controller := m.flashcards
	return m, func() tea.Msg {
		if force {
			return studyLoadedMsg{err: controller.Regenerate(ctx, note)}
		}
		return studyLoadedMsg{err: controller.Start(ctx, note)}
	}
}

func (m mainLoopModel) updateFlashcards(msg tea.Msg) (tea.Model, tea.Cmd) {
	session := m.flashcards.Session()

	switch msg := msg.(type) {
	case studyLoadedMsg:
		m.reportStudyLoaded(msg.err)
		return m, nil
	case studyRecordedMsg:
		if msg.err == nil {
			m.setStatus(models.NotificationInfo, "Session saved to your stats")
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.flashcards.Close()
			m.screen = screenDetail
		case key.Matches(msg, keys.regen):
			if note, ok := m.currentNote(); ok {
				return m.startFlashcards(note, true)
			}
		case key.Matches(msg, keys.flip), key.Matches(msg, keys.enter):
			_ = session.Flip()
		case key.Matches(msg, keys.left):
			session.Prev()
		case key.Matches(msg, keys.right):
			session.Next()
		case key.Matches(msg, keys.correct), key.Matches(msg, keys.incorrect):
			if !session.Revealed() {
				return m, nil
			}
			finished, err := session.Answer(key.Matches(msg, keys.correct))
			if err != nil {
				return m, nil
			}
			if finished {
				return m, m.cmdRecordFlashcards()
			}
		}
	}
	return m, nil
}

func (m mainLoopModel) viewFlashcards() string {
	session := m.flashcards.Session()
	note, _ := m.currentNote()
	title := "FLASHCARDS: " + strings.ToUpper(fitText(noteTitle(note), 40))

	switch session.State() {
	case study.StateLoading:
		return renderPage(title, m.spinner.View()+" generating flashcards...", "esc: back")
	case study.StateIdle:
		return renderPage(title, "No flashcards.", "R: try again │ esc: back")
	case study.StateFinished:
		score := session.Score()
		body := fmt.Sprintf("Done! %d of %d correct.", score.Correct, score.Total())
		return renderPage(title, body, "R: new deck │ esc: back")
	}

	card, _ := session.Current()
	index, total := session.Position()
	score := session.Score()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Card %d of %d │ correct %d │ incorrect %d\n\n", index+1, total, score.Correct, score.Incorrect))
	face := "Q: " + card.Question
	if session.Revealed() {
		face += "\n\nA: " + card.Answer
	}
	b.WriteString(cardStyle.Render(face))
	if session.Answered() {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("already answered"))
	}

	hint := "space: flip │ ←/→: move │ R: new deck │ esc: back"
	if session.Revealed() && !session.Answered() {
		hint = "y: knew it │ n: didn't │ space: flip │ ←/→: move │ esc: back"
	}
	return renderPage(title, b.String(), hint)
}

func (m mainLoopModel) cmdRecordFlashcards() tea.Cmd {
	ctx := m.ctx
	controller := m.flashcards
	return func() tea.Msg {
		return studyRecordedMsg{err: controller.Record(ctx)}
	}
}
