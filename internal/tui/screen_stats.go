package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) updateStats(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		m.busy = false
		if msg.err == nil {
			m.stats = msg.stats
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
			m.screen = screenList
		case key.Matches(msg, keys.refresh):
			if !m.busy {
				m.busy = true
				return m, m.cmdLoadStats()
			}
		}
	}
	return m, nil
}

func (m mainLoopModel) viewStats() string {
	s := m.stats

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Sessions        │ %d\n", s.TotalSessions))
	b.WriteString(fmt.Sprintf("Flashcard runs  │ %d\n", s.FlashcardRuns))
	b.WriteString(fmt.Sprintf("Quiz runs       │ %d\n", s.QuizRuns))
	b.WriteString(fmt.Sprintf("Cards studied   │ %d\n", s.CardsStudied))
	b.WriteString(fmt.Sprintf("Correct answers │ %d\n", s.CorrectAnswers))
	b.WriteString(fmt.Sprintf("Accuracy        │ %.1f%%\n", s.Accuracy*100))
	b.WriteString(fmt.Sprintf("Time studied    │ %s", time.Duration(s.DurationSeconds)*time.Second))

	return renderPage("STUDY STATS", b.String(), "r: reload │ esc: back")
}

func (m mainLoopModel) cmdLoadStats() tea.Cmd {
	ctx := m.ctx
	svc := m.services.StudyService
	return func() tea.Msg {
		stats, err := svc.Stats(ctx)
		return statsLoadedMsg{stats: stats, err: err}
	}
}
