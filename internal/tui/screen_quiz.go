package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/study"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m mainLoopModel) startQuiz(note models.Note, force bool) (tea.Model, tea.Cmd) {
	m.clearStatus()
	m.quizIdx = 0
	m.optionIdx = 0
	m.screen = screenQuiz

	ctx := m.ctx
	controller := m.quiz
	return m, func() tea.Msg {
		if force {
			return studyLoadedMsg{err: controller.Regenerate(ctx, note)}
		}
		return studyLoadedMsg{err: controller.Start(ctx, note)}
	}
}

func (m mainLoopModel) updateQuiz(msg tea.Msg) (tea.Model, tea.Cmd) {
	session := m.quiz.Session()
	questions := session.Questions()

	switch msg := msg.(type) {
	case studyLoadedMsg:
		m.reportStudyLoaded(msg.err)
		return m, nil
	case studyRecordedMsg:
		if msg.err == nil {
			m.setStatus(models.NotificationInfo, "Quiz saved to your stats")
		}
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.quiz.Close()
			m.screen = screenDetail
			return m, nil
		case key.Matches(msg, keys.regen):
			if note, ok := m.currentNote(); ok {
				return m.startQuiz(note, true)
			}
			return m, nil
		}
		if len(questions) == 0 {
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.left):
			if m.quizIdx > 0 {
				m.quizIdx--
				m.optionIdx = 0
			}
		case key.Matches(msg, keys.right), key.Matches(msg, keys.tab):
			if m.quizIdx < len(questions)-1 {
				m.quizIdx++
				m.optionIdx = 0
			}
		case key.Matches(msg, keys.up):
			if m.optionIdx > 0 {
				m.optionIdx--
			}
		case key.Matches(msg, keys.down):
			if m.optionIdx < len(questions[m.quizIdx].Options)-1 {
				m.optionIdx++
			}
		case key.Matches(msg, keys.enter):
			return m.selectOption(m.optionIdx)
		default:
			if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
				return m.selectOption(int(s[0] - '1'))
			}
		}
	}
	return m, nil
}

func (m mainLoopModel) selectOption(option int) (tea.Model, tea.Cmd) {
	questions := m.quiz.Session().Questions()
	if m.quizIdx >= len(questions) || option < 0 || option >= len(questions[m.quizIdx].Options) {
		return m, nil
	}
	m.optionIdx = option

	res, err := m.quiz.Session().Select(m.quizIdx, questions[m.quizIdx].Options[option])
	if err != nil || res.AlreadyLocked {
		return m, nil
	}
	if res.Completed {
		return m, m.cmdRecordQuiz()
	}
	if m.quizIdx < len(questions)-1 {
		m.quizIdx++
		m.optionIdx = 0
	}
	return m, nil
}

func (m mainLoopModel) viewQuiz() string {
	session := m.quiz.Session()
	note, _ := m.currentNote()
	title := "QUIZ: " + strings.ToUpper(fitText(noteTitle(note), 40))

	switch session.State() {
	case study.StateLoading:
		return renderPage(title, m.spinner.View()+" generating questions...", "esc: back")
	case study.StateIdle:
		return renderPage(title, "No questions.", "R: try again │ esc: back")
	}

	questions := session.Questions()
	locked, total := session.Progress()
	if m.quizIdx >= len(questions) {
		return renderPage(title, "No questions.", "R: try again │ esc: back")
	}
	q := questions[m.quizIdx]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Question %d of %d │ answered %d │ correct %d\n\n", m.quizIdx+1, total, locked, session.CorrectCount()))
	b.WriteString(q.Question)
	b.WriteString("\n\n")

	selected, isLocked := session.Selected(m.quizIdx)
	for i, option := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, option)
		switch {
		case isLocked && option == q.Answer:
			line = okStyle.Render(line + "  ✓")
		case isLocked && option == selected:
			line = errorStyle.Render(line + "  ✗")
		}
		if !isLocked && i == m.optionIdx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if session.State() == study.StateFinished {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(fmt.Sprintf("Quiz complete: %d of %d correct.", session.CorrectCount(), total)))
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"↑/↓: option │ enter or 1-4: answer │ ←/→: question │ R: new quiz │ esc: back")
}

func (m mainLoopModel) cmdRecordQuiz() tea.Cmd {
	ctx := m.ctx
	controller := m.quiz
	return func() tea.Msg {
		return studyRecordedMsg{err: controller.Record(ctx)}
	}
}
