package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/internal/study"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenList screen = iota
	screenNewNote
	screenFolders
	screenDetail
	screenEditor
	screenTimestamps
	screenTags
	screenFlashcards
	screenQuiz
	screenExplain
	screenAIText
	screenStats
)

// renderInterval re-renders the list so background sync results show up.
const renderInterval = 2 * time.Second

type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices
	session  models.LocalSession

	screen        screen
	width, height int

	status      string
	statusLevel models.NotificationLevel
	busy        bool
	spinner     spinner.Model

	// list
	idx           int
	searching     bool
	searchInput   textinput.Model
	confirmDelete bool

	// new note
	createInputs []textinput.Model
	createFocus  int

	// folders
	folderIdx           int
	folderAssign        bool
	folderCreating      bool
	folderConfirmDelete bool
	folderInput         textinput.Model

	editor textarea.Model

	// timestamps and tags panels
	itemIdx    int
	itemAdding bool
	itemInputs []textinput.Model
	itemFocus  int

	flashcards *study.FlashcardController
	quiz       *study.QuizController
	quizIdx    int
	optionIdx  int

	explainInputs []textinput.Model
	explainFocus  int
	aiTitle       string
	aiText        string
	aiView        viewport.Model

	stats models.StudyStats

	logout bool
}

func newMainLoopModel(ctx context.Context, services *service.ClientServices, session models.LocalSession) mainLoopModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	search := newInput("search title, content or tags", 40)
	search.Prompt = "/ "

	editor := textarea.New()
	editor.Placeholder = "Write your notes..."
	editor.CharLimit = 100000
	editor.ShowLineNumbers = false
	editor.SetWidth(72)
	editor.SetHeight(14)

	return mainLoopModel{
		ctx:         ctx,
		services:    services,
		session:     session,
		screen:      screenList,
		spinner:     sp,
		searchInput: search,
		folderInput: newInput("folder name", 40),
		editor:      editor,
		flashcards:  study.NewFlashcardController(services.StudyService, services.StudyService),
		quiz:        study.NewQuizController(services.StudyService, services.StudyService),
		aiView:      viewport.New(72, 16),
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(
		m.cmdSetUser(),
		waitForNotification(m.services.Notifier.C()),
		m.spinner.Tick,
		tickEvery(),
	)
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.aiView.Width = min(msg.Width-4, 100)
		m.aiView.Height = max(msg.Height-10, 5)
		return m, nil
	case notificationMsg:
		m.status = msg.notification.String()
		m.statusLevel = msg.notification.Level
		return m, waitForNotification(m.services.Notifier.C())
	case tickMsg:
		m.clampIndex()
		return m, tickEvery()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case notesRefreshedMsg:
		m.busy = false
		m.clampIndex()
		return m, nil
	case aiTextMsg:
		return m.showAIText(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		return m, m.cmdQuit()
	}

	switch m.screen {
	case screenNewNote:
		return m.updateNewNote(msg)
	case screenFolders:
		return m.updateFolders(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenEditor:
		return m.updateEditor(msg)
	case screenTimestamps:
		return m.updateTimestamps(msg)
	case screenTags:
		return m.updateTags(msg)
	case screenFlashcards:
		return m.updateFlashcards(msg)
	case screenQuiz:
		return m.updateQuiz(msg)
	case screenExplain:
		return m.updateExplain(msg)
	case screenAIText:
		return m.updateAIText(msg)
	case screenStats:
		return m.updateStats(msg)
	default:
		return m.updateList(msg)
	}
}

func (m mainLoopModel) View() string {
	var body string
	switch m.screen {
	case screenNewNote:
		body = m.viewNewNote()
	case screenFolders:
		body = m.viewFolders()
	case screenDetail:
		body = m.viewDetail()
	case screenEditor:
		body = m.viewEditor()
	case screenTimestamps:
		body = m.viewTimestamps()
	case screenTags:
		body = m.viewTags()
	case screenFlashcards:
		body = m.viewFlashcards()
	case screenQuiz:
		body = m.viewQuiz()
	case screenExplain:
		body = m.viewExplain()
	case screenAIText:
		body = m.viewAIText()
	case screenStats:
		body = m.viewStats()
	default:
		body = m.viewList()
	}

	if line := m.statusLine(); line != "" {
		body += "\n\n  " + line
	}
	return body
}

func (m mainLoopModel) statusLine() string {
	if m.busy {
		return m.spinner.View() + " working..."
	}
	if m.status == "" {
		return ""
	}
	switch m.statusLevel {
	case models.NotificationError:
		return errorStyle.Render(m.status)
	case models.NotificationWarning:
		return warnStyle.Render(m.status)
	default:
		return okStyle.Render(m.status)
	}
}

func (m *mainLoopModel) setStatus(level models.NotificationLevel, text string) {
	m.status = text
	m.statusLevel = level
}

// reportStudyLoaded shows a generation failure. A request superseded by a
// newer one is not a failure: the newer one reports its own result.
func (m *mainLoopModel) reportStudyLoaded(err error) {
	if err == nil || errors.Is(err, study.ErrStaleGeneration) {
		return
	}
	m.setStatus(models.NotificationError, humanizeError(err))
}

func (m *mainLoopModel) clearStatus() {
	m.status = ""
}

// currentNote is the active note with the editor buffer applied when the
// editor holds it.
func (m mainLoopModel) currentNote() (models.Note, bool) {
	if note, ok := m.services.Editor.Note(); ok {
		return note, true
	}
	return m.services.NoteService.CurrentNote()
}

func (m *mainLoopModel) clampIndex() {
	n := len(m.services.NoteService.FilteredNotes())
	if m.idx >= n {
		m.idx = n - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func waitForNotification(ch <-chan models.Notification) tea.Cmd {
	return func() tea.Msg {
		return notificationMsg{notification: <-ch}
	}
}

func tickEvery() tea.Cmd {
	return tea.Tick(renderInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m mainLoopModel) cmdSetUser() tea.Cmd {
	ctx := m.ctx
	notes := m.services.NoteService
	userID := m.session.UserID

	return func() tea.Msg {
		notes.SetUser(ctx, userID)
		return notesRefreshedMsg{}
	}
}

func (m mainLoopModel) cmdRefresh() tea.Cmd {
	ctx := m.ctx
	notes := m.services.NoteService

	return func() tea.Msg {
		notes.Refresh(ctx)
		return notesRefreshedMsg{}
	}
}

// cmdQuit flushes the editor before leaving so no typed text is lost.
func (m mainLoopModel) cmdQuit() tea.Cmd {
	ctx := m.ctx
	editor := m.services.Editor

	return tea.Sequence(func() tea.Msg {
		_ = editor.Flush(ctx)
		editor.Close()
		return nil
	}, tea.Quit)
}
