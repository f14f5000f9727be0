package study

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-video-notes/models"
)

// SelectResult is the outcome of selecting an option.
type SelectResult struct {
	// Correct reports whether the recorded selection is the answer.
	Correct bool

	// AlreadyLocked is true when the question had been answered before; the
	// earlier selection stays.
	AlreadyLocked bool

	// Completed is true exactly once: on the selection that locked the last
	// open question.
	Completed bool
}

// QuizSession is a set of multiple-choice questions where selecting an
// option locks the question for the rest of the session.
type QuizSession struct {
	mu sync.Mutex

	state     State
	questions []models.QuizQuestion
	selected  []string
	locked    []bool
	nLocked   int
	correct   int

	now       func() time.Time
	startedAt time.Time
	elapsed   time.Duration
	noteID    string
}

func NewQuizSession() *QuizSession {
	return &QuizSession{now: time.Now}
}

// Begin enters Loading from any state, discarding questions and selections.
func (q *QuizSession) Begin() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.resetLocked()
	q.state = StateLoading
}

// Load moves a Loading session to Ready. Questions whose answer is not one of
// their options are dropped; when none are left the session fails back to
// Idle with ErrNoQuestions.
func (q *QuizSession) Load(noteID string, questions []models.QuizQuestion) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != StateLoading {
		return ErrNotLoading
	}

	valid := make([]models.QuizQuestion, 0, len(questions))
	for _, question := range questions {
		if question.Valid() {
			valid = append(valid, question)
		}
	}
	if len(valid) == 0 {
		q.resetLocked()
		return ErrNoQuestions
	}

	q.questions = valid
	q.selected = make([]string, len(valid))
	q.locked = make([]bool, len(valid))
	q.noteID = noteID
	q.state = StateReady
	q.startedAt = q.now()
	return nil
}

// Abort leaves the session Idle with no questions.
func (q *QuizSession) Abort() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.resetLocked()
}

// Select records option for question i and locks it. Later selections on a
// locked question change nothing.
func (q *QuizSession) Select(i int, option string) (SelectResult, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.state != StateReady && q.state != StateFinished {
		return SelectResult{}, ErrNotReady
	}
	if i < 0 || i >= len(q.questions) {
		return SelectResult{}, ErrIndexOutOfRange
	}

	question := q.questions[i]
	if q.locked[i] {
		return SelectResult{Correct: q.selected[i] == question.Answer, AlreadyLocked: true}, nil
	}
	if !slices.Contains(question.Options, option) {
		return SelectResult{}, ErrUnknownOption
	}

	q.selected[i] = option
	q.locked[i] = true
	q.nLocked++

	res := SelectResult{Correct: option == question.Answer}
	if res.Correct {
		q.correct++
	}
	if q.nLocked == len(q.questions) {
		q.state = StateFinished
		q.elapsed = q.now().Sub(q.startedAt)
		res.Completed = true
	}
	return res, nil
}

func (q *QuizSession) State() State {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Questions returns a copy of the loaded questions.
func (q *QuizSession) Questions() []models.QuizQuestion {
	q.mu.Lock()
	defer q.mu.Unlock()
	return slices.Clone(q.questions)
}

// Selected returns the recorded option of question i.
func (q *QuizSession) Selected(i int) (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if i < 0 || i >= len(q.questions) || !q.locked[i] {
		return "", false
	}
	return q.selected[i], true
}

func (q *QuizSession) Locked(i int) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return i >= 0 && i < len(q.questions) && q.locked[i]
}

func (q *QuizSession) CorrectCount() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.correct
}

// Progress returns the number of locked questions and the total.
func (q *QuizSession) Progress() (locked, total int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.nLocked, len(q.questions)
}

// Summary describes the session as an analytics record.
func (q *QuizSession) Summary() models.StudySession {
	q.mu.Lock()
	defer q.mu.Unlock()

	elapsed := q.elapsed
	if q.state == StateReady {
		elapsed = q.now().Sub(q.startedAt)
	}

	var noteID *string
	if q.noteID != "" {
		id := q.noteID
		noteID = &id
	}

	return models.StudySession{
		NoteID:          noteID,
		Kind:            models.StudyKindQuiz,
		CardsStudied:    q.nLocked,
		CorrectAnswers:  q.correct,
		DurationSeconds: int(elapsed.Seconds()),
	}
}

func (q *QuizSession) resetLocked() {
	q.state = StateIdle
	q.questions = nil
	q.selected = nil
	q.locked = nil
	q.nLocked = 0
	q.correct = 0
	q.startedAt = time.Time{}
	q.elapsed = 0
	q.noteID = ""
}
