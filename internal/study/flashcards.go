package study

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-video-notes/models"
)

// Score is the running self-reported result of a flashcard session.
type Score struct {
	Correct   int
	Incorrect int
}

// Total is the number of answered cards.
func (s Score) Total() int { return s.Correct + s.Incorrect }

// FlashcardSession is a navigable deck with a per-card reveal flag and a
// score. Every card is answered at most once, so the score always equals the
// number of answered cards; once all cards are answered the session is
// Finished.
type FlashcardSession struct {
	mu sync.Mutex

	state    State
	cards    []models.Flashcard
	answered []bool
	index    int
	revealed bool
	score    Score

	now       func() time.Time
	startedAt time.Time
	elapsed   time.Duration
}

func NewFlashcardSession() *FlashcardSession {
	return &FlashcardSession{now: time.Now}
}

// Begin enters Loading from any state, discarding cards and score.
func (f *FlashcardSession) Begin() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.resetLocked()
	f.state = StateLoading
}

// Load moves a Loading session to Ready. An empty deck fails the session back
// to Idle with ErrNoCards.
func (f *FlashcardSession) Load(cards []models.Flashcard) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateLoading {
		return ErrNotLoading
	}
	if len(cards) == 0 {
		f.resetLocked()
		return ErrNoCards
	}

	f.cards = append([]models.Flashcard(nil), cards...)
	f.answered = make([]bool, len(cards))
	f.state = StateReady
	f.startedAt = f.now()
	return nil
}

// Abort leaves the session Idle with no cards.
func (f *FlashcardSession) Abort() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

// Flip toggles the reveal flag of the current card.
func (f *FlashcardSession) Flip() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateReady {
		return ErrNotReady
	}
	f.revealed = !f.revealed
	return nil
}

// Answer records the self-reported result for the current card and moves to
// the next unanswered card. It reports whether the session is now Finished.
func (f *FlashcardSession) Answer(correct bool) (finished bool, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateReady {
		return false, ErrNotReady
	}
	if f.answered[f.index] {
		return false, ErrAlreadyAnswered
	}

	f.answered[f.index] = true
	if correct {
		f.score.Correct++
	} else {
		f.score.Incorrect++
	}

	if f.score.Total() == len(f.cards) {
		f.state = StateFinished
		f.revealed = false
		f.elapsed = f.now().Sub(f.startedAt)
		return true, nil
	}

	f.moveLocked(f.nextUnansweredLocked())
	return false, nil
}

// Prev moves to the previous card. It reports false at the first card or
// outside Ready.
func (f *FlashcardSession) Prev() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateReady || f.index == 0 {
		return false
	}
	f.moveLocked(f.index - 1)
	return true
}

// Next moves to the next card. It reports false at the last card or outside
// Ready.
func (f *FlashcardSession) Next() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateReady || f.index >= len(f.cards)-1 {
		return false
	}
	f.moveLocked(f.index + 1)
	return true
}

func (f *FlashcardSession) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *FlashcardSession) Score() Score {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.score
}

// Current returns the card under the cursor while Ready.
func (f *FlashcardSession) Current() (models.Flashcard, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateReady {
		return models.Flashcard{}, false
	}
	return f.cards[f.index], true
}

// Position returns the zero-based index of the current card and the deck size.
func (f *FlashcardSession) Position() (index, total int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.index, len(f.cards)
}

func (f *FlashcardSession) Revealed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.revealed
}

// Answered reports whether the current card was already answered.
func (f *FlashcardSession) Answered() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == StateReady && f.answered[f.index]
}

// Summary describes the session as an analytics record.
func (f *FlashcardSession) Summary() models.StudySession {
	f.mu.Lock()
	defer f.mu.Unlock()

	elapsed := f.elapsed
	if f.state == StateReady {
		elapsed = f.now().Sub(f.startedAt)
	}

	return models.StudySession{
		NoteID:          deckNoteID(f.cards),
		Kind:            models.StudyKindFlashcards,
		CardsStudied:    f.score.Total(),
		CorrectAnswers:  f.score.Correct,
		DurationSeconds: int(elapsed.Seconds()),
	}
}

// moveLocked changes the current card; the reveal flag is per visit.
func (f *FlashcardSession) moveLocked(index int) {
	f.index = index
	f.revealed = false
}

func (f *FlashcardSession) nextUnansweredLocked() int {
	for step := 1; step < len(f.cards); step++ {
		i := (f.index + step) % len(f.cards)
		if !f.answered[i] {
			return i
		}
	}
	return f.index
}

func (f *FlashcardSession) resetLocked() {
	f.state = StateIdle
	f.cards = nil
	f.answered = nil
	f.index = 0
	f.revealed = false
	f.score = Score{}
	f.startedAt = time.Time{}
	f.elapsed = 0
}

func deckNoteID(cards []models.Flashcard) *string {
	if len(cards) == 0 || cards[0].NoteID == "" {
		return nil
	}
	id := cards[0].NoteID
	return &id
}
