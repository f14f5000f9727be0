package study

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-video-notes/models"
)

type FlashcardGenerator interface {
	GenerateFlashcards(ctx context.Context, note models.Note) ([]models.Flashcard, error)
}

type QuizGenerator interface {
	GenerateQuiz(ctx context.Context, note models.Note) ([]models.QuizQuestion, error)
}

// Recorder stores the analytics record of a finished session.
type Recorder interface {
	RecordSession(ctx context.Context, session models.StudySession) error
}

// generation tracks which note a session was generated for and which request
// is the latest one.
type generation struct {
	mu       sync.Mutex
	noteID   string
	epoch    uint64
	recorded bool
}

// begin claims a new request for noteID and runs enter under the lock. When
// force is false and the session for the same note is already entered, it
// reports false and nothing happens.
func (g *generation) begin(noteID string, force bool, entered func() bool, enter func()) (uint64, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !force && g.noteID == noteID && entered() {
		return 0, false
	}
	g.noteID = noteID
	g.epoch++
	g.recorded = false
	enter()
	return g.epoch, true
}

// finish runs apply when epoch is still the latest request.
func (g *generation) finish(epoch uint64, apply func() error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if epoch != g.epoch {
		return ErrStaleGeneration
	}
	return apply()
}

func (g *generation) reset(abort func()) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.noteID = ""
	g.epoch++
	g.recorded = false
	abort()
}

// markRecorded reports whether the caller is the first to record the
// current session.
func (g *generation) markRecorded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.recorded {
		return false
	}
	g.recorded = true
	return true
}

// FlashcardController generates a flashcard deck for a note and drives its
// session.
type FlashcardController struct {
	generator FlashcardGenerator
	recorder  Recorder
	session   *FlashcardSession
	gen       generation
}

// NewFlashcardController creates a controller. recorder may be nil.
func NewFlashcardController(generator FlashcardGenerator, recorder Recorder) *FlashcardController {
	return &FlashcardController{generator: generator, recorder: recorder, session: NewFlashcardSession()}
}

func (c *FlashcardController) Session() *FlashcardSession { return c.session }

// Start generates a deck for note unless a session for the same note is
// already loading, ready or finished.
func (c *FlashcardController) Start(ctx context.Context, note models.Note) error {
	return c.run(ctx, note, false)
}

// Regenerate discards the current deck and score and generates a new one.
func (c *FlashcardController) Regenerate(ctx context.Context, note models.Note) error {
	return c.run(ctx, note, true)
}

// Close abandons the session; a generation still in flight is dropped when
// it returns.
func (c *FlashcardController) Close() {
	c.gen.reset(c.session.Abort)
}

// Record sends the summary of a finished session once.
func (c *FlashcardController) Record(ctx context.Context) error {
	if c.recorder == nil || c.session.State() != StateFinished || !c.gen.markRecorded() {
		return nil
	}
	return c.recorder.RecordSession(ctx, c.session.Summary())
}

func (c *FlashcardController) run(ctx context.Context, note models.Note, force bool) error {
	epoch, ok := c.gen.begin(note.ID, force, c.entered, c.session.Begin)
	if !ok {
		return nil
	}

	cards, err := c.generator.GenerateFlashcards(ctx, note)
	return c.gen.finish(epoch, func() error {
		if err != nil {
			c.session.Abort()
			return err
		}
		return c.session.Load(cards)
	})
}

func (c *FlashcardController) entered() bool {
	return c.session.State() != StateIdle
}

// QuizController generates a quiz for a note and drives its session.
type QuizController struct {
	generator QuizGenerator
	recorder  Recorder
	session   *QuizSession
	gen       generation
}

// NewQuizController creates a controller. recorder may be nil.
func NewQuizController(generator QuizGenerator, recorder Recorder) *QuizController {
	return &QuizController{generator: generator, recorder: recorder, session: NewQuizSession()}
}

func (c *QuizController) Session() *QuizSession { return c.session }

// Start generates a quiz for note unless a session for the same note is
// already loading, ready or finished.
func (c *QuizController) Start(ctx context.Context, note models.Note) error {
	return c.run(ctx, note, false)
}

// Regenerate discards the current questions and selections and generates new
// ones.
func (c *QuizController) Regenerate(ctx context.Context, note models.Note) error {
	return c.run(ctx, note, true)
}

func (c *QuizController) Close() {
	c.gen.reset(c.session.Abort)
}

// Record sends the summary of a finished quiz once.
func (c *QuizController) Record(ctx context.Context) error {
	if c.recorder == nil || c.session.State() != StateFinished || !c.gen.markRecorded() {
		return nil
	}
	return c.recorder.RecordSession(ctx, c.session.Summary())
}

func (c *QuizController) run(ctx context.Context, note models.Note, force bool) error {
	epoch, ok := c.gen.begin(note.ID, force, c.entered, c.session.Begin)
	if !ok {
		return nil
	}

	questions, err := c.generator.GenerateQuiz(ctx, note)
	return c.gen.finish(epoch, func() error {
		if err != nil {
			c.session.Abort()
			return err
		}
		return c.session.Load(note.ID, questions)
	})
}

func (c *QuizController) entered() bool {
	return c.session.State() != StateIdle
}
