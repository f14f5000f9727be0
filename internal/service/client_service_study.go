package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-video-notes/internal/adapter"
	"github.com/MKhiriev/go-video-notes/internal/utils"
	"github.com/MKhiriev/go-video-notes/internal/validators"
	"github.com/MKhiriev/go-video-notes/internal/youtube"
	"github.com/MKhiriev/go-video-notes/models"
)

type clientStudyService struct {
	serverAdapter adapter.ServerAdapter
	notifier      Notifier
	ids           *utils.IDGenerator
}

// NewClientStudyService creates the client side of the AI gateway.
func NewClientStudyService(serverAdapter adapter.ServerAdapter, notifier Notifier) ClientStudyService {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	return &clientStudyService{
		serverAdapter: serverAdapter,
		notifier:      notifier,
		ids:           utils.NewIDGenerator(),
	}
}

func (s *clientStudyService) GenerateFlashcards(ctx context.Context, note models.Note) ([]models.Flashcard, error) {
	raw, err := s.generateJSON(ctx, models.AIFlashcards, note)
	if err != nil {
		return nil, err
	}

	var cards []models.Flashcard
	if err = json.Unmarshal([]byte(raw), &cards); err != nil {
		return nil, s.malformed(err)
	}

	out := make([]models.Flashcard, 0, len(cards))
	for _, c := range cards {
		c.Question = strings.TrimSpace(c.Question)
		c.Answer = strings.TrimSpace(c.Answer)
		if c.Question == "" || c.Answer == "" {
			continue
		}
		c.ID = s.ids.NewID()
		c.NoteID = note.ID
		c.Mastered = false
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, s.malformed(errors.New("no usable flashcards"))
	}
	return out, nil
}

func (s *clientStudyService) GenerateQuiz(ctx context.Context, note models.Note) ([]models.QuizQuestion, error) {
	raw, err := s.generateJSON(ctx, models.AIQuiz, note)
	if err != nil {
		return nil, err
	}

	var questions []models.QuizQuestion
	if err = json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, s.malformed(err)
	}

	// a question whose answer is not among its options cannot be scored
	out := questions[:0]
	for _, q := range questions {
		if q.Valid() {
			out = append(out, q)
		}
	}
	if len(out) == 0 {
		return nil, s.malformed(errors.New("no valid quiz questions"))
	}
	return out, nil
}

func (s *clientStudyService) Explain(ctx context.Context, text, surrounding string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		s.notifier.Notify(models.Notification{
			Level:       models.NotificationWarning,
			Title:       "No text selected",
			Description: "Highlight some text in your notes first.",
		})
		return "", validators.ErrNoHighlightedText
	}

	resp, err := s.generate(ctx, models.AIRequest{
		Type:    models.AIExplain,
		Text:    text,
		Context: strings.TrimSpace(surrounding),
	})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (s *clientStudyService) Summarize(ctx context.Context, note models.Note) (string, error) {
	source, err := s.source(note)
	if err != nil {
		return "", err
	}

	resp, err := s.generate(ctx, models.AIRequest{Type: models.AISummarize, Text: source})
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

func (s *clientStudyService) RecordSession(ctx context.Context, session models.StudySession) error {
	if _, err := s.serverAdapter.RecordStudySession(ctx, session); err != nil {
		s.notifier.Notify(models.Notification{
			Level:       models.NotificationError,
			Title:       "Error saving study session",
			Description: err.Error(),
		})
		return err
	}
	return nil
}

func (s *clientStudyService) Stats(ctx context.Context) (models.StudyStats, error) {
	stats, err := s.serverAdapter.GetStudyStats(ctx)
	if err != nil {
		s.notifier.Notify(models.Notification{
			Level:       models.NotificationError,
			Title:       "Error loading study stats",
			Description: err.Error(),
		})
		return models.StudyStats{}, err
	}
	return stats, nil
}

func (s *clientStudyService) generateJSON(ctx context.Context, kind models.AIRequestType, note models.Note) (string, error) {
	source, err := s.source(note)
	if err != nil {
		return "", err
	}

	resp, err := s.generate(ctx, models.AIRequest{Type: kind, Text: source})
	if err != nil {
		return "", err
	}

	raw := StripCodeFences(resp.Content)
	if !strings.HasPrefix(raw, "[") {
		return "", s.malformed(errors.New("response is not a JSON array"))
	}
	return raw, nil
}

func (s *clientStudyService) generate(ctx context.Context, req models.AIRequest) (models.AIResponse, error) {
	resp, err := s.serverAdapter.GenerateAI(ctx, req)
	if err != nil {
		s.notifier.Notify(models.Notification{
			Level:       models.NotificationError,
			Title:       aiErrorTitle(err),
			Description: extractBody(err),
		})
		return models.AIResponse{}, mapAdapterError(err)
	}
	return resp, nil
}

// source renders the study material of a note, one "[m:ss] label" line per
// timestamp after the content.
func (s *clientStudyService) source(note models.Note) (string, error) {
	text := StudySource(note)
	if text == "" {
		s.notifier.Notify(models.Notification{
			Level:       models.NotificationWarning,
			Title:       "No content to study",
			Description: "Add some notes or timestamps first.",
		})
		return "", ErrEmptyNoteContent
	}
	return text, nil
}

func (s *clientStudyService) malformed(cause error) error {
	s.notifier.Notify(models.Notification{
		Level:       models.NotificationError,
		Title:       "Could not read AI response",
		Description: "Please try generating again.",
	})
	return fmt.Errorf("%w: %w", ErrMalformedAIResponse, cause)
}

// StudySource returns the note content followed by its timestamps, or "" when
// the note has neither.
func StudySource(note models.Note) string {
	var b strings.Builder
	if content := strings.TrimSpace(note.Content); content != "" {
		b.WriteString(content)
	}
	for _, ts := range note.Timestamps.Sorted() {
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "[%s] %s", youtube.FormatOffset(ts.Time), ts.Label)
		if ts.Note != "" {
			b.WriteString(": " + ts.Note)
		}
	}
	return b.String()
}

func aiErrorTitle(err error) string {
	switch {
	case errors.Is(err, adapter.ErrTooManyRequests):
		return "Rate limit exceeded"
	case errors.Is(err, adapter.ErrPaymentRequired):
		return "AI credits depleted"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Please log in again"
	default:
		return "AI request failed"
	}
}
