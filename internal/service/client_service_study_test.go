package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-video-notes/internal/adapter"
	"github.com/MKhiriev/go-video-notes/internal/mock"
	"github.com/MKhiriev/go-video-notes/internal/validators"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestStudyService(t *testing.T) (ClientStudyService, *mock.MockServerAdapter, *recordingNotifier) {
	t.Helper()
	srv := mock.NewMockServerAdapter(gomock.NewController(t))
	notifier := &recordingNotifier{}
	return NewClientStudyService(srv, notifier), srv, notifier
}

var studyNote = models.Note{
	ID:      "n1",
	Content: "Goroutines are cheap.",
	Timestamps: models.Timestamps{
		{ID: "t2", Time: 125, Label: "channels"},
		{ID: "t1", Time: 5, Label: "intro", Note: "speaker bio"},
	},
}

// ── source text ─────────────────────────────────────────────────────────────

func TestStudySource(t *testing.T) {
	assert.Equal(t,
		"Goroutines are cheap.\n[0:05] intro: speaker bio\n[2:05] channels",
		StudySource(studyNote),
	)
	assert.Equal(t, "[0:00] start", StudySource(models.Note{Timestamps: models.Timestamps{{Label: "start"}}}))
	assert.Empty(t, StudySource(models.Note{Content: "  \n "}))
}

func TestClientStudy_EmptyNoteShortCircuits(t *testing.T) {
	svc, _, notifier := newTestStudyService(t)

	_, err := svc.GenerateFlashcards(context.Background(), models.Note{ID: "n1"})

	assert.ErrorIs(t, err, ErrEmptyNoteContent)
	assert.Equal(t, []string{"No content to study"}, notifier.titles())
}

// ── flashcards ──────────────────────────────────────────────────────────────

func TestClientStudy_GenerateFlashcards(t *testing.T) {
	svc, srv, notifier := newTestStudyService(t)
	srv.EXPECT().
		GenerateAI(gomock.Any(), models.AIRequest{Type: models.AIFlashcards, Text: StudySource(studyNote)}).
		Return(models.AIResponse{Content: "```json\n" + `[
			{"question":"What is cheap?","answer":"Goroutines"},
			{"question":"  ","answer":"dropped"},
			{"question":"Where at 2:05?","answer":"Channels","mastered":true}
		]` + "\n```"}, nil)

	cards, err := svc.GenerateFlashcards(context.Background(), studyNote)

	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "What is cheap?", cards[0].Question)
	assert.Equal(t, "n1", cards[0].NoteID)
	assert.NotEmpty(t, cards[0].ID)
	assert.NotEqual(t, cards[0].ID, cards[1].ID)
	assert.False(t, cards[1].Mastered)
	assert.Empty(t, notifier.titles())
}

func TestClientStudy_MalformedResponses(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "Sure! Here are your flashcards."},
		{"object instead of array", `{"question":"q","answer":"a"}`},
		{"broken array", `[{"question":"q",`},
		{"empty array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, srv, notifier := newTestStudyService(t)
			srv.EXPECT().GenerateAI(gomock.Any(), gomock.Any()).Return(models.AIResponse{Content: tt.content}, nil)

			_, err := svc.GenerateFlashcards(context.Background(), studyNote)

			assert.ErrorIs(t, err, ErrMalformedAIResponse)
			assert.Equal(t, []string{"Could not read AI response"}, notifier.titles())
		})
	}
}

func TestClientStudy_GatewayErrorsNotify(t *testing.T) {
	tests := []struct {
		err   error
		title string
	}{
		{adapter.ErrTooManyRequests, "Rate limit exceeded"},
		{adapter.ErrPaymentRequired, "AI credits depleted"},
		{adapter.ErrBadGateway, "AI request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			svc, srv, notifier := newTestStudyService(t)
			srv.EXPECT().GenerateAI(gomock.Any(), gomock.Any()).Return(models.AIResponse{}, fmt.Errorf("generate: %w", tt.err))

			_, err := svc.GenerateQuiz(context.Background(), studyNote)

			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, []string{tt.title}, notifier.titles())
		})
	}
}

// ── quiz ────────────────────────────────────────────────────────────────────

func TestClientStudy_GenerateQuizDropsInvalidQuestions(t *testing.T) {
	svc, srv, _ := newTestStudyService(t)
	srv.EXPECT().GenerateAI(gomock.Any(), gomock.Any()).Return(models.AIResponse{Content: `[
		{"question":"Q1","options":["a","b","c","d"],"answer":"b"},
		{"question":"Q2","options":["a","b","c","d"],"answer":"e"},
		{"question":"Q3","options":["a","b"],"answer":"a"}
	]`}, nil)

	questions, err := svc.GenerateQuiz(context.Background(), studyNote)

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Q1", questions[0].Question)
}

// ── explain / summarize ─────────────────────────────────────────────────────

func TestClientStudy_Explain(t *testing.T) {
	svc, srv, _ := newTestStudyService(t)
	srv.EXPECT().
		GenerateAI(gomock.Any(), models.AIRequest{Type: models.AIExplain, Text: "entropy", Context: "lecture 3"}).
		Return(models.AIResponse{Content: "Disorder."}, nil)

	got, err := svc.Explain(context.Background(), " entropy ", " lecture 3 ")

	require.NoError(t, err)
	assert.Equal(t, "Disorder.", got)
}

func TestClientStudy_ExplainRequiresText(t *testing.T) {
	svc, _, notifier := newTestStudyService(t)

	_, err := svc.Explain(context.Background(), "  ", "ctx")

	assert.ErrorIs(t, err, validators.ErrNoHighlightedText)
	assert.Equal(t, []string{"No text selected"}, notifier.titles())
}

func TestClientStudy_Summarize(t *testing.T) {
	svc, srv, _ := newTestStudyService(t)
	srv.EXPECT().
		GenerateAI(gomock.Any(), models.AIRequest{Type: models.AISummarize, Text: StudySource(studyNote)}).
		Return(models.AIResponse{Content: "- goroutines"}, nil)

	got, err := svc.Summarize(context.Background(), studyNote)

	require.NoError(t, err)
	assert.Equal(t, "- goroutines", got)
}

// ── analytics ───────────────────────────────────────────────────────────────

func TestClientStudy_RecordSessionAndStats(t *testing.T) {
	svc, srv, notifier := newTestStudyService(t)
	session := models.StudySession{Kind: models.StudyKindQuiz, CardsStudied: 5, CorrectAnswers: 4}

	srv.EXPECT().RecordStudySession(gomock.Any(), session).Return(session, nil)
	srv.EXPECT().GetStudyStats(gomock.Any()).Return(models.StudyStats{}, errNetwork)

	require.NoError(t, svc.RecordSession(context.Background(), session))

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, errNetwork)
	assert.Equal(t, []string{"Error loading study stats"}, notifier.titles())
}
