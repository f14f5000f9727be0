// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Flashcard is a question/answer pair generated for a note. Flashcards live
// only as long as the study session that produced them.
type Flashcard struct {
	ID       string `json:"id"`
	NoteID   string `json:"note_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`

	// Mastered is carried for future use and does not affect scoring.
	Mastered bool `json:"mastered"`
}

// QuizOptionsCount is the number of options every quiz question carries.
const QuizOptionsCount = 4

// QuizQuestion is a multiple-choice item. Answer must equal one of Options.
type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Valid reports whether q has exactly QuizOptionsCount options and Answer is
// one of them.
func (q QuizQuestion) Valid() bool {
	if q.Question == "" || len(q.Options) != QuizOptionsCount {
		return false
	}
	for _, o := range q.Options {
		if o == q.Answer {
			return true
		}
	}
	return false
}

// StudyKind tells which study mode produced a session record.
type StudyKind string

const (
	StudyKindFlashcards StudyKind = "flashcards"
	StudyKindQuiz       StudyKind = "quiz"
)

// StudySession is an append-only analytics record of a finished study session.
type StudySession struct {
	ID              string    `json:"id"`
	UserID          int64     `json:"user_id,omitempty"`
	NoteID          *string   `json:"note_id,omitempty"`
	Kind            StudyKind `json:"kind" validate:"required,oneof=flashcards quiz"`
	CardsStudied    int       `json:"cards_studied" validate:"gte=0"`
	CorrectAnswers  int       `json:"correct_answers" validate:"gte=0,ltefield=CardsStudied"`
	DurationSeconds int       `json:"duration_seconds" validate:"gte=0"`
	CreatedAt       time.Time `json:"created_at"`
}

// StudyStats aggregates all study sessions of a user.
type StudyStats struct {
	TotalSessions   int64   `json:"total_sessions"`
	FlashcardRuns   int64   `json:"flashcard_runs"`
	QuizRuns        int64   `json:"quiz_runs"`
	CardsStudied    int64   `json:"cards_studied"`
	CorrectAnswers  int64   `json:"correct_answers"`
	DurationSeconds int64   `json:"duration_seconds"`
	Accuracy        float64 `json:"accuracy"`
}
