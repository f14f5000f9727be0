// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package study drives a single bounded study session over AI-generated
// flashcards or multiple-choice questions.
//
// A session moves Idle → Loading → Ready → Finished. [FlashcardSession] and
// [QuizSession] hold the per-card state and the score; they know nothing
// about where the items come from. [FlashcardController] and
// [QuizController] tie a session to a generator so that generation runs once
// per note and responses that arrive after a newer request are dropped.
//
// Sessions are safe for concurrent use. Nothing here is persisted; the
// finished session can be turned into a [models.StudySession] analytics
// record with Summary.
package study
