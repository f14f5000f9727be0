package study

import "errors"

// State is the lifecycle stage of a study session.
type State int

const (
	// StateIdle means no session was entered, or the last attempt failed.
	StateIdle State = iota
	// StateLoading means items are being generated.
	StateLoading
	// StateReady means items are available for browsing and answering.
	StateReady
	// StateFinished is terminal: every item was answered.
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateFinished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	ErrNotLoading      = errors.New("session is not loading")
	ErrNotReady        = errors.New("session is not ready")
	ErrNoCards         = errors.New("no flashcards to study")
	ErrNoQuestions     = errors.New("no quiz questions to answer")
	ErrAlreadyAnswered = errors.New("card is already answered")
	ErrIndexOutOfRange = errors.New("question index out of range")
	ErrUnknownOption   = errors.New("option is not one of the question options")
	ErrStaleGeneration = errors.New("generation was superseded")
)
