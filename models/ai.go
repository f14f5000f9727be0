package models

// AIRequestType selects the prompt used by the AI gateway.
type AIRequestType string

const (
	AIExplain    AIRequestType = "explain"
	AISummarize  AIRequestType = "summarize"
	AIFlashcards AIRequestType = "flashcards"
	AIQuiz       AIRequestType = "quiz"
)

// ExpectsJSON reports whether the model is asked to answer with raw JSON.
func (t AIRequestType) ExpectsJSON() bool {
	return t == AIFlashcards || t == AIQuiz
}

// AIRequest is the body of POST /api/ai/generate.
type AIRequest struct {
	Type AIRequestType `json:"type" validate:"required,aitype"`

	// Text is the source material: highlighted text for explain, the note
	// body for the other types.
	Text string `json:"text" validate:"required,max=10000"`

	// Context is optional surrounding material for explain.
	Context string `json:"context,omitempty" validate:"max=5000"`
}

// AIResponse carries the generated text. For JSON types the code fences are
// already stripped.
type AIResponse struct {
	Content string `json:"content"`
}
