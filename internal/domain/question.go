package domain

import (
	"context"
	"time"
)

// QuestionType classifies a generated question.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionFillIn         QuestionType = "fill_in"
	QuestionShortAnswer    QuestionType = "short_answer"
)

// Question is a single generated quiz question. Choices is populated for
// multiple-choice questions only.
type Question struct {
	Type    QuestionType `json:"type"`
	Prompt  string       `json:"prompt"`
	Choices []string     `json:"choices,omitempty"`
	Answer  string       `json:"answer"`
}

// QuestionSet is an ordered collection of questions produced from one
// generation request. Sets are kept in a TTL cache so answers can be graded
// later; there is no durable persistence.
type QuestionSet struct {
	ID        string     `json:"id"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
}

// GenerationOptions tunes a single generation request.
type GenerationOptions struct {
	// QuestionCount is the number of questions to produce. Zero means the
	// configured default.
	QuestionCount int
	// Difficulty is a hint passed to the model ("easy", "medium", "hard").
	Difficulty string
	// Language is the desired output language, e.g. "English".
	Language string
}

// QuestionGenerationService produces quiz questions from extracted text via an
// external LLM. Implementations must not be called with blank text; callers
// guard with NewEmptyInputError first.
type QuestionGenerationService interface {
	GenerateQuestions(ctx context.Context, text string, opts GenerationOptions) ([]Question, error)
}
