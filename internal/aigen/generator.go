// Package aigen generates fresh NEET practice questions with an LLM
// provider, one batch per subject, for the AI mock test.
package aigen

import (
	"context"
	"errors"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/question"
)

// ErrNoQuestions indicates the provider produced no usable questions
// for any subject. Callers fall back to the offline question bank.
var ErrNoQuestions = errors.New("no AI questions generated")

// Generator produces a set of AI questions covering all subjects.
type Generator interface {
	// GenerateSet produces questions for every subject. Subjects
	// whose generation fails are filled from the static pool, so a
	// non-empty result may be partly or wholly offline questions.
	GenerateSet(ctx context.Context) ([]question.Question, error)
}
