package aigen

import "github.com/Tamilselvan-ats/neet-sheet-z/internal/quiz"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// QuestionsPerSubject is how many questions to request per subject.
	QuestionsPerSubject int

	// MaxChapters caps how many chapter names go into the prompt.
	MaxChapters int

	// MaxTokens is the token budget for one LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		QuestionsPerSubject: quiz.AIQuestionsPerSubject,
		MaxChapters:         12,
		MaxTokens:           2048,
		Temperature:         0.8,
	}
}
