package aigen

import "github.com/Tamilselvan-ats/neet-sheet-z/internal/llm"

// QuestionSetSchema defines the JSON schema for LLM question
// generation responses: an array of multiple choice questions.
var QuestionSetSchema = &llm.Schema{
	Name:        "neet-questions",
	Description: "A list of NEET-style multiple choice questions",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "The question text, self-contained and exam-ready",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"minItems":    4,
					"maxItems":    4,
					"description": "Exactly 4 answer options",
				},
				"correctAnswer": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"maximum":     3,
					"description": "Zero-based index of the correct option",
				},
				"chapter": map[string]any{
					"type":        "string",
					"description": "The NCERT chapter this question is drawn from",
				},
				"topic": map[string]any{
					"type":        "string",
					"description": "The syllabus topic within the chapter",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "One or two sentences justifying the correct answer",
				},
			},
			"required":             []any{"question", "options", "correctAnswer", "topic"},
			"additionalProperties": false,
		},
	},
}
