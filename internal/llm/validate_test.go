package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func questionSchema() *Schema {
	return &Schema{
		Name:        "question-list",
		Description: "A list of multiple choice questions",
		Definition: map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"question": map[string]any{"type": "string"},
					"options": map[string]any{
						"type":     "array",
						"items":    map[string]any{"type": "string"},
						"minItems": 4,
						"maxItems": 4,
					},
					"correctAnswer": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
				},
				"required": []any{"question", "options", "correctAnswer"},
			},
		},
	}
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`[{"question":"Unit of force?","options":["N","J","W","Pa"],"correctAnswer":0}]`)
	if err := validateResponse(questionSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseEmptyArrayIsValid(t *testing.T) {
	if err := validateResponse(questionSchema(), json.RawMessage(`[]`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseRejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `supplementary text`},
		{"missing required", `[{"question":"Unit of force?"}]`},
		{"answer out of range", `[{"question":"q","options":["a","b","c","d"],"correctAnswer":7}]`},
		{"too few options", `[{"question":"q","options":["a","b"],"correctAnswer":1}]`},
		{"wrong shape", `{"question":"q"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(questionSchema(), json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected error")
			}
			var invErr *ErrInvalidResponse
			if !errors.As(err, &invErr) {
				t.Fatalf("expected ErrInvalidResponse, got: %T", err)
			}
		})
	}
}

func TestValidateResponseNilSchemaPasses(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything`)); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponseCachesCompiledSchema(t *testing.T) {
	s := questionSchema()
	raw := json.RawMessage(`[]`)
	for range 3 {
		if err := validateResponse(s, raw); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, ok := compiledSchemas.Load(s.Name); !ok {
		t.Fatal("expected schema to be cached")
	}
}
