package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-2.5-flash", "gemini-2.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"options": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"answer":  map[string]any{"type": "integer"},
			"subject": map[string]any{"type": "string", "enum": []any{"Physics", "Chemistry", "Biology"}},
		},
		"required": []any{"question", "options", "answer"},
	}

	schema := toGeminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["question"].Type != genai.TypeString {
		t.Fatalf("expected STRING for question, got %s", schema.Properties["question"].Type)
	}
	if schema.Properties["answer"].Type != genai.TypeInteger {
		t.Fatalf("expected INTEGER for answer, got %s", schema.Properties["answer"].Type)
	}
	if len(schema.Properties["subject"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["subject"].Enum))
	}
	if schema.Properties["options"].Type != genai.TypeArray {
		t.Fatalf("expected ARRAY for options, got %s", schema.Properties["options"].Type)
	}
	if schema.Properties["options"].Items.Type != genai.TypeString {
		t.Fatalf("expected STRING items for options, got %s", schema.Properties["options"].Items.Type)
	}
	if len(schema.Required) != 3 {
		t.Fatalf("expected 3 required fields, got %d", len(schema.Required))
	}
}
