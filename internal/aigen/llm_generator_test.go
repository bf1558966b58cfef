package aigen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/llm"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
)

func validBatch(n int) json.RawMessage {
	var b strings.Builder
	b.WriteString("[")
	for i := range n {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(`{"question":"Which unit measures force?","options":["newton","joule","watt","pascal"],"correctAnswer":0,"chapter":"Laws of Motion","topic":"Force and inertia","explanation":"Force is measured in newtons."}`)
	}
	b.WriteString("]")
	return json.RawMessage(b.String())
}

func newTestGenerator(mock *llm.MockProvider) *LLMGenerator {
	g := New(mock, DefaultConfig())
	g.now = func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestGenerateSetAllSubjects(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validBatch(5)},
		llm.MockResponse{Content: validBatch(5)},
		llm.MockResponse{Content: validBatch(5)},
	)
	g := newTestGenerator(mock)

	qs, err := g.GenerateSet(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 15 {
		t.Fatalf("expected 15 questions, got %d", len(qs))
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected one call per subject, got %d", mock.CallCount())
	}

	// One batch per subject, in syllabus order.
	bySubject := map[syllabus.Subject]int{}
	for _, q := range qs {
		bySubject[q.Subject]++
	}
	for _, s := range syllabus.AllSubjects() {
		if bySubject[s] != 5 {
			t.Errorf("subject %s: expected 5 questions, got %d", s, bySubject[s])
		}
	}

	// IDs are unique and carry the subject tag; topic and year tag
	// come through on every question.
	seen := map[string]bool{}
	for _, q := range qs {
		if seen[q.ID] {
			t.Fatalf("duplicate ID %s", q.ID)
		}
		seen[q.ID] = true
		if !strings.HasPrefix(q.ID, "AI_") {
			t.Fatalf("unexpected ID format: %s", q.ID)
		}
		if q.Topic == "" {
			t.Fatalf("question %s: empty topic", q.ID)
		}
		if q.Year != 2026 {
			t.Fatalf("question %s: year = %d, want 2026", q.ID, q.Year)
		}
	}
}

func TestGenerateSetYearTagIsFixed(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validBatch(1)},
		llm.MockResponse{Content: validBatch(1)},
		llm.MockResponse{Content: validBatch(1)},
	)
	g := New(mock, DefaultConfig())
	g.now = func() time.Time { return time.Date(2031, 3, 14, 9, 0, 0, 0, time.UTC) }

	qs, err := g.GenerateSet(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, q := range qs {
		if q.Year != 2026 {
			t.Fatalf("year tag drifted with the clock: got %d", q.Year)
		}
	}
}

func TestGenerateSetEmptyResponsesSampleThePool(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`[]`)},
		llm.MockResponse{Content: json.RawMessage(`[]`)},
		llm.MockResponse{Content: json.RawMessage(`[]`)},
	)
	g := newTestGenerator(mock)

	qs, err := g.GenerateSet(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 15 {
		t.Fatalf("expected 15 pool questions, got %d", len(qs))
	}
	for _, q := range qs {
		if strings.HasPrefix(q.ID, "AI_") {
			t.Fatalf("question %s should come from the static pool", q.ID)
		}
	}
}

func TestGenerateSetProviderDownSamplesThePool(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue: every call errors
	g := newTestGenerator(mock)

	qs, err := g.GenerateSet(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bySubject := map[syllabus.Subject]int{}
	for _, q := range qs {
		bySubject[q.Subject]++
	}
	for _, s := range syllabus.AllSubjects() {
		if bySubject[s] != 5 {
			t.Errorf("subject %s: expected 5 pool questions, got %d", s, bySubject[s])
		}
	}
}

func TestGenerateSetPartialFailureFillsFromPool(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validBatch(5)},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("down")}},
		llm.MockResponse{Content: json.RawMessage(`[]`)},
	)
	g := newTestGenerator(mock)

	qs, err := g.GenerateSet(context.Background())
	if err != nil {
		t.Fatalf("expected silent degradation, got: %v", err)
	}
	if len(qs) != 15 {
		t.Fatalf("expected a full 15-question set, got %d", len(qs))
	}
	ai := 0
	for _, q := range qs {
		if strings.HasPrefix(q.ID, "AI_") {
			ai++
		}
	}
	if ai != 5 {
		t.Fatalf("expected 5 generated questions, got %d (rest from the pool)", ai)
	}
}

func TestGenerateSetSkipsInvalidQuestions(t *testing.T) {
	mixed := json.RawMessage(`[
		{"question":"Which unit measures force?","options":["newton","joule","watt","pascal"],"correctAnswer":0},
		{"question":"","options":["a","b","c","d"],"correctAnswer":1},
		{"question":"Answer index out of range","options":["a","b","c","d"],"correctAnswer":9},
		{"question":"Too few options","options":["a","b"],"correctAnswer":0}
	]`)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: mixed},
		llm.MockResponse{Content: json.RawMessage(`[]`)},
		llm.MockResponse{Content: json.RawMessage(`[]`)},
	)
	g := newTestGenerator(mock)

	qs, err := g.GenerateSet(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ai := 0
	for _, q := range qs {
		if strings.HasPrefix(q.ID, "AI_") {
			ai++
		}
	}
	if ai != 1 {
		t.Fatalf("expected 1 valid generated question, got %d", ai)
	}
	// The two all-empty subjects are filled from the pool.
	if len(qs) != 11 {
		t.Fatalf("expected 11 questions (1 generated + 10 pool), got %d", len(qs))
	}
}

func TestGenerateSetPromptMentionsSubjectChapters(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validBatch(1)},
		llm.MockResponse{Content: validBatch(1)},
		llm.MockResponse{Content: validBatch(1)},
	)
	g := newTestGenerator(mock)

	if _, err := g.GenerateSet(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := mock.Calls[0]
	if first.System == "" {
		t.Fatal("expected a system prompt")
	}
	if first.Schema == nil || first.Schema.Name != "neet-questions" {
		t.Fatal("expected the question set schema on the request")
	}
	msg := first.Messages[0].Content
	if !strings.Contains(msg, "Physics") {
		t.Fatalf("expected first request to target Physics, got:\n%s", msg)
	}
	if !strings.Contains(msg, "Chapters to draw from:") {
		t.Fatalf("expected chapter list in prompt, got:\n%s", msg)
	}
}
