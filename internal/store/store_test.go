package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	entschema "github.com/Tamilselvan-ats/neet-sheet-z/ent/schema"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/llm"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestTrackerStateRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.TrackerStates()
	ctx := context.Background()

	// Nothing stored yet.
	state, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load empty: %v", err)
	}
	if state != nil {
		t.Fatal("expected nil state before first save")
	}

	saved := tracker.State{
		CompletedTopics: []string{"p11_01_01", "b11_02_03"},
		QuizHistory: []tracker.QuizSummary{
			{Type: "Full Mock", Date: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC), Score: 412, Total: 720},
		},
		LastSync: time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC),
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("expected state after save")
	}
	if len(got.CompletedTopics) != 2 || got.CompletedTopics[0] != "p11_01_01" {
		t.Fatalf("completed topics lost in round trip: %v", got.CompletedTopics)
	}
	if len(got.QuizHistory) != 1 || got.QuizHistory[0].Score != 412 {
		t.Fatalf("quiz history lost in round trip: %+v", got.QuizHistory)
	}
}

func TestTrackerStateLatestWins(t *testing.T) {
	s := openTestStore(t)
	repo := s.TrackerStates()
	ctx := context.Background()

	for i := range 3 {
		state := tracker.State{
			CompletedTopics: []string{fmt.Sprintf("p11_01_%02d", i)},
		}
		if err := repo.Save(ctx, state); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got.CompletedTopics) != 1 || got.CompletedTopics[0] != "p11_01_02" {
		t.Fatalf("expected latest save to win, got %v", got.CompletedTopics)
	}
}

func TestTrackerStatePrunes(t *testing.T) {
	s := openTestStore(t)
	repo := s.TrackerStates()
	ctx := context.Background()

	for range snapshotsToKeep + 5 {
		if err := repo.Save(ctx, tracker.State{}); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	n, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n > snapshotsToKeep {
		t.Fatalf("expected at most %d snapshots, got %d", snapshotsToKeep, n)
	}
}

func TestQuizEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	for i := range 3 {
		err := repo.AppendQuizEvent(ctx, QuizEventData{
			SessionID:      "11111111-2222-3333-4444-55555555555" + string(rune('0'+i)),
			TestType:       "Full Mock",
			Score:          100 * i,
			TotalQuestions: 180,
			Correct:        30 * i,
			Percentage:     14 * i,
			SubjectScores: []entschema.SubjectScore{
				{Subject: "biology", Correct: 20 * i, Total: 90},
			},
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	recent, err := repo.RecentQuizEvents(ctx, 2)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 events, got %d", len(recent))
	}
	// Newest first.
	if recent[0].Score != 200 || recent[1].Score != 100 {
		t.Fatalf("unexpected order: %d, %d", recent[0].Score, recent[1].Score)
	}
	if recent[0].Sequence <= recent[1].Sequence {
		t.Fatal("expected descending sequence")
	}
	if len(recent[0].SubjectScores) != 1 || recent[0].SubjectScores[0].Subject != "biology" {
		t.Fatalf("subject scores lost: %+v", recent[0].SubjectScores)
	}
}

func TestLLMRequestEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, llm.RequestRecord{
		Provider:     "gemini-2.5-flash",
		Model:        "gemini-2.5-flash",
		Purpose:      "question_generation",
		InputTokens:  300,
		OutputTokens: 900,
		LatencyMs:    1200,
		Success:      true,
		RequestBody:  "[user]\ngenerate questions",
		ResponseBody: `[]`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	n, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 event, got %d", n)
	}
}

func TestSequencesAreGlobal(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Events().AppendQuizEvent(ctx, QuizEventData{
		SessionID: "a", TestType: "Full Mock", TotalQuestions: 180,
	}); err != nil {
		t.Fatalf("append quiz: %v", err)
	}
	if err := s.Events().AppendLLMRequest(ctx, llm.RequestRecord{
		Provider: "mock", Model: "mock", Purpose: "question_generation", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	qe, err := s.Client().QuizEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query quiz event: %v", err)
	}
	le, err := s.Client().LLMRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query llm event: %v", err)
	}
	if le.Sequence <= qe.Sequence {
		t.Fatalf("expected llm event sequence (%d) > quiz event sequence (%d)", le.Sequence, qe.Sequence)
	}
}
