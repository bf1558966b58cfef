package history

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
)

func TestEmptyHistory(t *testing.T) {
	s := New(tracker.New(nil))
	view := s.View(100, 30)
	if !strings.Contains(view, "No tests taken yet") {
		t.Error("expected the empty-history hint")
	}
}

func TestShowsEntriesMostRecentFirst(t *testing.T) {
	tr := tracker.New(nil)
	ctx := context.Background()
	for i, score := range []int{300, 412} {
		err := tr.AddQuizResult(ctx, tracker.QuizSummary{
			Type:  "Full Mock",
			Date:  time.Date(2026, 8, 20+i, 10, 0, 0, 0, time.UTC),
			Score: score,
			Total: 720,
		})
		if err != nil {
			t.Fatalf("add result: %v", err)
		}
	}

	view := New(tr).View(100, 30)
	first := strings.Index(view, "412")
	second := strings.Index(view, "300")
	if first == -1 || second == -1 {
		t.Fatalf("view missing scores:\n%s", view)
	}
	if first > second {
		t.Error("expected the most recent result listed first")
	}
}

func TestOverflowKeepsLimit(t *testing.T) {
	tr := tracker.New(nil)
	ctx := context.Background()
	for i := 0; i < tracker.HistoryLimit+5; i++ {
		if err := tr.AddQuizResult(ctx, tracker.QuizSummary{
			Type:  "Full Mock",
			Date:  time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			Score: i,
			Total: 720,
		}); err != nil {
			t.Fatalf("add result: %v", err)
		}
	}

	view := New(tr).View(120, 40)
	if !strings.Contains(view, "last 10 of at most 10") {
		t.Errorf("expected the capped footer, got:\n%s", view)
	}
}
