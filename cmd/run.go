package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Tamilselvan-ats/neet-sheet-z/ent/schema"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/aigen"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/app"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/llm"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/quiz"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/store"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	tr, err := tracker.Load(ctx, st.TrackerStates())
	if err != nil {
		return fmt.Errorf("load tracker: %w", err)
	}

	events := st.Events()
	opts := app.Options{
		Tracker: tr,
		Commit:  commitFunc(events),
	}

	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "AI mock tests will be unavailable.")
	} else {
		opts.Generator = aigen.New(provider, aigen.DefaultConfig())
	}

	return app.Run(opts)
}

// commitFunc builds the persistence callback for submitted tests. The
// event append runs inside session submission so a storage failure
// keeps the attempt open.
func commitFunc(events *store.EventRepo) func(ctx context.Context, typ quiz.TestType, sessionID string, durationSecs int, res quiz.Result) error {
	return func(ctx context.Context, typ quiz.TestType, sessionID string, durationSecs int, res quiz.Result) error {
		var subjectScores []schema.SubjectScore
		for _, subj := range syllabus.AllSubjects() {
			sb, ok := res.SubjectBreakdown[subj]
			if !ok {
				continue
			}
			subjectScores = append(subjectScores, schema.SubjectScore{
				Subject: string(subj),
				Correct: sb.Correct,
				Total:   sb.Total,
			})
		}

		return events.AppendQuizEvent(ctx, store.QuizEventData{
			SessionID:      sessionID,
			TestType:       string(typ),
			Score:          res.Score,
			TotalQuestions: res.TotalQuestions,
			Correct:        res.Correct,
			Incorrect:      res.Incorrect,
			Unattempted:    res.Unattempted,
			Percentage:     res.Percentage,
			DurationSecs:   durationSecs,
			SubjectScores:  subjectScores,
		})
	}
}
