package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/store"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List submitted mock tests from the event log",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		records, err := st.Events().RecentQuizEvents(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("query quiz events: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No tests recorded yet.")
			return nil
		}

		fmt.Printf("%-17s  %-10s  %7s  %5s  %4s  %4s  %4s  %8s\n",
			"Date", "Type", "Score", "%", "✓", "✗", "–", "Time")
		fmt.Println(strings.Repeat("─", 72))
		for _, r := range records {
			fmt.Printf("%-17s  %-10s  %7d  %4d%%  %4d  %4d  %4d  %7dm\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"),
				r.TestType,
				r.Score,
				r.Percentage,
				r.Correct,
				r.Incorrect,
				r.Unattempted,
				r.DurationSecs/60,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Number of tests to show")
}
