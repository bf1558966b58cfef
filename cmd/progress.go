package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Tamilselvan-ats/neet-sheet-z/internal/store"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/syllabus"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show syllabus completion without launching the TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		chapters, _ := cmd.Flags().GetBool("chapters")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		tr, err := tracker.Load(context.Background(), st.TrackerStates())
		if err != nil {
			return fmt.Errorf("load tracker: %w", err)
		}

		fmt.Printf("Overall: %d%%\n", tr.Progress(syllabus.Scope{}))
		for _, subj := range syllabus.AllSubjects() {
			fmt.Printf("%-10s %d%%\n", subj, tr.Progress(syllabus.Scope{Subject: subj}))
			if !chapters {
				continue
			}
			for _, ch := range syllabus.Chapters(subj) {
				pct := tr.Progress(syllabus.Scope{Subject: subj, ChapterID: ch.ID})
				fmt.Printf("  %-40s %3d%%\n", truncate(ch.Name, 40), pct)
			}
		}

		if !tr.State().LastSync.IsZero() {
			fmt.Println(strings.Repeat("─", 24))
			fmt.Printf("Last updated: %s\n", tr.State().LastSync.Local().Format("2006-01-02 15:04"))
		}
		return nil
	},
}

func init() {
	progressCmd.Flags().BoolP("chapters", "c", false, "Break progress down per chapter")
}
