package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/coursepilot/internal/store"
	"github.com/abhisek/coursepilot/internal/tutor"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List stored tutoring sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		prune, _ := cmd.Flags().GetBool("prune")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		snaps := s.SnapshotRepo()

		if prune {
			if err := snaps.Prune(ctx); err != nil {
				return fmt.Errorf("prune snapshots: %w", err)
			}
		}

		records, err := snaps.Sessions(ctx)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No stored sessions.")
			return nil
		}

		fmt.Printf("%-36s  %-19s  %-9s  %-8s  %s\n",
			"Session", "Last Saved", "Topic", "Messages", "Quiz")
		fmt.Println(strings.Repeat("─", 90))

		for _, rec := range records {
			snap, err := tutor.DecodeSnapshot(rec.Data)
			if err != nil {
				fmt.Printf("%-36s  %-19s  (unreadable)\n",
					rec.SessionID, rec.Timestamp.Local().Format("2006-01-02 15:04:05"))
				continue
			}
			quiz := "-"
			if len(snap.Questions) > 0 {
				quiz = fmt.Sprintf("%d/%d", snap.Score, len(snap.Questions))
			}
			fmt.Printf("%-36s  %-19s  %-9s  %-8d  %s\n",
				rec.SessionID,
				rec.Timestamp.Local().Format("2006-01-02 15:04:05"),
				fmt.Sprintf("%d/%d", snap.CurrentStep, len(snap.Outline)),
				len(snap.Messages),
				quiz,
			)
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().Bool("prune", false, "Drop all but the newest snapshot of each session first")
}
