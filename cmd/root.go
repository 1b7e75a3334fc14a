package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/coursepilot/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "coursepilot [course.md]",
	Short: "AI course tutor in the terminal",
	Long: "CoursePilot is an AI tutor that lectures through a course document,\n" +
		"answers questions, and quizzes the learner as they go.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		}
		return runApp(cmd, path)
	},
}

func Execute() error {
	// Pick up API keys from a local .env when present.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COURSEPILOT_DB env var)")

	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COURSEPILOT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
