package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/lymphwatch/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lymphwatch",
	Short: "Lymphedema symptom tracking and risk scoring",
	Long:  "LymphWatch is a terminal app that tracks post-surgery lymphedema symptoms and scores risk against a trained model.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LYMPHWATCH_DB env var)")

	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LYMPHWATCH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
