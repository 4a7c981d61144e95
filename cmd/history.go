package cmd

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/lymphwatch/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print a user's score history",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")
		if user == "" {
			return fmt.Errorf("--user is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		password, err := readPassword()
		if err != nil {
			return err
		}
		if err := st.Users().Authenticate(cmd.Context(), user, password); err != nil {
			return err
		}

		scores, err := st.Records().LoadHistory(cmd.Context(), user)
		if err != nil {
			return err
		}
		if len(scores) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no assessments recorded")
			return nil
		}
		for i, score := range scores {
			fmt.Fprintf(cmd.OutOrStdout(), "%3d  %.1f\n", i+1, score)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("user", "", "Username to show history for")
}

// readPassword prompts on the terminal, or falls back to the
// LYMPHWATCH_PASSWORD env var for scripted use.
func readPassword() (string, error) {
	if p := os.Getenv("LYMPHWATCH_PASSWORD"); p != "" {
		return p, nil
	}
	fmt.Fprint(os.Stderr, "Password: ")
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}
