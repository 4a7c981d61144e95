package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/lymphwatch/internal/store"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage local accounts",
}

var usersRegisterCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Create an account without starting the UI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		if err := st.Users().Register(cmd.Context(), args[0], password); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created account %q\n", args[0])
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete an account and all its data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		if err := st.Users().Delete(cmd.Context(), args[0], password); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted account %q\n", args[0])
		return nil
	},
}

func init() {
	usersCmd.AddCommand(usersRegisterCmd)
	usersCmd.AddCommand(usersDeleteCmd)
}
