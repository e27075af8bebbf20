// User add command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var userAddCmd = &cobra.Command{
	Use:   "add <username>",
	Short: "Register a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		users, err := backend.Users()
		if err != nil {
			return err
		}
		user, err := users.Create(args[0])
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		if flagJSON {
			return printJSON(user)
		}
		fmt.Printf("Created user %s (%s)\n", user.Username, user.UserID)
		return nil
	},
}
