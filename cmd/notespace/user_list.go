// User list command.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered users",
	Args:  cobra.NoArgs,
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
		all, err := users.List()
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		if flagJSON {
			return printJSON(all)
		}

		if len(all) == 0 {
			fmt.Println("No users found.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "USERNAME\tID\tCREATED")
		for _, u := range all {
			fmt.Fprintf(w, "%s\t%s\t%s\n", u.Username, u.UserID, u.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}
