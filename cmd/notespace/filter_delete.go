// Filter delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var filterDeleteCmd = &cobra.Command{
	Use:   "delete <filter-id>",
	Short: "Delete a saved filter",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		filters, err := backend.Filters()
		if err != nil {
			return err
		}
		if err := filters.Delete(args[0]); err != nil {
			return fmt.Errorf("delete filter: %w", err)
		}
		fmt.Printf("Deleted filter %s\n", args[0])
		return nil
	},
}
