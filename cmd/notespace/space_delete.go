// Space delete command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var spaceDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a space and everything in it",
	Long: `Delete removes a space together with its notes and saved filters.
This cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: runSpaceDelete,
}

func runSpaceDelete(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	spaces, err := backend.Spaces()
	if err != nil {
		return err
	}
	if err := spaces.Delete(args[0]); err != nil {
		return fmt.Errorf("delete space: %w", err)
	}

	fmt.Printf("Deleted space: %s\n", args[0])
	return nil
}
