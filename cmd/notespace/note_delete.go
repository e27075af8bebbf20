// Note delete command.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/types"
)

var noteDeleteSpace string

var noteDeleteCmd = &cobra.Command{
	Use:   "delete <number>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("note number %q: %w", args[0], types.ErrInvalidID)
		}

		backend, err := attachBackend()
		if err != nil {
			return err
		}
		defer backend.Detach()

		notes, err := backend.Notes()
		if err != nil {
			return err
		}
		if err := notes.Delete(noteDeleteSpace, number); err != nil {
			return fmt.Errorf("delete note: %w", err)
		}
		fmt.Printf("Deleted note %s/%d\n", noteDeleteSpace, number)
		return nil
	},
}

func init() {
	noteDeleteCmd.Flags().StringVar(&noteDeleteSpace, "space", "", "space slug (required)")
	_ = noteDeleteCmd.MarkFlagRequired("space")
}
