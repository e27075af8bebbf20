// Note get command.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/types"
)

var noteGetSpace string

var noteGetCmd = &cobra.Command{
	Use:   "get <number>",
	Short: "Show a note",
	Long: `Get prints a note's fields in the default structured view.
Use "notespace template render" to see it through the space's templates.`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteGet,
}

func init() {
	noteGetCmd.Flags().StringVar(&noteGetSpace, "space", "", "space slug (required)")
	_ = noteGetCmd.MarkFlagRequired("space")
}

func runNoteGet(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("note number %q: %w", args[0], types.ErrInvalidID)
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	space, err := getSpace(backend, noteGetSpace)
	if err != nil {
		return err
	}
	notes, err := backend.Notes()
	if err != nil {
		return err
	}
	note, err := notes.Get(space.Slug, number)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(note)
	}
	printNote(space, note)
	return nil
}
