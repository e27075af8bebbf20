// Note update command applies a partial edit.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/types"
)

var (
	noteUpdateSpace  string
	noteUpdateFields []string
	noteUpdateAs     string
)

var noteUpdateCmd = &cobra.Command{
	Use:   "update <number>",
	Short: "Update a note's fields",
	Long: `Update applies a partial edit: only the fields given with --field
change, everything else keeps its stored value.

Example:
  notespace note update 3 --space bugs --field status=closed`,
	Args: cobra.ExactArgs(1),
	RunE: runNoteUpdate,
}

func init() {
	noteUpdateCmd.Flags().StringVar(&noteUpdateSpace, "space", "", "space slug (required)")
	noteUpdateCmd.Flags().StringArrayVar(&noteUpdateFields, "field", nil, "field value as id=value (repeatable)")
	noteUpdateCmd.Flags().StringVar(&noteUpdateAs, "as", "", "acting username ($me resolves to this user)")
	_ = noteUpdateCmd.MarkFlagRequired("space")
}

func runNoteUpdate(cmd *cobra.Command, args []string) error {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("note number %q: %w", args[0], types.ErrInvalidID)
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	space, err := getSpace(backend, noteUpdateSpace)
	if err != nil {
		return err
	}
	raw, err := parseFieldArgs(noteUpdateFields)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return fmt.Errorf("no fields to update: %w", types.ErrInvalidData)
	}
	rctx, err := mutationContext(backend, noteUpdateAs)
	if err != nil {
		return err
	}

	notes, err := backend.Notes()
	if err != nil {
		return err
	}
	note, err := notes.Update(space, number, raw, rctx)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	if flagJSON {
		return printJSON(note)
	}
	fmt.Printf("Updated note %s/%d\n", space.Slug, note.Number)
	return nil
}
