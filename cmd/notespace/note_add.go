// Note add command creates a note from raw field values.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	noteAddSpace  string
	noteAddFields []string
	noteAddAs     string
)

var noteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Long: `Add creates a note in a space. Field values are given in raw form
with repeated --field flags; fields left out fall back to their schema
defaults. $now and $me defaults resolve at this moment.

Example:
  notespace note add --space bugs --field title="crash on save"
  notespace note add --space bugs --field title=typo --field priority=2 --as mira`,
	Args: cobra.NoArgs,
	RunE: runNoteAdd,
}

func init() {
	noteAddCmd.Flags().StringVar(&noteAddSpace, "space", "", "space slug (required)")
	noteAddCmd.Flags().StringArrayVar(&noteAddFields, "field", nil, "field value as id=value (repeatable)")
	noteAddCmd.Flags().StringVar(&noteAddAs, "as", "", "acting username ($me resolves to this user)")
	_ = noteAddCmd.MarkFlagRequired("space")
}

func runNoteAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	space, err := getSpace(backend, noteAddSpace)
	if err != nil {
		return err
	}
	raw, err := parseFieldArgs(noteAddFields)
	if err != nil {
		return err
	}
	rctx, err := mutationContext(backend, noteAddAs)
	if err != nil {
		return err
	}

	notes, err := backend.Notes()
	if err != nil {
		return err
	}
	note, err := notes.Create(space, raw, rctx.UserID, rctx)
	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}

	if flagJSON {
		return printJSON(note)
	}
	fmt.Printf("Created note %s/%d\n", space.Slug, note.Number)
	return nil
}
