// Field delete command removes a field from a space's schema.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/types"
)

var fieldDeleteSpace string

var fieldDeleteCmd = &cobra.Command{
	Use:   "delete <field-id>",
	Short: "Remove a field from a space's schema",
	Long: `Delete removes a field from the schema. Values already stored on
notes are not touched; they survive until overwritten and keep showing
up in note output.`,
	Args: cobra.ExactArgs(1),
	RunE: runFieldDelete,
}

func init() {
	fieldDeleteCmd.Flags().StringVar(&fieldDeleteSpace, "space", "", "space slug (required)")
	_ = fieldDeleteCmd.MarkFlagRequired("space")
}

func runFieldDelete(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	space, err := getSpace(backend, fieldDeleteSpace)
	if err != nil {
		return err
	}

	fieldID := args[0]
	kept := space.Fields[:0]
	found := false
	for _, f := range space.Fields {
		if f.ID == fieldID {
			found = true
			continue
		}
		kept = append(kept, f)
	}
	if !found {
		return fmt.Errorf("field %q: %w", fieldID, types.ErrUnknownField)
	}
	space.Fields = kept

	spaces, err := backend.Spaces()
	if err != nil {
		return err
	}
	if err := spaces.Update(space); err != nil {
		return fmt.Errorf("update space: %w", err)
	}

	fmt.Printf("Removed field %s from space %s\n", fieldID, space.Slug)
	return nil
}
