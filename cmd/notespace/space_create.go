// Space create command.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/types"
)

var (
	spaceCreateTitle       string
	spaceCreateDescription string
)

var spaceCreateCmd = &cobra.Command{
	Use:   "create <slug>",
	Short: "Create a new space",
	Long: `Create registers a new space under the given slug.

Fields are added afterwards with "notespace field add".

Example:
  notespace space create bugs --title "Bug Tracker"
  notespace space create ideas --title "Ideas" --description "Product ideas"`,
	Args: cobra.ExactArgs(1),
	RunE: runSpaceCreate,
}

func init() {
	spaceCreateCmd.Flags().StringVar(&spaceCreateTitle, "title", "", "display title (required)")
	spaceCreateCmd.Flags().StringVar(&spaceCreateDescription, "description", "", "space description")
	_ = spaceCreateCmd.MarkFlagRequired("title")
}

func runSpaceCreate(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	spaces, err := backend.Spaces()
	if err != nil {
		return err
	}

	space := &types.Space{
		Slug:        args[0],
		Title:       spaceCreateTitle,
		Description: spaceCreateDescription,
	}
	if err := spaces.Create(space); err != nil {
		return fmt.Errorf("create space: %w", err)
	}

	if flagJSON {
		return printJSON(space)
	}
	fmt.Printf("Created space: %s\n", space.Slug)
	return nil
}
