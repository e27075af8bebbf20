// Template set command stores a Liquid template on a space.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/render"
	"github.com/plainfield/notespace/pkg/types"
)

var (
	templateSetSpace string
	templateSetKind  string
	templateSetFile  string
)

var templateSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a space's note template",
	Long: `Set stores a Liquid template on a space. The template is parsed
before saving; a template that does not parse is rejected. An empty
--file clears the template so the default structured view applies.

Example:
  notespace template set --space bugs --kind detail --file detail.liquid
  notespace template set --space bugs --kind list --file list.liquid`,
	Args: cobra.NoArgs,
	RunE: runTemplateSet,
}

func init() {
	templateSetCmd.Flags().StringVar(&templateSetSpace, "space", "", "space slug (required)")
	templateSetCmd.Flags().StringVar(&templateSetKind, "kind", "detail", "template kind: detail or list")
	templateSetCmd.Flags().StringVar(&templateSetFile, "file", "", "template file path (empty clears)")
	_ = templateSetCmd.MarkFlagRequired("space")
}

func runTemplateSet(cmd *cobra.Command, args []string) error {
	if templateSetKind != "detail" && templateSetKind != "list" {
		return fmt.Errorf("template kind %q, want detail or list: %w", templateSetKind, types.ErrInvalidData)
	}

	template := ""
	if templateSetFile != "" {
		data, err := os.ReadFile(templateSetFile)
		if err != nil {
			return fmt.Errorf("read template file: %w", err)
		}
		template = string(data)
	}

	if template != "" {
		engine := render.New(newLogger())
		if err := engine.Validate(template); err != nil {
			return err
		}
	}

	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	space, err := getSpace(backend, templateSetSpace)
	if err != nil {
		return err
	}
	if templateSetKind == "detail" {
		space.Templates.NoteDetail = template
	} else {
		space.Templates.NoteList = template
	}

	spaces, err := backend.Spaces()
	if err != nil {
		return err
	}
	if err := spaces.Update(space); err != nil {
		return fmt.Errorf("update space: %w", err)
	}

	if template == "" {
		fmt.Printf("Cleared %s template on space %s\n", templateSetKind, space.Slug)
	} else {
		fmt.Printf("Set %s template on space %s\n", templateSetKind, space.Slug)
	}
	return nil
}
