// Note list command with ephemeral and saved filtering.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/query"
	"github.com/plainfield/notespace/pkg/types"
)

var (
	noteListSpace  string
	noteListQuery  string
	noteListFilter string
)

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a space's notes",
	Long: `List prints a space's notes, optionally narrowed by a filter.

--query takes an ephemeral filter string of comma-separated
field:operator:value conditions, values percent-encoded. --filter takes
the ID of a saved filter. Conditions combine with AND.

Example:
  notespace note list --space bugs
  notespace note list --space bugs --query status:eq:open
  notespace note list --space bugs --query 'status:eq:open,priority:gte:3'
  notespace note list --space bugs --filter 0197a3be-...`,
	Args: cobra.NoArgs,
	RunE: runNoteList,
}

func init() {
	noteListCmd.Flags().StringVar(&noteListSpace, "space", "", "space slug (required)")
	noteListCmd.Flags().StringVar(&noteListQuery, "query", "", "ephemeral filter string")
	noteListCmd.Flags().StringVar(&noteListFilter, "filter", "", "saved filter ID")
	_ = noteListCmd.MarkFlagRequired("space")
}

func runNoteList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	space, err := getSpace(backend, noteListSpace)
	if err != nil {
		return err
	}
	notes, err := backend.Notes()
	if err != nil {
		return err
	}

	conds := query.Parse(noteListQuery)
	listFields := space.ListFields

	if noteListFilter != "" {
		filters, err := backend.Filters()
		if err != nil {
			return err
		}
		saved, err := filters.Get(noteListFilter)
		if err != nil {
			return err
		}
		if saved.Space != space.Slug {
			return fmt.Errorf("filter %q belongs to space %q: %w", saved.Title, saved.Space, types.ErrInvalidID)
		}
		conds = append(conds, saved.Conditions...)
		if len(saved.ListFields) > 0 {
			listFields = saved.ListFields
		}
	}

	matched, err := notes.ListFiltered(space.Slug, conds)
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}

	if flagJSON {
		return printJSON(matched)
	}

	if len(matched) == 0 {
		fmt.Println("No notes found.")
		return nil
	}
	view := *space
	view.ListFields = listFields
	printNoteList(&view, matched)
	fmt.Printf("Total: %d note(s)\n", len(matched))
	return nil
}
