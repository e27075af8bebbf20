// Filter save command persists an ephemeral query as a named view.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/query"
	"github.com/plainfield/notespace/pkg/types"
)

var (
	filterSaveSpace       string
	filterSaveTitle       string
	filterSaveDescription string
	filterSaveQuery       string
	filterSaveSort        []string
	filterSaveListFields  string
)

var filterSaveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save a filter",
	Long: `Save persists a query string as a named filter on a space.

--sort takes field ids, prefix with - for descending. --list-fields
overrides the space's summary columns when listing through this filter.

Example:
  notespace filter save --space bugs --title "Urgent open" \
    --query 'status:eq:open,labels:in:%5B%22urgent%22%5D' \
    --sort -priority --list-fields title,priority`,
	Args: cobra.NoArgs,
	RunE: runFilterSave,
}

func init() {
	filterSaveCmd.Flags().StringVar(&filterSaveSpace, "space", "", "space slug (required)")
	filterSaveCmd.Flags().StringVar(&filterSaveTitle, "title", "", "filter title (required)")
	filterSaveCmd.Flags().StringVar(&filterSaveDescription, "description", "", "filter description")
	filterSaveCmd.Flags().StringVar(&filterSaveQuery, "query", "", "filter query string")
	filterSaveCmd.Flags().StringArrayVar(&filterSaveSort, "sort", nil, "sort field, -field for descending (repeatable)")
	filterSaveCmd.Flags().StringVar(&filterSaveListFields, "list-fields", "", "comma-separated summary fields")
	_ = filterSaveCmd.MarkFlagRequired("space")
	_ = filterSaveCmd.MarkFlagRequired("title")
}

func runFilterSave(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	filter := &types.Filter{
		Space:       filterSaveSpace,
		Title:       filterSaveTitle,
		Description: filterSaveDescription,
		Conditions:  query.Parse(filterSaveQuery),
	}
	for _, s := range filterSaveSort {
		if field := strings.TrimPrefix(s, "-"); field != "" {
			filter.Sort = append(filter.Sort, types.SortField{
				Field:      field,
				Descending: strings.HasPrefix(s, "-"),
			})
		}
	}
	if filterSaveListFields != "" {
		for _, f := range strings.Split(filterSaveListFields, ",") {
			if f = strings.TrimSpace(f); f != "" {
				filter.ListFields = append(filter.ListFields, f)
			}
		}
	}

	filters, err := backend.Filters()
	if err != nil {
		return err
	}
	saved, err := filters.Create(filter)
	if err != nil {
		return fmt.Errorf("save filter: %w", err)
	}

	if flagJSON {
		return printJSON(saved)
	}
	fmt.Printf("Saved filter %q (%s)\n", saved.Title, saved.FilterID)
	return nil
}
