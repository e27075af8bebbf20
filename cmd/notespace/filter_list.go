// Filter list command.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/query"
)

var filterListSpace string

var filterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a space's saved filters",
	Args:  cobra.NoArgs,
	RunE:  runFilterList,
}

func init() {
	filterListCmd.Flags().StringVar(&filterListSpace, "space", "", "space slug (required)")
	_ = filterListCmd.MarkFlagRequired("space")
}

func runFilterList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	filters, err := backend.Filters()
	if err != nil {
		return err
	}
	all, err := filters.List(filterListSpace)
	if err != nil {
		return fmt.Errorf("list filters: %w", err)
	}

	if flagJSON {
		return printJSON(all)
	}

	if len(all) == 0 {
		fmt.Println("No filters found.")
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tQUERY")
	for _, f := range all {
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.FilterID, f.Title, query.Serialize(f.Conditions))
	}
	return w.Flush()
}
