// Space list command.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var spaceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all spaces",
	Args:  cobra.NoArgs,
	RunE:  runSpaceList,
}

func runSpaceList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	spaces, err := backend.Spaces()
	if err != nil {
		return err
	}
	all, err := spaces.List()
	if err != nil {
		return fmt.Errorf("list spaces: %w", err)
	}

	if flagJSON {
		return printJSON(all)
	}

	if len(all) == 0 {
		fmt.Println("No spaces found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tTITLE\tFIELDS")
	for _, s := range all {
		fmt.Fprintf(w, "%s\t%s\t%d\n", s.Slug, s.Title, len(s.Fields))
	}
	w.Flush()
	fmt.Printf("Total: %d space(s)\n", len(all))
	return nil
}
