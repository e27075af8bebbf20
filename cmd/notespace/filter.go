// Filter command group.
package main

import "github.com/spf13/cobra"

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Manage saved filters",
}

func init() {
	filterCmd.AddCommand(filterSaveCmd)
	filterCmd.AddCommand(filterListCmd)
	filterCmd.AddCommand(filterDeleteCmd)
}
