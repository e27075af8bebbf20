// Space command group.
package main

import "github.com/spf13/cobra"

var spaceCmd = &cobra.Command{
	Use:   "space",
	Short: "Manage spaces",
}

func init() {
	spaceCmd.AddCommand(spaceCreateCmd)
	spaceCmd.AddCommand(spaceListCmd)
	spaceCmd.AddCommand(spaceShowCmd)
	spaceCmd.AddCommand(spaceDeleteCmd)
}
