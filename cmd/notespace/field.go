// Field command group.
package main

import "github.com/spf13/cobra"

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Manage a space's field schema",
}

func init() {
	fieldCmd.AddCommand(fieldAddCmd)
	fieldCmd.AddCommand(fieldListCmd)
	fieldCmd.AddCommand(fieldDeleteCmd)
}
