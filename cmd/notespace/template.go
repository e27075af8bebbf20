// Template command group.
package main

import "github.com/spf13/cobra"

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage a space's display templates",
}

func init() {
	templateCmd.AddCommand(templateSetCmd)
	templateCmd.AddCommand(templateRenderCmd)
}
