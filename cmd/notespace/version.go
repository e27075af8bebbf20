// Version command for the notespace CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/notespace"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the notespace version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("notespace", notespace.Version)
	},
}
