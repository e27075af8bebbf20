// Field list command.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/types"
)

var fieldListSpace string

var fieldListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a space's fields with their operators",
	Args:  cobra.NoArgs,
	RunE:  runFieldList,
}

func init() {
	fieldListCmd.Flags().StringVar(&fieldListSpace, "space", "", "space slug (required)")
	_ = fieldListCmd.MarkFlagRequired("space")
}

func runFieldList(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	space, err := getSpace(backend, fieldListSpace)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(space.Fields)
	}

	if len(space.Fields) == 0 {
		fmt.Println("No fields defined.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tTYPE\tREQUIRED\tOPERATORS")
	for _, f := range space.Fields {
		ops, err := types.Operators(f.Type)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\n", f.ID, f.Type, f.Required, strings.Join(ops, ", "))
	}
	return w.Flush()
}
