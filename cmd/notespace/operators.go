// Operators command lists the filter operators each field type accepts.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/types"
)

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List filter operators by field type",
	Long: `Operators prints the filter operators each field type accepts.
The first operator listed for a type is its default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog := types.OperatorCatalog()
		if flagJSON {
			return printJSON(catalog)
		}

		fieldTypes := make([]string, 0, len(catalog))
		for t := range catalog {
			fieldTypes = append(fieldTypes, t)
		}
		sort.Strings(fieldTypes)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TYPE\tOPERATORS")
		for _, t := range fieldTypes {
			fmt.Fprintf(w, "%s\t%s\n", t, strings.Join(catalog[t], ", "))
		}
		return w.Flush()
	},
}
