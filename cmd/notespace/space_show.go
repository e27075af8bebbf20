// Space show command.
package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/rawvalue"
	"github.com/plainfield/notespace/pkg/types"
)

var spaceShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Show a space's schema",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpaceShow,
}

func runSpaceShow(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	space, err := getSpace(backend, args[0])
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(space)
	}

	fmt.Printf("%s (%s)\n", space.Title, space.Slug)
	if space.Description != "" {
		fmt.Println(space.Description)
	}
	if len(space.Fields) == 0 {
		fmt.Println("No fields defined.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tTYPE\tREQUIRED\tDEFAULT\tOPTIONS")
	for _, f := range space.Fields {
		def := ""
		if f.Default != nil {
			def = rawvalue.Display(f.Type, f.Default)
		}
		fmt.Fprintf(w, "%s\t%s\t%v\t%s\t%s\n", f.ID, f.Type, f.Required, def, optionsText(f.Options))
	}
	return w.Flush()
}

func optionsText(o *types.FieldOptions) string {
	if o == nil {
		return ""
	}
	parts := []string{}
	if len(o.Values) > 0 {
		parts = append(parts, strings.Join(o.Values, "|"))
	}
	if o.Min != nil {
		parts = append(parts, fmt.Sprintf("min=%v", *o.Min))
	}
	if o.Max != nil {
		parts = append(parts, fmt.Sprintf("max=%v", *o.Max))
	}
	return strings.Join(parts, " ")
}
