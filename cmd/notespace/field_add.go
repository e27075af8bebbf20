// Field add command extends a space's schema.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/plainfield/notespace/pkg/rawvalue"
	"github.com/plainfield/notespace/pkg/types"
)

var (
	fieldAddSpace    string
	fieldAddType     string
	fieldAddRequired bool
	fieldAddDefault  string
	fieldAddValues   string
	fieldAddMin      float64
	fieldAddMax      float64
)

var fieldAddCmd = &cobra.Command{
	Use:   "add <field-id>",
	Short: "Add a field to a space's schema",
	Long: `Add extends a space's schema with a new typed field.

Defaults are given in raw form; $now (datetime) and $me (user) stay
unresolved until a note is created.

Example:
  notespace field add title --space bugs --type string --required
  notespace field add status --space bugs --type string_choice --values open,closed --default open
  notespace field add reported_at --space bugs --type datetime --default '$now'`,
	Args: cobra.ExactArgs(1),
	RunE: runFieldAdd,
}

func init() {
	fieldAddCmd.Flags().StringVar(&fieldAddSpace, "space", "", "space slug (required)")
	fieldAddCmd.Flags().StringVar(&fieldAddType, "type", "", "field type (required; see 'notespace operators' for types)")
	fieldAddCmd.Flags().BoolVar(&fieldAddRequired, "required", false, "reject notes missing this field")
	fieldAddCmd.Flags().StringVar(&fieldAddDefault, "default", "", "default value in raw form")
	fieldAddCmd.Flags().StringVar(&fieldAddValues, "values", "", "comma-separated allowed values (string_choice)")
	fieldAddCmd.Flags().Float64Var(&fieldAddMin, "min", 0, "minimum value (int, float)")
	fieldAddCmd.Flags().Float64Var(&fieldAddMax, "max", 0, "maximum value (int, float)")
	_ = fieldAddCmd.MarkFlagRequired("space")
	_ = fieldAddCmd.MarkFlagRequired("type")
}

func runFieldAdd(cmd *cobra.Command, args []string) error {
	backend, err := attachBackend()
	if err != nil {
		return err
	}
	defer backend.Detach()

	space, err := getSpace(backend, fieldAddSpace)
	if err != nil {
		return err
	}

	field := types.SpaceField{
		ID:       args[0],
		Type:     fieldAddType,
		Required: fieldAddRequired,
	}

	options := &types.FieldOptions{}
	hasOptions := false
	if fieldAddValues != "" {
		for _, v := range strings.Split(fieldAddValues, ",") {
			if v = strings.TrimSpace(v); v != "" {
				options.Values = append(options.Values, v)
			}
		}
		hasOptions = true
	}
	if cmd.Flags().Changed("min") {
		lo := fieldAddMin
		options.Min = &lo
		hasOptions = true
	}
	if cmd.Flags().Changed("max") {
		hi := fieldAddMax
		options.Max = &hi
		hasOptions = true
	}
	if hasOptions {
		field.Options = options
	}

	if fieldAddDefault != "" {
		def, err := rawvalue.DecodeField(field, fieldAddDefault)
		if err != nil {
			return err
		}
		field.Default = def
	}

	space.Fields = append(space.Fields, field)
	spaces, err := backend.Spaces()
	if err != nil {
		return err
	}
	if err := spaces.Update(space); err != nil {
		return fmt.Errorf("update space: %w", err)
	}

	if flagJSON {
		return printJSON(field)
	}
	fmt.Printf("Added field %s (%s) to space %s\n", field.ID, field.Type, space.Slug)
	return nil
}
