package types

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Field types. The set is closed; the registry functions in this file are
// the single source of truth for per-type behavior.
const (
	FieldString       = "string"
	FieldMarkdown     = "markdown"
	FieldBoolean      = "boolean"
	FieldStringChoice = "string_choice"
	FieldTags         = "tags"
	FieldUser         = "user"
	FieldDatetime     = "datetime"
	FieldInt          = "int"
	FieldFloat        = "float"
	FieldImage        = "image"
)

// Filter operators usable in query conditions.
const (
	OpEq       = "eq"
	OpNe       = "ne"
	OpGt       = "gt"
	OpGte      = "gte"
	OpLt       = "lt"
	OpLte      = "lte"
	OpIn       = "in"
	OpNin      = "nin"
	OpAll      = "all"
	OpContains = "contains"
)

// Sentinel raw-value literals. They travel through string-typed channels and
// are resolved exactly once, at the record mutation boundary.
const (
	SentinelNow = "$now"
	SentinelMe  = "$me"
)

// / fieldOperators maps each field type to its valid operators. Order matters:
// the first element is the default operator used when building conditions and
// when repairing an operator that became invalid for its field's type.
var fieldOperators = map[string][]string{
	FieldString:       {OpEq, OpNe, OpContains},
	FieldMarkdown:     {OpEq, OpNe, OpContains},
	FieldBoolean:      {OpEq, OpNe},
	FieldStringChoice: {OpEq, OpNe, OpIn, OpNin},
	FieldTags:         {OpIn, OpNin, OpAll, OpContains},
	FieldUser:         {OpEq, OpNe, OpIn, OpNin},
	FieldDatetime:     {OpEq, OpNe, OpGt, OpGte, OpLt, OpLte},
	FieldInt:          {OpEq, OpNe, OpGt, OpGte, OpLt, OpLte},
	FieldFloat:        {OpEq, OpNe, OpGt, OpGte, OpLt, OpLte},
	FieldImage:        {OpEq, OpNe},
}

// collectionOperators take a JSON array of strings as their condition value.
var collectionOperators = map[string]bool{
	OpIn:  true,
	OpNin: true,
	OpAll: true,
}

// IsValidType reports whether t is a recognized field type.
func IsValidType(t string) bool {
	_, ok := fieldOperators[t]
	return ok
}

// IsCollectionOperator reports whether op takes an array-valued operand.
func IsCollectionOperator(op string) bool {
	return collectionOperators[op]
}

// Operators returns the ordered operator set for a field type. The first
// element is the type's default operator. Returns ErrUnknownFieldType for
// unrecognized types; this is a configuration bug, never coerced.
func Operators(fieldType string) ([]string, error) {
	ops, ok := fieldOperators[fieldType]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFieldType, fieldType)
	}
	out := make([]string, len(ops))
	copy(out, ops)
	return out, nil
}

// DefaultOperator returns the first operator for a field type.
func DefaultOperator(fieldType string) (string, error) {
	ops, ok := fieldOperators[fieldType]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFieldType, fieldType)
	}
	return ops[0], nil
}

// IsValidOperator reports whether op is valid for the given field type.
// Returns ErrUnknownFieldType for unrecognized types.
func IsValidOperator(fieldType, op string) (bool, error) {
	ops, ok := fieldOperators[fieldType]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownFieldType, fieldType)
	}
	for _, o := range ops {
		if o == op {
			return true, nil
		}
	}
	return false, nil
}

// OperatorCatalog returns the full field-type to operator-list map. This is
// the canonical definition mirrored by the field-operator metadata endpoint.
func OperatorCatalog() map[string][]string {
	out := make(map[string][]string, len(fieldOperators))
	for t := range fieldOperators {
		ops, _ := Operators(t)
		out[t] = ops
	}
	return out
}

// FieldOptions carries the type-specific configuration of a space field.
type FieldOptions struct {
	Values []string `json:"values,omitempty"` // string_choice: allowed values
	Min    *float64 `json:"min,omitempty"`    // int/float: inclusive lower bound
	Max    *float64 `json:"max,omitempty"`    // int/float: inclusive upper bound
}

// SpaceField is one named, typed slot in a space's record schema.
type SpaceField struct {
	ID       string        `json:"id"`   // Unique within the space; stable identifier.
	Type     string        `json:"type"` // One of the Field constants.
	Required bool          `json:"required,omitempty"`
	Default  any           `json:"default,omitempty"`
	Options  *FieldOptions `json:"options,omitempty"`
}

// Validate checks the field definition against the registry: known type,
// default matching the type's value shape, options matching the type's
// options shape.
func (f SpaceField) Validate() error {
	if !IsValidType(f.Type) {
		return fmt.Errorf("%w: %q", ErrUnknownFieldType, f.Type)
	}
	if f.ID == "" {
		return fmt.Errorf("field must have an id: %w", ErrInvalidData)
	}
	if err := f.validateOptions(); err != nil {
		return err
	}
	if f.Default != nil {
		if err := f.validateDefault(); err != nil {
			return err
		}
	}
	return nil
}

func (f SpaceField) validateOptions() error {
	if f.Options == nil {
		return nil
	}
	switch f.Type {
	case FieldStringChoice:
		if len(f.Options.Values) == 0 {
			return fmt.Errorf("field %q: string_choice values must be non-empty: %w", f.ID, ErrInvalidOptions)
		}
	case FieldInt, FieldFloat:
		if f.Options.Min != nil && f.Options.Max != nil && *f.Options.Min > *f.Options.Max {
			return fmt.Errorf("field %q: min exceeds max: %w", f.ID, ErrInvalidOptions)
		}
	}
	return nil
}

// validateDefault checks the default value structurally against the field
// type. Defaults arrive either as typed values or as raw strings (the wire
// form), so both shapes are accepted where the wire form is unambiguous.
func (f SpaceField) validateDefault() error {
	switch f.Type {
	case FieldString, FieldMarkdown:
		if _, ok := f.Default.(string); !ok {
			return f.defaultErr("want string")
		}
	case FieldBoolean:
		switch d := f.Default.(type) {
		case bool:
		case string:
			if d != "true" && d != "false" {
				return f.defaultErr(`want bool or "true"/"false"`)
			}
		default:
			return f.defaultErr(`want bool or "true"/"false"`)
		}
	case FieldStringChoice:
		s, ok := f.Default.(string)
		if !ok {
			return f.defaultErr("want string")
		}
		if f.Options != nil && len(f.Options.Values) > 0 && !contains(f.Options.Values, s) {
			return f.defaultErr("not among allowed values")
		}
	case FieldTags:
		if _, err := toStringSlice(f.Default); err != nil {
			return f.defaultErr("want string array")
		}
	case FieldUser:
		s, ok := f.Default.(string)
		if !ok {
			return f.defaultErr("want UUID or $me")
		}
		if s != SentinelMe {
			if _, err := uuid.Parse(s); err != nil {
				return f.defaultErr("want UUID or $me")
			}
		}
	case FieldDatetime:
		s, ok := f.Default.(string)
		if !ok {
			return f.defaultErr("want ISO timestamp or $now")
		}
		if s != SentinelNow {
			if _, err := ParseTimestamp(s); err != nil {
				return f.defaultErr("want ISO timestamp or $now")
			}
		}
	case FieldInt:
		switch d := f.Default.(type) {
		case int, int64:
		case float64:
			if d != float64(int64(d)) {
				return f.defaultErr("want integer")
			}
		case string:
			if _, err := strconv.ParseInt(d, 10, 64); err != nil {
				return f.defaultErr("want integer")
			}
		default:
			return f.defaultErr("want integer")
		}
	case FieldFloat:
		switch d := f.Default.(type) {
		case int, int64, float64:
		case string:
			if _, err := strconv.ParseFloat(d, 64); err != nil {
				return f.defaultErr("want number")
			}
		default:
			return f.defaultErr("want number")
		}
	case FieldImage:
		return f.defaultErr("image fields take no default")
	}
	return nil
}

func (f SpaceField) defaultErr(reason string) error {
	return fmt.Errorf("field %q: %s: %w", f.ID, reason, ErrInvalidDefault)
}

// Timestamp layouts accepted on the wire. The first is also the canonical
// encoding; bare layouts (no zone) are treated as UTC.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses a wire-format timestamp. Strings without a zone
// suffix are interpreted as UTC, matching how the backend stores them.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q: %w", s, ErrInvalidFieldValue)
}

func contains(vs []string, s string) bool {
	for _, v := range vs {
		if v == s {
			return true
		}
	}
	return false
}

// toStringSlice normalizes []string and JSON-decoded []any forms.
func toStringSlice(v any) ([]string, error) {
	switch vv := v.(type) {
	case []string:
		return vv, nil
	case []any:
		out := make([]string, 0, len(vv))
		for _, e := range vv {
			s, ok := e.(string)
			if !ok {
				return nil, fmt.Errorf("non-string element: %w", ErrInvalidData)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("not a string array: %w", ErrInvalidData)
	}
}

// StringSlice exposes toStringSlice for packages that handle JSON-decoded
// field values (tags arrive as []any after a round trip through JSON).
func StringSlice(v any) ([]string, error) {
	return toStringSlice(v)
}
