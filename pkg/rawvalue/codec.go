package rawvalue

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plainfield/notespace/pkg/types"
)

// tagSeparator joins tag lists in form display; Decode splits on the bare
// comma and trims, so both "a,b" and "a, b" parse back.
const tagSeparator = ", "

// Encode converts a typed value to its form/wire string. Sentinel strings
// ($now on datetime, $me on user) pass through untouched so a form can
// display them unresolved. Tags are comma-joined; the JSON-array form used
// in filter values is produced by EncodeQueryValue.
func Encode(fieldType string, value any) (string, error) {
	if !types.IsValidType(fieldType) {
		return "", fmt.Errorf("%w: %q", types.ErrUnknownFieldType, fieldType)
	}
	if value == nil {
		return "", nil
	}

	switch fieldType {
	case types.FieldBoolean:
		switch v := value.(type) {
		case bool:
			return strconv.FormatBool(v), nil
		case string:
			if v == "true" || v == "false" {
				return v, nil
			}
		}
		return "", encodeErr(fieldType, value)

	case types.FieldTags:
		tags, err := types.StringSlice(value)
		if err != nil {
			return "", encodeErr(fieldType, value)
		}
		return strings.Join(tags, tagSeparator), nil

	case types.FieldDatetime:
		switch v := value.(type) {
		case time.Time:
			return v.UTC().Format(time.RFC3339), nil
		case string:
			return v, nil
		}
		return "", encodeErr(fieldType, value)

	case types.FieldInt:
		switch v := value.(type) {
		case int:
			return strconv.Itoa(v), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		case float64:
			return strconv.FormatInt(int64(v), 10), nil
		case string:
			return v, nil
		}
		return "", encodeErr(fieldType, value)

	case types.FieldFloat:
		switch v := value.(type) {
		case float64:
			return strconv.FormatFloat(v, 'g', -1, 64), nil
		case int:
			return strconv.Itoa(v), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		case string:
			return v, nil
		}
		return "", encodeErr(fieldType, value)

	default:
		// string, markdown, string_choice, user, image carry plain strings.
		if s, ok := value.(string); ok {
			return s, nil
		}
		return "", encodeErr(fieldType, value)
	}
}

// EncodeQueryValue converts a typed value to the string form used inside
// filter conditions. Collection-valued types serialize as a JSON array
// literal; everything else matches Encode.
func EncodeQueryValue(fieldType string, value any) (string, error) {
	if fieldType == types.FieldTags {
		tags, err := types.StringSlice(value)
		if err != nil {
			if s, ok := value.(string); ok {
				tags = []string{s}
			} else {
				return "", encodeErr(fieldType, value)
			}
		}
		b, err := json.Marshal(tags)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return Encode(fieldType, value)
}

// Decode converts a raw wire string back to a typed value. Numeric and
// datetime strings that do not parse are rejected with ErrInvalidFieldValue.
// Unresolved sentinels pass through unchanged; callers resolve them before
// decoding at the mutation boundary (see Resolve).
func Decode(fieldType, raw string) (any, error) {
	if !types.IsValidType(fieldType) {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownFieldType, fieldType)
	}

	switch fieldType {
	case types.FieldBoolean:
		switch raw {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, decodeErr(fieldType, raw)

	case types.FieldTags:
		if raw == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, ",")
		tags := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				tags = append(tags, p)
			}
		}
		return tags, nil

	case types.FieldUser:
		if raw == "" || raw == types.SentinelMe {
			return raw, nil
		}
		if _, err := uuid.Parse(raw); err != nil {
			return nil, decodeErr(fieldType, raw)
		}
		return raw, nil

	case types.FieldDatetime:
		if raw == "" || raw == types.SentinelNow {
			return raw, nil
		}
		t, err := types.ParseTimestamp(raw)
		if err != nil {
			return nil, decodeErr(fieldType, raw)
		}
		return t, nil

	case types.FieldInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, decodeErr(fieldType, raw)
		}
		return n, nil

	case types.FieldFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, decodeErr(fieldType, raw)
		}
		return f, nil

	default:
		return raw, nil
	}
}

// DecodeField decodes a raw string for a specific schema field, naming the
// field in any error and enforcing the field's options (choice membership,
// numeric bounds).
func DecodeField(field types.SpaceField, raw string) (any, error) {
	v, err := Decode(field.Type, raw)
	if err != nil {
		return nil, fmt.Errorf("field %q: %w", field.ID, err)
	}
	if field.Options == nil {
		return v, nil
	}

	switch field.Type {
	case types.FieldStringChoice:
		if s, ok := v.(string); ok && s != "" && len(field.Options.Values) > 0 {
			if !containsString(field.Options.Values, s) {
				return nil, fmt.Errorf("field %q: %q not among allowed values: %w",
					field.ID, s, types.ErrInvalidFieldValue)
			}
		}
	case types.FieldInt:
		if n, ok := v.(int64); ok {
			if err := checkBounds(field, float64(n)); err != nil {
				return nil, err
			}
		}
	case types.FieldFloat:
		if f, ok := v.(float64); ok {
			if err := checkBounds(field, f); err != nil {
				return nil, err
			}
		}
	}
	return v, nil
}

func checkBounds(field types.SpaceField, v float64) error {
	if field.Options.Min != nil && v < *field.Options.Min {
		return fmt.Errorf("field %q: %v below minimum %v: %w",
			field.ID, v, *field.Options.Min, types.ErrInvalidFieldValue)
	}
	if field.Options.Max != nil && v > *field.Options.Max {
		return fmt.Errorf("field %q: %v above maximum %v: %w",
			field.ID, v, *field.Options.Max, types.ErrInvalidFieldValue)
	}
	return nil
}

// Display formats a typed value for human-readable output. This is the
// rendering form used by the template engine's field_value filter, distinct
// from the wire form Encode produces.
func Display(fieldType string, value any) string {
	if value == nil {
		return "-"
	}

	switch fieldType {
	case types.FieldBoolean:
		if b, ok := value.(bool); ok {
			if b {
				return "Yes"
			}
			return "No"
		}
		if s, ok := value.(string); ok && s == "true" {
			return "Yes"
		}
		return "No"

	case types.FieldTags, types.FieldStringChoice:
		if tags, err := types.StringSlice(value); err == nil {
			return strings.Join(tags, tagSeparator)
		}
		return fmt.Sprint(value)

	case types.FieldDatetime:
		switch v := value.(type) {
		case time.Time:
			return v.UTC().Format("2006-01-02 15:04 MST")
		case string:
			if t, err := types.ParseTimestamp(v); err == nil {
				return t.Format("2006-01-02 15:04 MST")
			}
			return v
		}
		return fmt.Sprint(value)

	case types.FieldFloat:
		if f, ok := value.(float64); ok {
			return strconv.FormatFloat(f, 'g', -1, 64)
		}
		return fmt.Sprint(value)

	default:
		return fmt.Sprint(value)
	}
}

func encodeErr(fieldType string, value any) error {
	return fmt.Errorf("cannot encode %T as %s: %w", value, fieldType, types.ErrInvalidFieldValue)
}

func decodeErr(fieldType, raw string) error {
	return fmt.Errorf("cannot decode %q as %s: %w", raw, fieldType, types.ErrInvalidFieldValue)
}

func containsString(vs []string, s string) bool {
	for _, v := range vs {
		if v == s {
			return true
		}
	}
	return false
}
