package query

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/plainfield/notespace/pkg/types"
)

// comparisonOperators take a numeric operand when one parses.
var comparisonOperators = map[string]bool{
	types.OpGt:  true,
	types.OpGte: true,
	types.OpLt:  true,
	types.OpLte: true,
}

// Parse splits a raw query string into conditions. Conditions are separated
// by commas; within a condition the first two colons delimit field and
// operator, and the rest of the string is the value, so decoded values may
// themselves contain colons. A condition missing its operator or value
// segment is dropped; parsing never fails the whole query.
func Parse(raw string) []types.FilterCondition {
	if raw == "" {
		return nil
	}

	var conds []types.FilterCondition
	for _, chunk := range strings.Split(raw, ",") {
		if cond, ok := parseCondition(chunk); ok {
			conds = append(conds, cond)
		}
	}
	return conds
}

func parseCondition(chunk string) (types.FilterCondition, bool) {
	parts := strings.SplitN(chunk, ":", 3)
	if len(parts) < 3 || parts[0] == "" || parts[1] == "" {
		return types.FilterCondition{}, false
	}

	decoded, err := url.QueryUnescape(parts[2])
	if err != nil {
		return types.FilterCondition{}, false
	}

	return types.FilterCondition{
		Field:    parts[0],
		Operator: parts[1],
		Value:    parseValue(parts[1], decoded),
	}, true
}

// parseValue types a decoded value string by operator. Collection operators
// decode a JSON array; a malformed array keeps the raw string and Serialize
// canonicalizes it into a single-element array later. Comparison operators
// carry numbers when the operand parses as one.
func parseValue(op, decoded string) any {
	if types.IsCollectionOperator(op) {
		var arr []string
		if err := json.Unmarshal([]byte(decoded), &arr); err == nil {
			return arr
		}
		return decoded
	}
	if comparisonOperators[op] {
		if n, err := strconv.ParseInt(decoded, 10, 64); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(decoded, 64); err == nil {
			return f
		}
	}
	return decoded
}

// Serialize renders conditions in canonical form: values are always
// percent-encoded, collection values always appear as JSON arrays.
// parse(serialize(parse(s))) is idempotent; byte-for-byte reproduction of an
// arbitrary hand-written s is not guaranteed.
func Serialize(conds []types.FilterCondition) string {
	chunks := make([]string, 0, len(conds))
	for _, c := range conds {
		chunks = append(chunks, serializeCondition(c))
	}
	return strings.Join(chunks, ",")
}

func serializeCondition(c types.FilterCondition) string {
	return c.Field + ":" + c.Operator + ":" + url.QueryEscape(valueString(c.Operator, c.Value))
}

func valueString(op string, v any) string {
	if types.IsCollectionOperator(op) {
		arr, err := types.StringSlice(v)
		if err != nil {
			arr = []string{scalarString(v)}
		}
		b, err := json.Marshal(arr)
		if err != nil {
			return "[]"
		}
		return string(b)
	}
	return scalarString(v)
}

func scalarString(v any) string {
	switch vv := v.(type) {
	case nil:
		return ""
	case string:
		return vv
	case int64:
		return strconv.FormatInt(vv, 10)
	case int:
		return strconv.Itoa(vv)
	case float64:
		return strconv.FormatFloat(vv, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(vv)
	default:
		return fmt.Sprint(vv)
	}
}

// Remove drops every condition in raw that is semantically equal to cond and
// returns the remaining query. The second return is false when nothing
// remains; callers interpret that as "clear the filter".
func Remove(raw string, cond types.FilterCondition) (string, bool) {
	target := serializeCondition(cond)

	var kept []string
	for _, chunk := range strings.Split(raw, ",") {
		parsed, ok := parseCondition(chunk)
		if ok && serializeCondition(parsed) == target {
			continue
		}
		kept = append(kept, chunk)
	}
	if len(kept) == 0 {
		return "", false
	}
	return strings.Join(kept, ","), true
}

// clickableTypes maps the field types whose rendered values are filter
// triggers to nothing in particular; membership is the point. All other
// types are unfilterable by click and Build reports not-ok.
var clickableTypes = map[string]bool{
	types.FieldTags:         true,
	types.FieldStringChoice: true,
	types.FieldUser:         true,
}

// Build produces a single condition string for a clicked field value using
// the type's default operator from the registry. The second return is false
// when the field type is not clickable; callers let the click fall through
// to default navigation.
func Build(fieldID, fieldType string, value any) (string, bool) {
	if fieldID == "" || !clickableTypes[fieldType] {
		return "", false
	}
	op, err := types.DefaultOperator(fieldType)
	if err != nil {
		return "", false
	}

	cond := types.FilterCondition{Field: fieldID, Operator: op, Value: value}
	return serializeCondition(cond), true
}

// RepairOperator resets a condition's operator to the default for newType
// when the current operator is not valid for it. A condition is never left
// dangling on an invalid operator after its field changes.
func RepairOperator(cond *types.FilterCondition, newType string) error {
	valid, err := types.IsValidOperator(newType, cond.Operator)
	if err != nil {
		return err
	}
	if !valid {
		def, err := types.DefaultOperator(newType)
		if err != nil {
			return err
		}
		cond.Operator = def
	}
	return nil
}
