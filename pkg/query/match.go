package query

import (
	"strconv"
	"strings"
	"time"

	"github.com/plainfield/notespace/pkg/types"
)

// Match reports whether a note's field map satisfies every condition
// (conditions are AND-combined; there is no OR or grouping in the grammar).
// A missing or nil field value satisfies only the negative operators.
func Match(conds []types.FilterCondition, fields map[string]any) bool {
	for _, c := range conds {
		if !matchCondition(c, fields[c.Field]) {
			return false
		}
	}
	return true
}

func matchCondition(c types.FilterCondition, v any) bool {
	if v == nil {
		return c.Operator == types.OpNe || c.Operator == types.OpNin
	}

	switch c.Operator {
	case types.OpEq:
		return equalValues(v, c.Value)
	case types.OpNe:
		return !equalValues(v, c.Value)
	case types.OpGt, types.OpGte, types.OpLt, types.OpLte:
		return compareValues(c.Operator, v, c.Value)
	case types.OpContains:
		return containsValue(v, c.Value)
	case types.OpIn:
		return intersects(v, c.Value)
	case types.OpNin:
		return !intersects(v, c.Value)
	case types.OpAll:
		return containsAll(v, c.Value)
	default:
		return false
	}
}

func equalValues(v, operand any) bool {
	if fv, ok := asNumber(v); ok {
		if fo, ok := asNumber(operand); ok {
			return fv == fo
		}
	}
	return valueText(v) == valueText(operand)
}

func compareValues(op string, v, operand any) bool {
	var cmp int
	if tv, ok := asTime(v); ok {
		to, okOperand := asTime(operand)
		if !okOperand {
			return false
		}
		cmp = tv.Compare(to)
	} else {
		fv, ok1 := asNumber(v)
		fo, ok2 := asNumber(operand)
		if !ok1 || !ok2 {
			return false
		}
		switch {
		case fv < fo:
			cmp = -1
		case fv > fo:
			cmp = 1
		}
	}

	switch op {
	case types.OpGt:
		return cmp > 0
	case types.OpGte:
		return cmp >= 0
	case types.OpLt:
		return cmp < 0
	case types.OpLte:
		return cmp <= 0
	}
	return false
}

func containsValue(v, operand any) bool {
	needle := valueText(operand)
	if tags, err := types.StringSlice(v); err == nil {
		for _, tag := range tags {
			if tag == needle {
				return true
			}
		}
		return false
	}
	return strings.Contains(valueText(v), needle)
}

// intersects reports whether the field value (scalar or list) shares at
// least one element with the operand array.
func intersects(v, operand any) bool {
	operands := operandList(operand)
	values, err := types.StringSlice(v)
	if err != nil {
		values = []string{valueText(v)}
	}
	for _, val := range values {
		for _, o := range operands {
			if val == o {
				return true
			}
		}
	}
	return false
}

// containsAll reports whether every operand element appears in the field's
// value list.
func containsAll(v, operand any) bool {
	values, err := types.StringSlice(v)
	if err != nil {
		values = []string{valueText(v)}
	}
	for _, o := range operandList(operand) {
		found := false
		for _, val := range values {
			if val == o {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func operandList(operand any) []string {
	if arr, err := types.StringSlice(operand); err == nil {
		return arr
	}
	return []string{valueText(operand)}
}

func asNumber(v any) (float64, bool) {
	switch vv := v.(type) {
	case int:
		return float64(vv), true
	case int64:
		return float64(vv), true
	case float64:
		return vv, true
	case string:
		f, err := strconv.ParseFloat(vv, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func asTime(v any) (time.Time, bool) {
	switch vv := v.(type) {
	case time.Time:
		return vv, true
	case string:
		t, err := types.ParseTimestamp(vv)
		return t, err == nil
	default:
		return time.Time{}, false
	}
}

func valueText(v any) string {
	return scalarString(v)
}
