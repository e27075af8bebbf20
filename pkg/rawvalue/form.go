package rawvalue

import (
	"strconv"

	"github.com/plainfield/notespace/pkg/types"
)

// FormValues converts a note's typed field values to the raw strings an
// edit form displays, one entry per schema field. Values that fail to encode
// fall back to the empty string; a form must stay usable even when a stored
// value predates a schema change.
func FormValues(fields []types.SpaceField, noteFields map[string]any) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		v, ok := noteFields[f.ID]
		if !ok || v == nil {
			if f.Type == types.FieldBoolean {
				out[f.ID] = "false"
			} else {
				out[f.ID] = ""
			}
			continue
		}
		s, err := Encode(f.Type, v)
		if err != nil {
			s = ""
		}
		out[f.ID] = s
	}
	return out
}

// DefaultValues converts schema defaults to the raw strings a create form
// starts from. Sentinels stay unresolved here; they are only replaced at
// submission time.
func DefaultValues(fields []types.SpaceField) map[string]string {
	out := make(map[string]string, len(fields))
	for _, f := range fields {
		if f.Default == nil {
			if f.Type == types.FieldBoolean {
				out[f.ID] = "false"
			} else {
				out[f.ID] = ""
			}
			continue
		}
		s, err := Encode(f.Type, f.Default)
		if err != nil {
			s = ""
		}
		out[f.ID] = s
	}
	return out
}

// DirtyFields returns the subset of current whose raw value differs from the
// pristine baseline, keyed by field id. This is the partial-update payload:
// submitting only changed fields keeps concurrent edits to a record's other
// fields from being clobbered.
func DirtyFields(baseline, current map[string]string) map[string]string {
	out := make(map[string]string)
	for id, v := range current {
		if base, ok := baseline[id]; !ok || base != v {
			out[id] = v
		}
	}
	return out
}

// BoolRaw is a small convenience for checkbox-style inputs.
func BoolRaw(v bool) string {
	return strconv.FormatBool(v)
}
