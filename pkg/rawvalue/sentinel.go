package rawvalue

import (
	"time"

	"github.com/plainfield/notespace/pkg/types"
)

// Context carries the concrete values sentinels resolve to. It is captured
// once, at the moment a record mutation is submitted.
type Context struct {
	Now    time.Time // Wall-clock time of the submission.
	UserID string    // Acting user's id.
}

// IsSentinel reports whether raw is a deferred value expression for the
// given field type.
func IsSentinel(fieldType, raw string) bool {
	switch fieldType {
	case types.FieldDatetime:
		return raw == types.SentinelNow
	case types.FieldUser:
		return raw == types.SentinelMe
	}
	return false
}

// Resolve replaces a sentinel raw value with its concrete form. Values that
// are not sentinels for the field type are returned unchanged, so applying
// Resolve to an already-resolved value is a no-op.
func (c Context) Resolve(fieldType, raw string) string {
	switch {
	case fieldType == types.FieldDatetime && raw == types.SentinelNow:
		return c.Now.UTC().Format(time.RFC3339)
	case fieldType == types.FieldUser && raw == types.SentinelMe:
		return c.UserID
	}
	return raw
}

// ResolveRawFields resolves sentinels across a raw field payload. Keys not
// present in the schema are left untouched; they are preserved, not
// interpreted.
func (c Context) ResolveRawFields(fields []types.SpaceField, raw map[string]string) map[string]string {
	byID := make(map[string]types.SpaceField, len(fields))
	for _, f := range fields {
		byID[f.ID] = f
	}

	out := make(map[string]string, len(raw))
	for id, v := range raw {
		if f, ok := byID[id]; ok {
			out[id] = c.Resolve(f.Type, v)
		} else {
			out[id] = v
		}
	}
	return out
}
