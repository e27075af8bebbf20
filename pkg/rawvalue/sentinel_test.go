package rawvalue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plainfield/notespace/pkg/types"
)

var submitCtx = Context{
	Now:    time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC),
	UserID: "0189c7f2-aaaa-7bbb-8ccc-0123456789ab",
}

func TestResolveSentinels(t *testing.T) {
	tests := []struct {
		name      string
		fieldType string
		raw       string
		want      string
	}{
		{"now resolves", types.FieldDatetime, "$now", "2025-10-20T10:00:00Z"},
		{"me resolves", types.FieldUser, "$me", submitCtx.UserID},
		{"concrete datetime untouched", types.FieldDatetime, "2024-01-01T00:00:00Z", "2024-01-01T00:00:00Z"},
		{"concrete user untouched", types.FieldUser, submitCtx.UserID, submitCtx.UserID},
		{"$now is plain text on string fields", types.FieldString, "$now", "$now"},
		{"$me is plain text on tags fields", types.FieldTags, "$me", "$me"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, submitCtx.Resolve(tt.fieldType, tt.raw))
		})
	}
}

// Resolving an already-resolved value must be a no-op, even with a different
// context: sentinels are replaced exactly once.
func TestResolveTwiceIsNoOp(t *testing.T) {
	once := submitCtx.Resolve(types.FieldDatetime, "$now")

	later := Context{Now: submitCtx.Now.Add(48 * time.Hour), UserID: "someone-else"}
	assert.Equal(t, once, later.Resolve(types.FieldDatetime, once))
}

// A datetime field defaulting to $now: the form shows the sentinel,
// submission resolves it, and redisplay shows the resolved instant.
func TestNowDefaultLifecycle(t *testing.T) {
	fields := []types.SpaceField{
		{ID: "logged_at", Type: types.FieldDatetime, Default: "$now"},
	}

	form := DefaultValues(fields)
	assert.Equal(t, "$now", form["logged_at"])

	resolved := submitCtx.ResolveRawFields(fields, form)
	assert.Equal(t, "2025-10-20T10:00:00Z", resolved["logged_at"])

	v, err := DecodeField(fields[0], resolved["logged_at"])
	require.NoError(t, err)
	assert.Equal(t, submitCtx.Now, v)

	// Redisplay encodes the stored instant, not the sentinel.
	redisplay := FormValues(fields, map[string]any{"logged_at": v})
	assert.Equal(t, "2025-10-20T10:00:00Z", redisplay["logged_at"])
}

func TestResolveRawFieldsLeavesUnknownKeys(t *testing.T) {
	fields := []types.SpaceField{
		{ID: "assignee", Type: types.FieldUser},
	}
	raw := map[string]string{
		"assignee": "$me",
		"legacy":   "$me", // not in the schema; preserved verbatim
	}

	resolved := submitCtx.ResolveRawFields(fields, raw)
	assert.Equal(t, submitCtx.UserID, resolved["assignee"])
	assert.Equal(t, "$me", resolved["legacy"])
}

func TestIsSentinel(t *testing.T) {
	assert.True(t, IsSentinel(types.FieldDatetime, "$now"))
	assert.True(t, IsSentinel(types.FieldUser, "$me"))
	assert.False(t, IsSentinel(types.FieldDatetime, "$me"))
	assert.False(t, IsSentinel(types.FieldString, "$now"))
}
