package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plainfield/notespace/pkg/query"
	"github.com/plainfield/notespace/pkg/types"
)

func TestFromClick(t *testing.T) {
	tests := []struct {
		name      string
		fieldID   string
		fieldType string
		value     string
		want      string
		wantOK    bool
	}{
		{
			name:    "select token",
			fieldID: "status", fieldType: "select", value: "open",
			want: "status:eq:open", wantOK: true,
		},
		{
			name:    "tags token wraps json array",
			fieldID: "tags", fieldType: "tags", value: "urgent",
			want: "tags:in:%5B%22urgent%22%5D", wantOK: true,
		},
		{
			name:    "user token",
			fieldID: "assignee", fieldType: "user", value: "alice",
			want: "assignee:eq:alice", wantOK: true,
		},
		{
			name:    "canonical type name also accepted",
			fieldID: "status", fieldType: types.FieldStringChoice, value: "open",
			want: "status:eq:open", wantOK: true,
		},
		{name: "markdown unfilterable", fieldID: "body", fieldType: "markdown", value: "x"},
		{name: "boolean unfilterable", fieldID: "done", fieldType: "boolean", value: "true"},
		{name: "unknown token unfilterable", fieldID: "x", fieldType: "widget", value: "v"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromClick(tt.fieldID, tt.fieldType, tt.value)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A click on rendered output must parse back into the condition it encodes.
func TestClickClosesTheLoop(t *testing.T) {
	q, ok := FromClick("status", "select", "open")
	require.True(t, ok)

	conds := query.Parse(q)
	require.Len(t, conds, 1)
	assert.Equal(t, types.FilterCondition{Field: "status", Operator: "eq", Value: "open"}, conds[0])
}

func TestFromElement(t *testing.T) {
	click, ok := FromElement(map[string]string{
		AttrFieldID:    "tags",
		AttrFieldType:  "tags",
		AttrFieldValue: "drum",
	})
	require.True(t, ok)
	assert.Equal(t, Click{FieldID: "tags", FieldType: "tags", Value: "drum"}, click)

	q, ok := click.Query()
	require.True(t, ok)
	assert.Equal(t, "tags:in:%5B%22drum%22%5D", q)

	// A plain anchor has none of the attributes: not a filter trigger, the
	// caller lets navigation proceed.
	_, ok = FromElement(map[string]string{"href": "/spaces/music"})
	assert.False(t, ok)
}
