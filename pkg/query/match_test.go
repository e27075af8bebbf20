package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/plainfield/notespace/pkg/types"
)

var matchNote = map[string]any{
	"title":     "Practice session",
	"status":    "open",
	"priority":  int64(3),
	"score":     2.5,
	"done":      true,
	"tags":      []string{"drum", "bass"},
	"logged_at": time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC),
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"eq hit", "status:eq:open", true},
		{"eq miss", "status:eq:closed", false},
		{"ne", "status:ne:closed", true},
		{"numeric gte hit", "priority:gte:3", true},
		{"numeric gt miss", "priority:gt:3", false},
		{"numeric lt on float", "score:lt:3", true},
		{"numeric eq across types", "priority:eq:3", true},
		{"datetime gte", "logged_at:gte:2025-10-01", true},
		{"datetime lt miss", "logged_at:lt:2025-10-01", false},
		{"contains substring", "title:contains:Practice", true},
		{"contains miss", "title:contains:gig", false},
		{"tags in hit", "tags:in:%5B%22drum%22%5D", true},
		{"tags in miss", "tags:in:%5B%22guitar%22%5D", false},
		{"tags nin", "tags:nin:%5B%22guitar%22%5D", true},
		{"tags all hit", "tags:all:%5B%22drum%22%2C%22bass%22%5D", true},
		{"tags all miss", "tags:all:%5B%22drum%22%2C%22guitar%22%5D", false},
		{"tags contains single tag", "tags:contains:drum", true},
		{"boolean eq", "done:eq:true", true},
		{"and combination hit", "status:eq:open,priority:gte:3", true},
		{"and combination miss", "status:eq:open,priority:gt:5", false},
		{"missing field fails eq", "ghost:eq:x", false},
		{"missing field passes ne", "ghost:ne:x", true},
		{"missing field passes nin", "ghost:nin:%5B%22x%22%5D", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(Parse(tt.raw), matchNote))
		})
	}
}

func TestMatchEmptyConditionList(t *testing.T) {
	assert.True(t, Match(nil, matchNote))
	assert.True(t, Match(Parse(""), matchNote))
}

func TestMatchJSONDecodedFields(t *testing.T) {
	// Field values hydrated from JSON storage arrive as []any and float64.
	fields := map[string]any{
		"tags":     []any{"drum", "bass"},
		"priority": float64(3),
	}

	assert.True(t, Match(Parse("tags:in:%5B%22bass%22%5D"), fields))
	assert.True(t, Match(Parse("priority:gte:3"), fields))

	var cond = types.FilterCondition{Field: "tags", Operator: types.OpAll, Value: []any{"drum"}}
	assert.True(t, Match([]types.FilterCondition{cond}, fields))
}
