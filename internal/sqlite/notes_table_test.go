package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plainfield/notespace/pkg/query"
	"github.com/plainfield/notespace/pkg/rawvalue"
	"github.com/plainfield/notespace/pkg/types"
)

func seedSpace(t *testing.T, b *Backend) (*types.Space, *NotesTable) {
	t.Helper()
	spaces, err := b.Spaces()
	require.NoError(t, err)
	space := testSpace()
	require.NoError(t, spaces.Create(space))
	notes, err := b.Notes()
	require.NoError(t, err)
	return space, notes
}

func TestNoteCreateAppliesDefaults(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	note, err := notes.Create(space, map[string]string{"title": "crash on save"}, rctx.UserID, rctx)
	require.NoError(t, err)

	assert.Equal(t, 1, note.Number)
	assert.Equal(t, "crash on save", note.Fields["title"])
	assert.Equal(t, "open", note.Fields["status"])
	// $now default resolved to the submission time, not stored literally.
	assert.Equal(t, rctx.Now, note.Fields["reported_at"])
	assert.Equal(t, rctx.Now, note.CreatedAt)
	assert.Nil(t, note.EditedAt)
}

func TestNoteCreateResolvesMe(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	note, err := notes.Create(space, map[string]string{
		"title":    "triage",
		"assignee": "$me",
	}, rctx.UserID, rctx)
	require.NoError(t, err)
	assert.Equal(t, rctx.UserID, note.Fields["assignee"])
}

func TestNoteCreateRejectsUnknownField(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	_, err := notes.Create(space, map[string]string{"title": "x", "bogus": "y"}, rctx.UserID, rctx)
	assert.True(t, errors.Is(err, types.ErrUnknownField))
}

func TestNoteCreateEnforcesRequired(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	_, err := notes.Create(space, map[string]string{"priority": "3"}, rctx.UserID, rctx)
	assert.True(t, errors.Is(err, types.ErrRequiredField))

	_, err = notes.Create(space, map[string]string{"title": ""}, rctx.UserID, rctx)
	assert.True(t, errors.Is(err, types.ErrRequiredField))
}

func TestNoteCreateRejectsBadValues(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	tests := []struct {
		name string
		raw  map[string]string
	}{
		{"non-numeric int", map[string]string{"title": "x", "priority": "high"}},
		{"choice outside options", map[string]string{"title": "x", "status": "pending"}},
		{"malformed user id", map[string]string{"title": "x", "assignee": "not-a-uuid"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := notes.Create(space, tc.raw, rctx.UserID, rctx)
			assert.True(t, errors.Is(err, types.ErrInvalidFieldValue))
		})
	}
}

func TestNoteNumbersArePerSpace(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	other := testSpace()
	other.Slug = "ideas"
	spaces, err := b.Spaces()
	require.NoError(t, err)
	require.NoError(t, spaces.Create(other))

	for i := 0; i < 3; i++ {
		note, err := notes.Create(space, map[string]string{"title": "a"}, rctx.UserID, rctx)
		require.NoError(t, err)
		assert.Equal(t, i+1, note.Number)
	}
	note, err := notes.Create(other, map[string]string{"title": "b"}, rctx.UserID, rctx)
	require.NoError(t, err)
	assert.Equal(t, 1, note.Number)
}

func TestNotePartialUpdate(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	created, err := notes.Create(space, map[string]string{
		"title":    "crash on save",
		"priority": "2",
		"labels":   "ui, regression",
	}, rctx.UserID, rctx)
	require.NoError(t, err)

	later := rawvalue.Context{Now: rctx.Now.Add(time.Hour), UserID: rctx.UserID}
	updated, err := notes.Update(space, created.Number, map[string]string{"status": "closed"}, later)
	require.NoError(t, err)

	// Only the submitted field changed; everything else is untouched.
	assert.Equal(t, "closed", updated.Fields["status"])
	assert.Equal(t, "crash on save", updated.Fields["title"])
	assert.Equal(t, int64(2), asInt64(t, updated.Fields["priority"]))
	require.NotNil(t, updated.EditedAt)
	assert.Equal(t, later.Now, *updated.EditedAt)

	// The stored row agrees.
	got, err := notes.Get(space.Slug, created.Number)
	require.NoError(t, err)
	assert.Equal(t, "closed", got.Fields["status"])
	assert.Equal(t, "crash on save", got.Fields["title"])
}

func TestNoteUpdatePreservesOrphanedFields(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	created, err := notes.Create(space, map[string]string{
		"title":    "legacy",
		"priority": "5",
	}, rctx.UserID, rctx)
	require.NoError(t, err)

	// Schema loses the priority field; the stored value must survive edits.
	narrowed := *space
	narrowed.Fields = []types.SpaceField{
		{ID: "title", Type: types.FieldString, Required: true},
		{ID: "status", Type: types.FieldStringChoice, Default: "open",
			Options: &types.FieldOptions{Values: []string{"open", "closed"}}},
	}

	updated, err := notes.Update(&narrowed, created.Number, map[string]string{"status": "closed"}, rctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), asInt64(t, updated.Fields["priority"]))

	_, err = notes.Update(&narrowed, created.Number, map[string]string{"priority": "1"}, rctx)
	assert.True(t, errors.Is(err, types.ErrUnknownField))
}

func TestNoteUpdateMissing(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	_, err := notes.Update(space, 99, map[string]string{"title": "x"}, rctx)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestNoteListOrdered(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	for _, title := range []string{"first", "second", "third"} {
		_, err := notes.Create(space, map[string]string{"title": title}, rctx.UserID, rctx)
		require.NoError(t, err)
	}

	all, err := notes.List(space.Slug)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, note := range all {
		assert.Equal(t, i+1, note.Number)
	}
}

func TestNoteListFiltered(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	seed := []map[string]string{
		{"title": "crash", "status": "open", "priority": "5", "labels": "urgent, ui"},
		{"title": "typo", "status": "closed", "priority": "1", "labels": "docs"},
		{"title": "slow query", "status": "open", "priority": "3", "labels": "urgent, db"},
	}
	for _, raw := range seed {
		_, err := notes.Create(space, raw, rctx.UserID, rctx)
		require.NoError(t, err)
	}

	tests := []struct {
		name    string
		raw     string
		numbers []int
	}{
		{"status eq", "status:eq:open", []int{1, 3}},
		{"priority gte", "priority:gte:3", []int{1, 3}},
		{"tag membership", "labels:in:%5B%22urgent%22%5D", []int{1, 3}},
		{"conjunction", "status:eq:open,priority:gte:4", []int{1}},
		{"no match", "status:eq:open,labels:in:%5B%22docs%22%5D", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			conds := query.Parse(tc.raw)
			got, err := notes.ListFiltered(space.Slug, conds)
			require.NoError(t, err)
			numbers := []int{}
			for _, note := range got {
				numbers = append(numbers, note.Number)
			}
			if tc.numbers == nil {
				assert.Empty(t, numbers)
			} else {
				assert.Equal(t, tc.numbers, numbers)
			}
		})
	}
}

func TestNoteDelete(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	note, err := notes.Create(space, map[string]string{"title": "x"}, rctx.UserID, rctx)
	require.NoError(t, err)

	require.NoError(t, notes.Delete(space.Slug, note.Number))
	_, err = notes.Get(space.Slug, note.Number)
	assert.True(t, errors.Is(err, types.ErrNotFound))

	err = notes.Delete(space.Slug, note.Number)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

// asInt64 normalizes the two shapes an integer field value takes: int64 when
// freshly decoded, float64 after a round trip through stored JSON.
func asInt64(t *testing.T, v any) int64 {
	t.Helper()
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	}
	t.Fatalf("not a number: %T", v)
	return 0
}
