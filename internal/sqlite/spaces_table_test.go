package sqlite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plainfield/notespace/pkg/types"
)

func TestSpaceCreateGet(t *testing.T) {
	b := newTestBackend(t)
	spaces, err := b.Spaces()
	require.NoError(t, err)

	space := testSpace()
	space.Templates.NoteDetail = "<h1>{{ title }}</h1>"
	space.ListFields = []string{"title", "status"}
	require.NoError(t, spaces.Create(space))

	got, err := spaces.Get("bugs")
	require.NoError(t, err)
	assert.Equal(t, space.Title, got.Title)
	assert.Equal(t, space.Fields, got.Fields)
	assert.Equal(t, space.Templates, got.Templates)
	assert.Equal(t, space.ListFields, got.ListFields)
}

func TestSpaceCreateDuplicate(t *testing.T) {
	b := newTestBackend(t)
	spaces, err := b.Spaces()
	require.NoError(t, err)

	require.NoError(t, spaces.Create(testSpace()))
	err = spaces.Create(testSpace())
	assert.True(t, errors.Is(err, types.ErrSpaceExists))
}

func TestSpaceCreateInvalid(t *testing.T) {
	b := newTestBackend(t)
	spaces, err := b.Spaces()
	require.NoError(t, err)

	tests := []struct {
		name  string
		space *types.Space
	}{
		{"missing slug", &types.Space{Title: "No Slug"}},
		{"missing title", &types.Space{Slug: "no-title"}},
		{"unknown field type", &types.Space{Slug: "x", Title: "X",
			Fields: []types.SpaceField{{ID: "f", Type: "geolocation"}}}},
		{"duplicate field id", &types.Space{Slug: "x", Title: "X",
			Fields: []types.SpaceField{
				{ID: "f", Type: types.FieldString},
				{ID: "f", Type: types.FieldInt},
			}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, spaces.Create(tc.space))
		})
	}
}

func TestSpaceList(t *testing.T) {
	b := newTestBackend(t)
	spaces, err := b.Spaces()
	require.NoError(t, err)

	all, err := spaces.List()
	require.NoError(t, err)
	assert.Empty(t, all)

	for _, slug := range []string{"zebra", "alpha"} {
		space := testSpace()
		space.Slug = slug
		require.NoError(t, spaces.Create(space))
	}

	all, err = spaces.List()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "alpha", all[0].Slug)
	assert.Equal(t, "zebra", all[1].Slug)
}

func TestSpaceUpdate(t *testing.T) {
	b := newTestBackend(t)
	spaces, err := b.Spaces()
	require.NoError(t, err)

	space := testSpace()
	require.NoError(t, spaces.Create(space))

	space.Title = "Defect Tracker"
	space.Fields = append(space.Fields, types.SpaceField{ID: "severity", Type: types.FieldInt})
	require.NoError(t, spaces.Update(space))

	got, err := spaces.Get(space.Slug)
	require.NoError(t, err)
	assert.Equal(t, "Defect Tracker", got.Title)
	_, ok := got.Field("severity")
	assert.True(t, ok)

	missing := testSpace()
	missing.Slug = "nope"
	err = spaces.Update(missing)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestSpaceDeleteCascades(t *testing.T) {
	b := newTestBackend(t)
	space, notes := seedSpace(t, b)
	rctx := testContext()

	_, err := notes.Create(space, map[string]string{"title": "x"}, rctx.UserID, rctx)
	require.NoError(t, err)

	filters, err := b.Filters()
	require.NoError(t, err)
	saved, err := filters.Create(&types.Filter{
		Space: space.Slug,
		Title: "Open",
		Conditions: []types.FilterCondition{
			{Field: "status", Operator: types.OpEq, Value: "open"},
		},
	})
	require.NoError(t, err)

	spaces, err := b.Spaces()
	require.NoError(t, err)
	require.NoError(t, spaces.Delete(space.Slug))

	_, err = spaces.Get(space.Slug)
	assert.True(t, errors.Is(err, types.ErrNotFound))
	all, err := notes.List(space.Slug)
	require.NoError(t, err)
	assert.Empty(t, all)
	_, err = filters.Get(saved.FilterID)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}
