package sqlite

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/plainfield/notespace/pkg/rawvalue"
	"github.com/plainfield/notespace/pkg/types"
)

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b := NewBackend(zap.NewNop())
	err := b.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Detach() })
	return b
}

func testSpace() *types.Space {
	return &types.Space{
		Slug:  "bugs",
		Title: "Bug Tracker",
		Fields: []types.SpaceField{
			{ID: "title", Type: types.FieldString, Required: true},
			{ID: "status", Type: types.FieldStringChoice, Default: "open",
				Options: &types.FieldOptions{Values: []string{"open", "closed"}}},
			{ID: "priority", Type: types.FieldInt},
			{ID: "labels", Type: types.FieldTags},
			{ID: "reported_at", Type: types.FieldDatetime, Default: "$now"},
			{ID: "assignee", Type: types.FieldUser},
		},
	}
}

func testContext() rawvalue.Context {
	return rawvalue.Context{
		Now:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UserID: "0197a3be-1111-7000-8000-000000000001",
	}
}

func TestAttachDetach(t *testing.T) {
	b := NewBackend(zap.NewNop())
	config := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	require.NoError(t, b.Attach(config))

	spaces, err := b.Spaces()
	require.NoError(t, err)
	assert.NotNil(t, spaces)

	require.NoError(t, b.Detach())

	_, err = b.Spaces()
	assert.True(t, errors.Is(err, types.ErrDetached))
	_, err = b.Notes()
	assert.True(t, errors.Is(err, types.ErrDetached))
	_, err = b.Users()
	assert.True(t, errors.Is(err, types.ErrDetached))
	_, err = b.Filters()
	assert.True(t, errors.Is(err, types.ErrDetached))
}

func TestAttachTwice(t *testing.T) {
	b := NewBackend(zap.NewNop())
	config := types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()}

	require.NoError(t, b.Attach(config))
	defer b.Detach()

	err := b.Attach(config)
	assert.True(t, errors.Is(err, types.ErrAlreadyAttached))
}

func TestDetachIdempotent(t *testing.T) {
	b := NewBackend(zap.NewNop())
	require.NoError(t, b.Detach())
	require.NoError(t, b.Detach())
}

func TestAttachReopensExistingData(t *testing.T) {
	dir := t.TempDir()
	config := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	b := NewBackend(zap.NewNop())
	require.NoError(t, b.Attach(config))
	spaces, err := b.Spaces()
	require.NoError(t, err)
	require.NoError(t, spaces.Create(testSpace()))
	require.NoError(t, b.Detach())

	b2 := NewBackend(zap.NewNop())
	require.NoError(t, b2.Attach(config))
	defer b2.Detach()

	spaces2, err := b2.Spaces()
	require.NoError(t, err)
	got, err := spaces2.Get("bugs")
	require.NoError(t, err)
	assert.Equal(t, "Bug Tracker", got.Title)
}
