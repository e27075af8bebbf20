package sqlite

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plainfield/notespace/pkg/types"
)

func TestUserCreateGet(t *testing.T) {
	b := newTestBackend(t)
	users, err := b.Users()
	require.NoError(t, err)

	user, err := users.Create("mira")
	require.NoError(t, err)
	assert.Equal(t, "mira", user.Username)
	_, err = uuid.Parse(user.UserID)
	assert.NoError(t, err)

	got, err := users.Get(user.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)
	assert.Equal(t, user.CreatedAt.Unix(), got.CreatedAt.Unix())

	byName, err := users.GetByUsername("mira")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, byName.UserID)
}

func TestUserDuplicateUsername(t *testing.T) {
	b := newTestBackend(t)
	users, err := b.Users()
	require.NoError(t, err)

	_, err = users.Create("mira")
	require.NoError(t, err)
	_, err = users.Create("mira")
	assert.Error(t, err)
}

func TestUserMissing(t *testing.T) {
	b := newTestBackend(t)
	users, err := b.Users()
	require.NoError(t, err)

	_, err = users.Get(uuid.NewString())
	assert.True(t, errors.Is(err, types.ErrNotFound))
	_, err = users.GetByUsername("ghost")
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestUserList(t *testing.T) {
	b := newTestBackend(t)
	users, err := b.Users()
	require.NoError(t, err)

	for _, name := range []string{"zoe", "ada", "mira"} {
		_, err := users.Create(name)
		require.NoError(t, err)
	}

	all, err := users.List()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "ada", all[0].Username)
	assert.Equal(t, "mira", all[1].Username)
	assert.Equal(t, "zoe", all[2].Username)
}
