package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetLastRenderWins(t *testing.T) {
	var target Target

	first := target.Begin()
	second := target.Begin()

	// The newer render finishes first.
	assert.True(t, target.Commit(second, "new", nil))

	// The superseded render's result arrives late and is discarded.
	assert.False(t, target.Commit(first, "stale", nil))

	html, err := target.Result()
	require.NoError(t, err)
	assert.Equal(t, "new", html)
}

func TestTargetInOrderCommits(t *testing.T) {
	var target Target

	a := target.Begin()
	assert.True(t, target.Commit(a, "a", nil))

	b := target.Begin()
	assert.True(t, target.Commit(b, "b", nil))

	html, _ := target.Result()
	assert.Equal(t, "b", html)
}

func TestTargetErrorResultAlsoSequenced(t *testing.T) {
	var target Target

	broken := target.Begin()
	fixed := target.Begin()

	require.True(t, target.Commit(fixed, "ok", nil))
	require.False(t, target.Commit(broken, "", assert.AnError))

	html, err := target.Result()
	assert.NoError(t, err)
	assert.Equal(t, "ok", html)
}
