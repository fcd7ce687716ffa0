package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertWatchlist_CreateThenOverwrite(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	id, err := s.UpsertWatchlist(ctx, "usr-1", []string{"vid-1", "vid-2"})
	require.NoError(t, err)

	first, err := s.GetWatchlist(ctx, "usr-1")
	require.NoError(t, err)
	assert.Equal(t, id, first.ID)
	assert.Equal(t, "usr-1", first.UserID)
	assert.Equal(t, []string{"vid-1", "vid-2"}, first.VideoIDs)
	assert.False(t, first.CreatedAt.IsZero())

	// Second save replaces the list wholesale and keeps the same
	// document and original CreatedAt.
	id2, err := s.UpsertWatchlist(ctx, "usr-1", []string{"vid-3"})
	require.NoError(t, err)
	assert.Equal(t, id, id2)

	second, err := s.GetWatchlist(ctx, "usr-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"vid-3"}, second.VideoIDs)
	assert.True(t, second.CreatedAt.Equal(first.CreatedAt))

	count, err := s.Watchlists.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpsertWatchlist_NilVideoIDs(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.UpsertWatchlist(ctx, "usr-1", nil)
	require.NoError(t, err)

	got, err := s.GetWatchlist(ctx, "usr-1")
	require.NoError(t, err)
	assert.NotNil(t, got.VideoIDs)
	assert.Empty(t, got.VideoIDs)
}

func TestUpsertWatchlist_PerUserIsolation(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	_, err := s.UpsertWatchlist(ctx, "usr-1", []string{"vid-1"})
	require.NoError(t, err)
	_, err = s.UpsertWatchlist(ctx, "usr-2", []string{"vid-2"})
	require.NoError(t, err)

	a, err := s.GetWatchlist(ctx, "usr-1")
	require.NoError(t, err)
	b, err := s.GetWatchlist(ctx, "usr-2")
	require.NoError(t, err)

	assert.Equal(t, []string{"vid-1"}, a.VideoIDs)
	assert.Equal(t, []string{"vid-2"}, b.VideoIDs)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGetWatchlist_NeverSaved(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetWatchlist(context.Background(), "usr-1")
	assert.ErrorIs(t, err, ErrNotFound)
}
