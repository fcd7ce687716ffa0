package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nichefeed/nichefeed-server/internal/domain"
)

func TestCollection_CreateAndGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	niche := &domain.Niche{
		ID:          "niche-a",
		Name:        "Sourdough Baking",
		Description: "Starters, hydration, scoring",
		Tags:        []string{"baking"},
	}

	err := s.Niches.Create(ctx, niche.ID, niche)
	require.NoError(t, err)

	got, err := s.Niches.Get(ctx, "niche-a")
	require.NoError(t, err)
	assert.Equal(t, "Sourdough Baking", got.Name)
	assert.Equal(t, []string{"baking"}, got.Tags)
}

func TestCollection_Create_Duplicate(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	niche := &domain.Niche{ID: "niche-a", Name: "First"}
	require.NoError(t, s.Niches.Create(ctx, niche.ID, niche))

	err := s.Niches.Create(ctx, niche.ID, &domain.Niche{ID: "niche-a", Name: "Second"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	// Original document untouched.
	got, err := s.Niches.Get(ctx, "niche-a")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Name)
}

func TestCollection_Get_NotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Niches.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_Update_NotFound(t *testing.T) {
	s := setupTestStore(t)

	err := s.Niches.Update(context.Background(), "missing", &domain.Niche{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_Delete_Idempotent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Niches.Create(ctx, "niche-a", &domain.Niche{ID: "niche-a"}))
	require.NoError(t, s.Niches.Delete(ctx, "niche-a"))

	// Deleting again is a no-op.
	require.NoError(t, s.Niches.Delete(ctx, "niche-a"))

	_, err := s.Niches.Get(ctx, "niche-a")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_BatchCreate_Atomic(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Videos.Create(ctx, "vid-dup", &domain.Video{ID: "vid-dup", Title: "Existing"}))

	// One duplicate in the batch aborts the whole write.
	ids := []string{"vid-1", "vid-dup", "vid-2"}
	docs := []*domain.Video{
		{ID: "vid-1", Title: "One"},
		{ID: "vid-dup", Title: "Clash"},
		{ID: "vid-2", Title: "Two"},
	}

	err := s.Videos.BatchCreate(ctx, ids, docs)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	count, err := s.Videos.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = s.Videos.Get(ctx, "vid-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_BatchCreate_LengthMismatch(t *testing.T) {
	s := setupTestStore(t)

	err := s.Videos.BatchCreate(context.Background(), []string{"a", "b"}, []*domain.Video{{ID: "a"}})
	assert.Error(t, err)
}

func TestCollection_FilterAndFindFirst(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	for _, v := range []*domain.Video{
		{ID: "vid-1", Title: "Alpha", NicheID: "n1"},
		{ID: "vid-2", Title: "Beta", NicheID: "n2"},
		{ID: "vid-3", Title: "Gamma", NicheID: "n1"},
	} {
		require.NoError(t, s.Videos.Create(ctx, v.ID, v))
	}

	matched, err := s.Videos.Filter(ctx, func(v *domain.Video) bool { return v.NicheID == "n1" })
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	first, err := s.Videos.FindFirst(ctx, func(v *domain.Video) bool { return v.NicheID == "n1" })
	require.NoError(t, err)
	assert.Equal(t, "vid-1", first.ID)

	_, err = s.Videos.FindFirst(ctx, func(v *domain.Video) bool { return v.NicheID == "n3" })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCollection_Count(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	count, err := s.Niches.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	require.NoError(t, s.Niches.Create(ctx, "a", &domain.Niche{ID: "a"}))
	require.NoError(t, s.Niches.Create(ctx, "b", &domain.Niche{ID: "b"}))

	count, err = s.Niches.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
