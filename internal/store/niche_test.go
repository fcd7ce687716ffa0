package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nichefeed/nichefeed-server/internal/domain"
)

func TestListNiches(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	niches, err := s.ListNiches(ctx)
	require.NoError(t, err)
	assert.Empty(t, niches)

	require.NoError(t, s.CreateNiche(ctx, &domain.Niche{ID: "niche1", Name: "Advanced JavaScript"}))
	require.NoError(t, s.CreateNiche(ctx, &domain.Niche{ID: "niche2", Name: "Guitar Necks"}))

	niches, err = s.ListNiches(ctx)
	require.NoError(t, err)
	require.Len(t, niches, 2)
	assert.Equal(t, "niche1", niches[0].ID)
	assert.Equal(t, "niche2", niches[1].ID)
}

func TestGetNiche_NotFound(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.GetNiche(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNicheNotFound)
}
