package service

import (
	"context"
	"log/slog"

	"github.com/nichefeed/nichefeed-server/internal/domain"
	"github.com/nichefeed/nichefeed-server/internal/store"
)

// FeedService composes a user's video feed from their niche selection.
type FeedService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewFeedService creates a new feed service.
func NewFeedService(store *store.Store, logger *slog.Logger) *FeedService {
	return &FeedService{
		store:  store,
		logger: logger,
	}
}

// GetFeed returns the videos matching the user's selected niches.
// Returns ErrUserNotFound for an unknown user. An empty selection
// yields an empty feed, never an unfiltered catalog scan. Result order
// is store iteration order; callers must not rely on it.
func (s *FeedService) GetFeed(ctx context.Context, userID string) ([]*domain.Video, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	videos, err := s.store.ListVideosByNiches(ctx, user.SelectedNiches)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("feed composed",
		"user_id", userID,
		"niches", len(user.SelectedNiches),
		"videos", len(videos),
	)

	return videos, nil
}
