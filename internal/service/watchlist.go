package service

import (
	"context"
	"log/slog"

	"github.com/nichefeed/nichefeed-server/internal/domain"
	"github.com/nichefeed/nichefeed-server/internal/store"
)

// WatchlistService maintains the one-watchlist-per-user saved list.
type WatchlistService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewWatchlistService creates a new watchlist service.
func NewWatchlistService(store *store.Store, logger *slog.Logger) *WatchlistService {
	return &WatchlistService{
		store:  store,
		logger: logger,
	}
}

// Upsert creates the user's watchlist on first save and replaces its
// video list wholesale on every later save. Returns the watchlist ID.
// The video IDs are not checked against the catalog; that is the
// caller's responsibility.
func (s *WatchlistService) Upsert(ctx context.Context, userID string, videoIDs []string) (string, error) {
	watchlistID, err := s.store.UpsertWatchlist(ctx, userID, videoIDs)
	if err != nil {
		return "", err
	}

	s.logger.Info("watchlist saved",
		"user_id", userID,
		"watchlist_id", watchlistID,
		"videos", len(videoIDs),
	)

	return watchlistID, nil
}

// Get returns the user's watchlist, or store.ErrNotFound if the user
// has never saved one.
func (s *WatchlistService) Get(ctx context.Context, userID string) (*domain.Watchlist, error) {
	return s.store.GetWatchlist(ctx, userID)
}
