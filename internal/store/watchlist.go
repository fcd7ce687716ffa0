package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/nichefeed/nichefeed-server/internal/domain"
)

// watchlistID derives the document ID for a user's watchlist. Using a
// deterministic ID instead of a generated one makes the find-or-create
// a single-key operation: concurrent upserts for the same user conflict
// on the key inside badger rather than both observing "none exists" and
// inserting duplicates.
func watchlistID(userID string) string {
	return "wl-" + userID
}

// UpsertWatchlist creates the user's watchlist if absent, otherwise
// replaces its video list wholesale (overwrite, not merge). CreatedAt
// is kept from the original insert. Returns the watchlist ID.
//
// The read and the conditional write happen in one badger transaction,
// so at most one watchlist can ever exist per user.
func (s *Store) UpsertWatchlist(ctx context.Context, userID string, videoIDs []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if videoIDs == nil {
		videoIDs = []string{}
	}

	id := watchlistID(userID)
	key := prefixWatchlist + id

	err := s.db.Update(func(txn *badger.Txn) error {
		watchlist := domain.Watchlist{
			ID:        id,
			UserID:    userID,
			VideoIDs:  videoIDs,
			CreatedAt: time.Now().UTC(),
		}

		item, err := txn.Get([]byte(key))
		switch {
		case err == nil:
			// Existing watchlist: keep its CreatedAt, replace the videos.
			var existing domain.Watchlist
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &existing)
			}); err != nil {
				return fmt.Errorf("failed to unmarshal watchlist: %w", err)
			}
			watchlist.CreatedAt = existing.CreatedAt
		case errors.Is(err, badger.ErrKeyNotFound):
			// First save for this user.
		default:
			return fmt.Errorf("failed to get watchlist: %w", err)
		}

		data, err := json.Marshal(&watchlist)
		if err != nil {
			return fmt.Errorf("failed to marshal watchlist: %w", err)
		}
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return "", err
	}

	return id, nil
}

// GetWatchlist returns the watchlist for the given user, or ErrNotFound
// if the user has never saved one.
func (s *Store) GetWatchlist(ctx context.Context, userID string) (*domain.Watchlist, error) {
	return s.Watchlists.Get(ctx, watchlistID(userID))
}
