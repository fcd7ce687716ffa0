// Package store provides badger-backed persistence for the NicheFeed
// catalog: five flat document collections keyed by prefixed IDs.
package store

import (
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/nichefeed/nichefeed-server/internal/domain"
)

// Key prefixes for each collection. A record for id X lives at
// "<prefix>X"; prefix iteration over one of these never crosses into
// another collection.
const (
	prefixNiche      = "niche:"
	prefixUser       = "user:"
	prefixVideo      = "video:"
	prefixTranscript = "transcript:"
	prefixWatchlist  = "watchlist:"
)

// Store wraps a Badger database instance.
type Store struct {
	db     *badger.DB
	logger *slog.Logger

	Niches      *Collection[domain.Niche]
	Users       *Collection[domain.User]
	Videos      *Collection[domain.Video]
	Transcripts *Collection[domain.Transcript]
	Watchlists  *Collection[domain.Watchlist]
}

// New creates a new Store instance with the given database path.
func New(path string, logger *slog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil            // Disable Badger's internal logging
	opts.SyncWrites = true       // Ensure writes are synced to disk to prevent corruption on crashes
	opts.CompactL0OnClose = true // Compact L0 tables on close for faster startup

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}

	store := &Store{
		db:     db,
		logger: logger,
	}

	store.Niches = NewCollection[domain.Niche](store, prefixNiche)
	store.Users = NewCollection[domain.User](store, prefixUser)
	store.Videos = NewCollection[domain.Video](store, prefixVideo)
	store.Transcripts = NewCollection[domain.Transcript](store, prefixTranscript)
	store.Watchlists = NewCollection[domain.Watchlist](store, prefixWatchlist)

	if logger != nil {
		logger.Info("Badger database opened successfully", "path", path)
	}

	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.logger != nil {
		s.logger.Info("Closing database")
	}
	return s.db.Close()
}
