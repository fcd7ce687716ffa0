// Package service provides the business logic layer for niches, feeds,
// watchlists, transcripts and video ingestion.
package service

import (
	"context"
	"log/slog"

	"github.com/nichefeed/nichefeed-server/internal/domain"
	"github.com/nichefeed/nichefeed-server/internal/store"
)

// NicheService serves the niche reference data.
type NicheService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewNicheService creates a new niche service.
func NewNicheService(store *store.Store, logger *slog.Logger) *NicheService {
	return &NicheService{
		store:  store,
		logger: logger,
	}
}

// ListNiches returns all available niches.
func (s *NicheService) ListNiches(ctx context.Context) ([]*domain.Niche, error) {
	return s.store.ListNiches(ctx)
}
