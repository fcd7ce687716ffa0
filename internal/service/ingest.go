package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nichefeed/nichefeed-server/internal/domain"
	"github.com/nichefeed/nichefeed-server/internal/id"
	"github.com/nichefeed/nichefeed-server/internal/store"
	"github.com/nichefeed/nichefeed-server/internal/youtube"
)

// VideoProvider is the capability the ingestion path needs from the
// external video-search service. The concrete YouTube client satisfies
// it; tests substitute a stub.
type VideoProvider interface {
	Search(ctx context.Context, query string, maxResults int) ([]youtube.Candidate, error)
}

// ErrProviderNotConfigured is returned when ingestion runs without an
// API key. Maps to 503 at the boundary.
var ErrProviderNotConfigured = store.ErrUnavailable.WithMessage("video provider not configured")

// IngestService fetches provider candidates and persists them as
// catalog videos under a niche.
type IngestService struct {
	store    *store.Store
	provider VideoProvider // nil when no API key is configured
	logger   *slog.Logger
}

// NewIngestService creates a new ingest service. provider may be nil;
// Refresh then fails with ErrProviderNotConfigured.
func NewIngestService(store *store.Store, provider VideoProvider, logger *slog.Logger) *IngestService {
	return &IngestService{
		store:    store,
		provider: provider,
		logger:   logger,
	}
}

// Configured reports whether a provider is wired in.
func (s *IngestService) Configured() bool {
	return s.provider != nil
}

// Refresh searches the provider for keyword matches and stores the
// candidates as videos under nicheID in one atomic batch. A provider
// failure aborts before any write; there are no partial results.
func (s *IngestService) Refresh(ctx context.Context, nicheID, keywords string, maxResults int) ([]*domain.Video, error) {
	if s.provider == nil {
		return nil, ErrProviderNotConfigured
	}

	candidates, err := s.provider.Search(ctx, keywords, maxResults)
	if err != nil {
		return nil, fmt.Errorf("provider search: %w", err)
	}

	videos := make([]*domain.Video, 0, len(candidates))
	for _, c := range candidates {
		videoID, err := id.Generate("vid")
		if err != nil {
			return nil, fmt.Errorf("generate video ID: %w", err)
		}
		videos = append(videos, &domain.Video{
			ID:           videoID,
			Title:        c.Title,
			Description:  c.Description,
			ThumbnailURL: c.ThumbnailURL,
			ChannelName:  c.ChannelName,
			Duration:     c.Duration,
			ViewCount:    c.ViewCount,
			PublishedAt:  c.PublishedAt,
			URL:          c.URL,
			NicheID:      nicheID,
		})
	}

	if err := s.store.BatchCreateVideos(ctx, videos); err != nil {
		return nil, fmt.Errorf("store videos: %w", err)
	}

	s.logger.Info("videos refreshed",
		"niche_id", nicheID,
		"keywords", keywords,
		"stored", len(videos),
	)

	return videos, nil
}
