package service

import (
	"context"
	"log/slog"

	"github.com/nichefeed/nichefeed-server/internal/domain"
	"github.com/nichefeed/nichefeed-server/internal/store"
)

// TranscriptService serves per-video transcripts.
type TranscriptService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewTranscriptService creates a new transcript service.
func NewTranscriptService(store *store.Store, logger *slog.Logger) *TranscriptService {
	return &TranscriptService{
		store:  store,
		logger: logger,
	}
}

// GetByVideo returns the transcript for a video, or
// store.ErrTranscriptNotFound if the video has none.
func (s *TranscriptService) GetByVideo(ctx context.Context, videoID string) (*domain.Transcript, error) {
	return s.store.GetTranscriptByVideo(ctx, videoID)
}
