package store

import (
	"context"
	"errors"

	"github.com/nichefeed/nichefeed-server/internal/domain"
)

// ErrTranscriptNotFound is returned when no transcript exists for a video.
var ErrTranscriptNotFound = ErrNotFound.WithMessage("transcript not found")

// CreateTranscript stores a transcript for a video.
func (s *Store) CreateTranscript(ctx context.Context, transcript *domain.Transcript) error {
	return s.Transcripts.Create(ctx, transcript.ID, transcript)
}

// GetTranscriptByVideo returns the transcript for the given video ID.
// Transcripts are logically 1:1 with videos but the store does not
// enforce that; if several match, the first in key order wins. Badger
// iterates keys in sorted order, so the pick is deterministic for a
// given dataset.
func (s *Store) GetTranscriptByVideo(ctx context.Context, videoID string) (*domain.Transcript, error) {
	transcript, err := s.Transcripts.FindFirst(ctx, func(t *domain.Transcript) bool {
		return t.VideoID == videoID
	})
	if errors.Is(err, ErrNotFound) {
		return nil, ErrTranscriptNotFound
	}
	return transcript, err
}
