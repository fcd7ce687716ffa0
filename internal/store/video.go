package store

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/nichefeed/nichefeed-server/internal/domain"
)

// ErrVideoNotFound is returned when a video lookup misses.
var ErrVideoNotFound = ErrNotFound.WithMessage("video not found")

// CreateVideo stores a single video, stamping CreatedAt server-side.
func (s *Store) CreateVideo(ctx context.Context, video *domain.Video) error {
	video.CreatedAt = time.Now().UTC()
	return s.Videos.Create(ctx, video.ID, video)
}

// GetVideo retrieves a video by ID.
func (s *Store) GetVideo(ctx context.Context, id string) (*domain.Video, error) {
	video, err := s.Videos.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrVideoNotFound
	}
	return video, err
}

// BatchCreateVideos stores all videos in one atomic transaction,
// stamping a shared CreatedAt. Either every video is written or none.
func (s *Store) BatchCreateVideos(ctx context.Context, videos []*domain.Video) error {
	now := time.Now().UTC()
	ids := make([]string, len(videos))
	for i, v := range videos {
		v.CreatedAt = now
		ids[i] = v.ID
	}
	return s.Videos.BatchCreate(ctx, ids, videos)
}

// ListVideosByNiches returns videos whose NicheID is a member of
// nicheIDs. An empty selection must not match everything: it is
// replaced by the single sentinel "" which no real niche uses, so the
// result is an empty slice rather than an unfiltered scan.
func (s *Store) ListVideosByNiches(ctx context.Context, nicheIDs []string) ([]*domain.Video, error) {
	if len(nicheIDs) == 0 {
		nicheIDs = []string{""}
	}

	videos, err := s.Videos.Filter(ctx, func(v *domain.Video) bool {
		return slices.Contains(nicheIDs, v.NicheID)
	})
	if err != nil {
		return nil, err
	}
	if videos == nil {
		videos = []*domain.Video{}
	}
	return videos, nil
}
