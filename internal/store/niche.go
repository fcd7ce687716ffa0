package store

import (
	"context"
	"errors"

	"github.com/nichefeed/nichefeed-server/internal/domain"
)

// ErrNicheNotFound is returned when a niche lookup misses.
var ErrNicheNotFound = ErrNotFound.WithMessage("niche not found")

// CreateNiche stores a new niche. The caller supplies the ID; niches
// are seeded with stable IDs so re-running the seeder is idempotent.
func (s *Store) CreateNiche(ctx context.Context, niche *domain.Niche) error {
	return s.Niches.Create(ctx, niche.ID, niche)
}

// GetNiche retrieves a niche by ID.
func (s *Store) GetNiche(ctx context.Context, id string) (*domain.Niche, error) {
	niche, err := s.Niches.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrNicheNotFound
	}
	return niche, err
}

// ListNiches returns all niches.
func (s *Store) ListNiches(ctx context.Context) ([]*domain.Niche, error) {
	niches := make([]*domain.Niche, 0)
	for niche, err := range s.Niches.List(ctx) {
		if err != nil {
			return nil, err
		}
		niches = append(niches, niche)
	}
	return niches, nil
}
