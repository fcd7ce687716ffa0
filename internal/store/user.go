package store

import (
	"context"
	"errors"
	"time"

	"github.com/nichefeed/nichefeed-server/internal/domain"
)

// ErrUserNotFound is returned when a user lookup misses.
var ErrUserNotFound = ErrNotFound.WithMessage("user not found")

// CreateUser stores a new user. CreatedAt is stamped server-side at
// write time; any caller-supplied value is overwritten.
func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	user.CreatedAt = time.Now().UTC()
	if user.SelectedNiches == nil {
		user.SelectedNiches = []string{}
	}
	return s.Users.Create(ctx, user.ID, user)
}

// GetUser retrieves a user by ID.
func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.Users.Get(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return user, err
}

// UpdateUserNiches replaces a user's niche selection wholesale.
func (s *Store) UpdateUserNiches(ctx context.Context, userID string, nicheIDs []string) (*domain.User, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if nicheIDs == nil {
		nicheIDs = []string{}
	}
	user.SelectedNiches = nicheIDs

	if err := s.Users.Update(ctx, userID, user); err != nil {
		return nil, err
	}
	return user, nil
}
