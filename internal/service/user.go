package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nichefeed/nichefeed-server/internal/domain"
	"github.com/nichefeed/nichefeed-server/internal/id"
	"github.com/nichefeed/nichefeed-server/internal/store"
)

// UserService handles user registration and niche selection.
type UserService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewUserService creates a new user service.
func NewUserService(store *store.Store, logger *slog.Logger) *UserService {
	return &UserService{
		store:  store,
		logger: logger,
	}
}

// Register creates a user with the given email and niche selection and
// returns the new user ID. The selection size is a client-side rule
// (1-3) and is deliberately not enforced here; an empty selection is
// allowed and yields an empty feed.
func (s *UserService) Register(ctx context.Context, email string, selectedNiches []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	userID, err := id.Generate("usr")
	if err != nil {
		return "", fmt.Errorf("generate user ID: %w", err)
	}

	user := &domain.User{
		ID:             userID,
		Email:          email,
		SelectedNiches: selectedNiches,
	}

	if err := s.store.CreateUser(ctx, user); err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		"user_id", userID,
		"niches", len(selectedNiches),
	)

	return userID, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.store.GetUser(ctx, userID)
}
