package api

import (
	"errors"
	"net/http"

	"github.com/nichefeed/nichefeed-server/internal/http/response"
	"github.com/nichefeed/nichefeed-server/internal/store"
)

// handleGetFeed returns the videos matching the caller's selected
// niches. Order is store-defined; clients must not rely on it.
func (s *Server) handleGetFeed(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)

	videos, err := s.services.Feed.GetFeed(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			response.NotFound(w, "User not found", s.logger)
			return
		}
		s.logger.Error("Failed to compose feed", "error", err, "user_id", userID)
		response.InternalError(w, "Failed to fetch video feed", s.logger)
		return
	}

	response.Success(w, videos, s.logger)
}
