package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/nichefeed/nichefeed-server/internal/http/response"
)

// UpsertWatchlistRequest is the body of POST /api/watchlists.
// A missing or null videoIds saves an empty watchlist.
type UpsertWatchlistRequest struct {
	VideoIDs []string `json:"videoIds"`
}

// UpsertWatchlistResponse carries the ID of the created or updated watchlist.
type UpsertWatchlistResponse struct {
	WatchlistID string `json:"watchlistId"`
}

// handleUpsertWatchlist creates or wholesale-replaces the caller's watchlist.
func (s *Server) handleUpsertWatchlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := getUserID(ctx)

	var req UpsertWatchlistRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	watchlistID, err := s.services.Watchlist.Upsert(ctx, userID, req.VideoIDs)
	if err != nil {
		s.logger.Error("Failed to upsert watchlist", "error", err, "user_id", userID)
		response.InternalError(w, "Failed to update watchlist", s.logger)
		return
	}

	response.Success(w, UpsertWatchlistResponse{WatchlistID: watchlistID}, s.logger)
}
