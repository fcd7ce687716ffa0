package api

import (
	"encoding/json/v2"
	"fmt"
	"net/http"

	"github.com/nichefeed/nichefeed-server/internal/domain"
	"github.com/nichefeed/nichefeed-server/internal/http/response"
)

// RefreshVideosRequest is the body of POST /api/videos/refresh.
type RefreshVideosRequest struct {
	NicheID    string `json:"nicheId" validate:"required"`
	Keywords   string `json:"keywords" validate:"required"`
	MaxResults int    `json:"maxResults"`
}

// RefreshVideosResponse reports the stored videos.
type RefreshVideosResponse struct {
	Message string          `json:"message"`
	Videos  []*domain.Video `json:"videos"`
}

// handleRefreshVideos pulls provider candidates for a niche and stores
// them in one atomic batch.
func (s *Server) handleRefreshVideos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Unconfigured provider answers 503 before anything else.
	if !s.services.Ingest.Configured() {
		response.ServiceUnavailable(w, "YouTube service not configured", s.logger)
		return
	}

	var req RefreshVideosRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	videos, err := s.services.Ingest.Refresh(ctx, req.NicheID, req.Keywords, req.MaxResults)
	if err != nil {
		s.logger.Error("Failed to refresh videos", "error", err, "niche_id", req.NicheID)
		response.InternalError(w, "Failed to refresh videos from YouTube", s.logger)
		return
	}

	response.Success(w, RefreshVideosResponse{
		Message: fmt.Sprintf("Successfully refreshed %d videos", len(videos)),
		Videos:  videos,
	}, s.logger)
}
