package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nichefeed/nichefeed-server/internal/http/response"
	"github.com/nichefeed/nichefeed-server/internal/store"
)

// handleGetTranscript returns the transcript for one video.
func (s *Server) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	videoID := chi.URLParam(r, "videoID")

	transcript, err := s.services.Transcript.GetByVideo(ctx, videoID)
	if err != nil {
		if errors.Is(err, store.ErrTranscriptNotFound) {
			response.NotFound(w, "Transcript not found", s.logger)
			return
		}
		s.logger.Error("Failed to get transcript", "error", err, "video_id", videoID)
		response.InternalError(w, "Failed to fetch transcript", s.logger)
		return
	}

	response.Success(w, transcript, s.logger)
}
