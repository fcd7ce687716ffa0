package api

import (
	"net/http"

	"github.com/nichefeed/nichefeed-server/internal/http/response"
)

// handleListNiches returns all available niches.
func (s *Server) handleListNiches(w http.ResponseWriter, r *http.Request) {
	niches, err := s.services.Niche.ListNiches(r.Context())
	if err != nil {
		s.logger.Error("Failed to list niches", "error", err)
		response.InternalError(w, "Failed to fetch niches", s.logger)
		return
	}

	response.Success(w, niches, s.logger)
}
