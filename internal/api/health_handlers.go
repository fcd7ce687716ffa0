package api

import (
	"net/http"

	"github.com/nichefeed/nichefeed-server/internal/http/response"
)

// HealthResponse is the body of the health check.
type HealthResponse struct {
	Status string `json:"status"`
}

// handleHealthCheck reports process liveness.
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	response.Success(w, HealthResponse{Status: "ok"}, s.logger)
}
