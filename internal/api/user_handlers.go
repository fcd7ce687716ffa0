package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/nichefeed/nichefeed-server/internal/http/response"
)

// CreateUserRequest is the body of POST /api/users.
type CreateUserRequest struct {
	Email          string   `json:"email" validate:"required,email"`
	SelectedNiches []string `json:"selectedNiches"`
}

// CreateUserResponse carries the ID of the newly registered user.
type CreateUserResponse struct {
	UserID string `json:"userId"`
}

// handleCreateUser registers a user with their niche selection.
// The 1-3 selection bound is a client-side rule and is not enforced here.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateUserRequest
	if err := json.UnmarshalRead(r.Body, &req); err != nil {
		response.BadRequest(w, "Invalid request body", s.logger)
		return
	}

	if err := s.validator.Validate(req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	userID, err := s.services.User.Register(ctx, req.Email, req.SelectedNiches)
	if err != nil {
		s.logger.Error("Failed to create user", "error", err)
		response.InternalError(w, "Failed to create user", s.logger)
		return
	}

	response.Success(w, CreateUserResponse{UserID: userID}, s.logger)
}
