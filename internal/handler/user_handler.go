package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	user, err := h.userService.Register(r.Context(), act, req.Username, req.IsAdmin)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, RegisterUserResponse{
		User: domainUserToHTTP(user),
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "user_id parameter is required",
		})
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainUserToHTTP(user))
}
