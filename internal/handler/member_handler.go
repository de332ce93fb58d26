package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	member, err := h.membershipService.AddMember(
		r.Context(), act, req.TeamID, req.UserID, domain.Role(req.Role), req.ChatUserID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, AddMemberResponse{
		Member: domainMemberToHTTP(member),
	})
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	if err := h.membershipService.RemoveMember(r.Context(), act, req.TeamID, req.UserID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(r.URL.Query().Get("team_id"))
	if err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "team_id parameter is required",
		})
		return
	}

	members, err := h.membershipService.ListMembers(r.Context(), teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ListMembersResponse{
		Members: domainMembersToHTTP(members),
	})
}
