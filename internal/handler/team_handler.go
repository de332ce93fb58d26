package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), act, req.TeamName, req.Description)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateTeamResponse{
		Team: domainTeamToHTTP(team),
	})
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req UpdateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	team, err := h.teamService.UpdateTeam(r.Context(), act, req.TeamID, req.TeamName, req.Description)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, UpdateTeamResponse{
		Team: domainTeamToHTTP(team),
	})
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req DeleteTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	if err := h.teamService.DeactivateTeam(r.Context(), act, req.TeamID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	// Администратор видит все команды, участник - только свои
	var teams []*domain.Team
	if act.IsAdmin {
		teams, err = h.teamService.ListTeams(r.Context())
	} else {
		teams, err = h.teamService.ListUserTeams(r.Context(), act.UserID)
	}
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ListTeamsResponse{
		Teams: domainTeamsToHTTP(teams),
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(r.URL.Query().Get("team_id"))
	if err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "team_id parameter is required",
		})
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainTeamToHTTP(team))
}
