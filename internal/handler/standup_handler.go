package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/repository"
)

func (h *Handler) ListStandups(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.StandupFilter{}

	if raw := query.Get("team_id"); raw != "" {
		teamID, err := strconv.Atoi(raw)
		if err != nil {
			h.handleError(w, &domain.DomainError{
				Code:    "BAD_REQUEST",
				Message: "team_id must be an integer",
			})
			return
		}
		filter.TeamID = &teamID
	}

	if raw := query.Get("status"); raw != "" {
		status := domain.StandupStatus(raw)
		if !status.Valid() {
			h.handleError(w, &domain.DomainError{
				Code:    "BAD_REQUEST",
				Message: "unknown status",
			})
			return
		}
		filter.Status = &status
	}

	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.PerPage, _ = strconv.Atoi(query.Get("per_page"))

	standups, err := h.standupService.List(r.Context(), filter)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ListStandupsResponse{
		Standups: domainStandupsToHTTP(standups),
	})
}

func (h *Handler) GetStandup(w http.ResponseWriter, r *http.Request) {
	standupID, err := strconv.Atoi(r.URL.Query().Get("standup_id"))
	if err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "standup_id parameter is required",
		})
		return
	}

	standup, err := h.standupService.Get(r.Context(), standupID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, StandupEnvelope{
		Standup: domainStandupToHTTP(standup),
	})
}

func (h *Handler) GetStandupResponses(w http.ResponseWriter, r *http.Request) {
	standupID, err := strconv.Atoi(r.URL.Query().Get("standup_id"))
	if err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "standup_id parameter is required",
		})
		return
	}

	responses, err := h.standupService.Responses(r.Context(), standupID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ListResponsesResponse{
		Responses: domainResponsesToHTTP(responses),
	})
}

func (h *Handler) GetMissingMembers(w http.ResponseWriter, r *http.Request) {
	standupID, err := strconv.Atoi(r.URL.Query().Get("standup_id"))
	if err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "standup_id parameter is required",
		})
		return
	}

	members, err := h.standupService.MissingMembers(r.Context(), standupID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, MissingMembersResponse{
		Members: domainMembersToHTTP(members),
	})
}

func (h *Handler) EndStandup(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req StandupActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	standup, err := h.standupService.End(r.Context(), act, req.StandupID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, StandupEnvelope{
		Standup: domainStandupToHTTP(standup),
	})
}

func (h *Handler) CancelStandup(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req StandupActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	standup, err := h.standupService.Cancel(r.Context(), act, req.StandupID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, StandupEnvelope{
		Standup: domainStandupToHTTP(standup),
	})
}
