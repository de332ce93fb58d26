package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

func (h *Handler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	schedule, err := httpScheduleToDomain(req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	created, err := h.scheduleService.CreateSchedule(r.Context(), act, schedule)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateScheduleResponse{
		Schedule: domainScheduleToHTTP(created),
	})
}

func (h *Handler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	schedule, err := httpScheduleToDomain(req)
	if err != nil {
		h.handleError(w, err)
		return
	}

	updated, err := h.scheduleService.UpdateSchedule(r.Context(), act, schedule)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, UpdateScheduleResponse{
		Schedule: domainScheduleToHTTP(updated),
	})
}

func (h *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req DeleteScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	if err := h.scheduleService.DeleteSchedule(r.Context(), act, req.TeamID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetTeamSchedule(w http.ResponseWriter, r *http.Request) {
	teamID, err := strconv.Atoi(r.URL.Query().Get("team_id"))
	if err != nil {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "team_id parameter is required",
		})
		return
	}

	schedule, err := h.scheduleService.GetTeamSchedule(r.Context(), teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainScheduleToHTTP(schedule))
}
