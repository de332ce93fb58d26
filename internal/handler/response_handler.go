package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/service"
)

func (h *Handler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req SubmitResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, domain.NewValidationError("invalid request body"))
		return
	}

	response, err := h.responseService.Submit(r.Context(), act, req.StandupID, service.SubmitResponseInput{
		YesterdayWork: req.YesterdayWork,
		TodayWork:     req.TodayWork,
		Blockers:      req.Blockers,
		Mood:          domain.Mood(req.Mood),
	})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, SubmitResponseResponse{
		Response: domainResponseToHTTP(response),
	})
}

func (h *Handler) ListMyResponses(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	responses, err := h.responseService.ListOwn(r.Context(), act, limit)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, ListResponsesResponse{
		Responses: domainResponsesToHTTP(responses),
	})
}
