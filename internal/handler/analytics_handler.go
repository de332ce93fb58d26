package handler

import (
	"net/http"
	"strconv"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	timeRange := domain.TimeRange(query.Get("time_range"))
	if timeRange == "" {
		timeRange = domain.RangeWeek
	}
	if timeRange.Days() == 0 {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "time_range must be one of: week, month, quarter, year",
		})
		return
	}

	var teamID *int
	if raw := query.Get("team_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.handleError(w, &domain.DomainError{
				Code:    "BAD_REQUEST",
				Message: "team_id must be an integer",
			})
			return
		}
		teamID = &parsed
	}

	analytics, err := h.analyticsService.Build(r.Context(), timeRange, teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainAnalyticsToHTTP(analytics))
}
