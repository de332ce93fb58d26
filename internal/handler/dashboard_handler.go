package handler

import "net/http"

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	act, err := actor(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	dashboard, err := h.dashboardService.Build(r.Context(), act)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainDashboardToHTTP(dashboard))
}
