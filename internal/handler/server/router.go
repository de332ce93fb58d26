package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bagdasarian/standup-tracker/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /teams/create", h.CreateTeam)
	mux.HandleFunc("POST /teams/update", h.UpdateTeam)
	mux.HandleFunc("POST /teams/delete", h.DeleteTeam)
	mux.HandleFunc("GET /teams/get", h.GetTeam)
	mux.HandleFunc("GET /teams/list", h.ListTeams)
	mux.HandleFunc("GET /teams/members", h.ListMembers)
	mux.HandleFunc("POST /teams/addMember", h.AddMember)
	mux.HandleFunc("POST /teams/removeMember", h.RemoveMember)

	mux.HandleFunc("POST /schedules/create", h.CreateSchedule)
	mux.HandleFunc("POST /schedules/update", h.UpdateSchedule)
	mux.HandleFunc("POST /schedules/delete", h.DeleteSchedule)
	mux.HandleFunc("GET /schedules/get", h.GetTeamSchedule)

	mux.HandleFunc("GET /standups/list", h.ListStandups)
	mux.HandleFunc("GET /standups/get", h.GetStandup)
	mux.HandleFunc("GET /standups/responses", h.GetStandupResponses)
	mux.HandleFunc("GET /standups/missingMembers", h.GetMissingMembers)
	mux.HandleFunc("POST /standups/end", h.EndStandup)
	mux.HandleFunc("POST /standups/cancel", h.CancelStandup)

	mux.HandleFunc("POST /responses/submit", h.SubmitResponse)
	mux.HandleFunc("GET /responses/my", h.ListMyResponses)

	mux.HandleFunc("GET /dashboard", h.GetDashboard)
	mux.HandleFunc("GET /analytics", h.GetAnalytics)

	mux.HandleFunc("POST /users/register", h.RegisterUser)
	mux.HandleFunc("GET /users/get", h.GetUser)

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.Handle("GET /metrics", promhttp.Handler())
}
