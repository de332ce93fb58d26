package handler

import (
	"net/http"

	"github.com/bagdasarian/standup-tracker/internal/auth"
	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/service"
)

type Handler struct {
	teamService       service.TeamService
	membershipService service.MembershipService
	scheduleService   service.ScheduleService
	standupService    service.StandupService
	responseService   service.ResponseService
	analyticsService  service.AnalyticsService
	dashboardService  service.DashboardService
	userService       service.UserService
}

func NewHandler(
	teamService service.TeamService,
	membershipService service.MembershipService,
	scheduleService service.ScheduleService,
	standupService service.StandupService,
	responseService service.ResponseService,
	analyticsService service.AnalyticsService,
	dashboardService service.DashboardService,
	userService service.UserService,
) *Handler {
	return &Handler{
		teamService:       teamService,
		membershipService: membershipService,
		scheduleService:   scheduleService,
		standupService:    standupService,
		responseService:   responseService,
		analyticsService:  analyticsService,
		dashboardService:  dashboardService,
		userService:       userService,
	}
}

// actor извлекает инициатора операции из claims, положенных middleware
func actor(r *http.Request) (domain.Actor, error) {
	claims, ok := auth.FromContext(r.Context())
	if !ok {
		return domain.Actor{}, domain.ErrUnauthorized
	}
	return claims.Actor(), nil
}
