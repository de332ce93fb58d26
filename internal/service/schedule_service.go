package service

import (
	"context"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type ScheduleService interface {
	CreateSchedule(ctx context.Context, actor domain.Actor, schedule *domain.StandupSchedule) (*domain.StandupSchedule, error)
	UpdateSchedule(ctx context.Context, actor domain.Actor, schedule *domain.StandupSchedule) (*domain.StandupSchedule, error)
	DeleteSchedule(ctx context.Context, actor domain.Actor, teamID int) error
	GetTeamSchedule(ctx context.Context, teamID int) (*domain.StandupSchedule, error)
}
