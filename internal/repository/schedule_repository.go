package repository

import (
	"context"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *domain.StandupSchedule) error
	Update(ctx context.Context, schedule *domain.StandupSchedule) error
	Delete(ctx context.Context, id int) error
	GetByID(ctx context.Context, id int) (*domain.StandupSchedule, error)
	GetActiveByTeamID(ctx context.Context, teamID int) (*domain.StandupSchedule, error)
	ListActive(ctx context.Context) ([]*domain.StandupSchedule, error)
}
