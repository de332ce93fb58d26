package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

// StandupFilter - параметры выборки; nil-поля не фильтруют
type StandupFilter struct {
	TeamID  *int
	Status  *domain.StandupStatus
	Page    int
	PerPage int
}

type StandupRepository interface {
	// Create возвращает "standup already exists" при нарушении
	// уникальности (team_id, date)
	Create(ctx context.Context, standup *domain.Standup) error
	GetByID(ctx context.Context, id int) (*domain.Standup, error)
	GetByTeamAndDate(ctx context.Context, teamID int, date time.Time) (*domain.Standup, error)
	// UpdateStatusIf - атомарный переход from -> to; false, если статус уже другой
	UpdateStatusIf(ctx context.Context, id int, from, to domain.StandupStatus, endedAt *time.Time) (bool, error)
	List(ctx context.Context, filter StandupFilter) ([]*domain.Standup, error)
	ListInProgress(ctx context.Context) ([]*domain.Standup, error)
	ListRecentByUserID(ctx context.Context, userID string, limit int) ([]*domain.Standup, error)
}
