package repository

import (
	"context"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	Update(ctx context.Context, team *domain.Team) error
	SetIsActive(ctx context.Context, teamID int, isActive bool) error
	GetByID(ctx context.Context, id int) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	ListActive(ctx context.Context) ([]*domain.Team, error)
	ListActiveByUserID(ctx context.Context, userID string) ([]*domain.Team, error)
}
