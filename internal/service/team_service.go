package service

import (
	"context"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type TeamService interface {
	CreateTeam(ctx context.Context, actor domain.Actor, name, description string) (*domain.Team, error)
	UpdateTeam(ctx context.Context, actor domain.Actor, teamID int, name, description string) (*domain.Team, error)
	DeactivateTeam(ctx context.Context, actor domain.Actor, teamID int) error
	GetTeam(ctx context.Context, teamID int) (*domain.Team, error)
	ListTeams(ctx context.Context) ([]*domain.Team, error)
	ListUserTeams(ctx context.Context, userID string) ([]*domain.Team, error)
}
