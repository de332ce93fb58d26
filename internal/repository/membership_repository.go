package repository

import (
	"context"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type MembershipRepository interface {
	Add(ctx context.Context, member *domain.TeamMember) error
	// Reactivate включает обратно мягко удалённое членство, сохраняя историю ответов
	Reactivate(ctx context.Context, teamID int, userID string, role domain.Role) (*domain.TeamMember, error)
	SetIsActive(ctx context.Context, teamID int, userID string, isActive bool) error
	GetByTeamAndUser(ctx context.Context, teamID int, userID string) (*domain.TeamMember, error)
	ListActiveByTeamID(ctx context.Context, teamID int) ([]*domain.TeamMember, error)
	ListActiveByUserID(ctx context.Context, userID string) ([]*domain.TeamMember, error)
}
