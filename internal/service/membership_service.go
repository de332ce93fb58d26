package service

import (
	"context"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type MembershipService interface {
	AddMember(ctx context.Context, actor domain.Actor, teamID int, userID string, role domain.Role, chatUserID string) (*domain.TeamMember, error)
	RemoveMember(ctx context.Context, actor domain.Actor, teamID int, userID string) error
	ListMembers(ctx context.Context, teamID int) ([]*domain.TeamMember, error)
	// CanManage возвращает ErrUnauthorized, если actor не администратор
	// и не lead/admin в команде
	CanManage(ctx context.Context, actor domain.Actor, teamID int) error
}
