package service

import (
	"context"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/repository"
)

type membershipService struct {
	membershipRepo repository.MembershipRepository
	teamRepo       repository.TeamRepository
	userRepo       repository.UserRepository
}

// NewMembershipService создает новый экземпляр MembershipService
func NewMembershipService(
	membershipRepo repository.MembershipRepository,
	teamRepo repository.TeamRepository,
	userRepo repository.UserRepository,
) MembershipService {
	return &membershipService{
		membershipRepo: membershipRepo,
		teamRepo:       teamRepo,
		userRepo:       userRepo,
	}
}

// AddMember добавляет пользователя в команду. Мягко удалённое членство
// включается обратно с новой ролью, история ответов сохраняется
func (s *membershipService) AddMember(ctx context.Context, actor domain.Actor, teamID int, userID string, role domain.Role, chatUserID string) (*domain.TeamMember, error) {
	if err := s.CanManage(ctx, actor, teamID); err != nil {
		return nil, err
	}

	if role == "" {
		role = domain.RoleMember
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("invalid role: " + string(role))
	}

	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		if err.Error() == "user not found" || err.Error() == "invalid user ID" {
			return nil, domain.NewNotFoundError("user with id " + userID)
		}
		return nil, err
	}

	existing, err := s.membershipRepo.GetByTeamAndUser(ctx, teamID, userID)
	if err == nil && existing != nil {
		if existing.IsActive {
			return existing, nil
		}
		return s.membershipRepo.Reactivate(ctx, teamID, userID, role)
	}
	if err != nil && err.Error() != "membership not found" {
		return nil, err
	}

	member := &domain.TeamMember{
		TeamID:     teamID,
		UserID:     userID,
		Role:       role,
		ChatUserID: chatUserID,
		IsActive:   true,
		JoinedAt:   time.Now(),
	}
	if err := s.membershipRepo.Add(ctx, member); err != nil {
		if err.Error() == "membership already exists" {
			return s.membershipRepo.Reactivate(ctx, teamID, userID, role)
		}
		return nil, err
	}

	return s.membershipRepo.GetByTeamAndUser(ctx, teamID, userID)
}

// RemoveMember мягко удаляет участника из команды
func (s *membershipService) RemoveMember(ctx context.Context, actor domain.Actor, teamID int, userID string) error {
	if err := s.CanManage(ctx, actor, teamID); err != nil {
		return err
	}

	err := s.membershipRepo.SetIsActive(ctx, teamID, userID, false)
	if err != nil {
		if err.Error() == "membership not found" {
			return domain.NewNotFoundError("membership")
		}
		return err
	}
	return nil
}

func (s *membershipService) ListMembers(ctx context.Context, teamID int) ([]*domain.TeamMember, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if err.Error() == "team not found" {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, err
	}
	return s.membershipRepo.ListActiveByTeamID(ctx, teamID)
}

// CanManage разрешает операцию глобальному администратору и
// участникам с ролью lead или admin
func (s *membershipService) CanManage(ctx context.Context, actor domain.Actor, teamID int) error {
	if actor.IsAdmin {
		return nil
	}

	member, err := s.membershipRepo.GetByTeamAndUser(ctx, teamID, actor.UserID)
	if err != nil {
		if err.Error() == "membership not found" || err.Error() == "invalid user ID" {
			return domain.ErrUnauthorized
		}
		return err
	}
	if !member.IsActive || !member.Role.CanManageTeam() {
		return domain.ErrUnauthorized
	}
	return nil
}
