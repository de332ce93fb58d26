package service

import (
	"context"
	"strings"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/repository"
)

type teamService struct {
	teamRepo repository.TeamRepository
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(teamRepo repository.TeamRepository) TeamService {
	return &teamService{teamRepo: teamRepo}
}

// CreateTeam создает команду; доступно только администратору.
// Состав команды наполняется отдельно через AddMember
func (s *teamService) CreateTeam(ctx context.Context, actor domain.Actor, name, description string) (*domain.Team, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrUnauthorized
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("team name must not be empty")
	}

	team := &domain.Team{
		Name:        name,
		Description: description,
		IsActive:    true,
		CreatedAt:   time.Now(),
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if err.Error() == "team already exists" {
			return nil, domain.NewValidationError("team with name " + name + " already exists")
		}
		return nil, err
	}

	return s.teamRepo.GetByID(ctx, team.ID)
}

func (s *teamService) UpdateTeam(ctx context.Context, actor domain.Actor, teamID int, name, description string) (*domain.Team, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrUnauthorized
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if err.Error() == "team not found" {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("team name must not be empty")
	}

	team.Name = name
	team.Description = description
	if err := s.teamRepo.Update(ctx, team); err != nil {
		if err.Error() == "team already exists" {
			return nil, domain.NewValidationError("team with name " + name + " already exists")
		}
		if err.Error() == "team not found" {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, err
	}

	return s.teamRepo.GetByID(ctx, teamID)
}

// DeactivateTeam мягко удаляет команду: стендапы и ответы остаются в истории
func (s *teamService) DeactivateTeam(ctx context.Context, actor domain.Actor, teamID int) error {
	if !actor.IsAdmin {
		return domain.ErrUnauthorized
	}

	err := s.teamRepo.SetIsActive(ctx, teamID, false)
	if err != nil {
		if err.Error() == "team not found" {
			return domain.NewNotFoundError("team")
		}
		return err
	}
	return nil
}

func (s *teamService) GetTeam(ctx context.Context, teamID int) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if err.Error() == "team not found" {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.ListActive(ctx)
}

func (s *teamService) ListUserTeams(ctx context.Context, userID string) ([]*domain.Team, error) {
	return s.teamRepo.ListActiveByUserID(ctx, userID)
}
