package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupTeamService(t *testing.T) (TeamService, *MockTeamRepository) {
	teamRepo := new(MockTeamRepository)
	svc := NewTeamService(teamRepo)
	return svc, teamRepo
}

func TestTeamService_CreateTeam(t *testing.T) {
	actor := domain.Actor{UserID: "u1", IsAdmin: true}

	t.Run("администратор создает команду", func(t *testing.T) {
		svc, teamRepo := setupTeamService(t)

		teamRepo.On("Create", mock.Anything, mock.MatchedBy(func(team *domain.Team) bool {
			return team.Name == "Team Alpha" && team.IsActive
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Team).ID = 1
		}).Return(nil).Once()

		created := &domain.Team{ID: 1, Name: "Team Alpha", IsActive: true}
		teamRepo.On("GetByID", mock.Anything, 1).Return(created, nil).Once()

		team, err := svc.CreateTeam(context.Background(), actor, "Team Alpha", "")

		require.NoError(t, err)
		assert.Equal(t, 1, team.ID)
		teamRepo.AssertExpectations(t)
	})

	t.Run("ошибка: не администратор", func(t *testing.T) {
		svc, _ := setupTeamService(t)

		_, err := svc.CreateTeam(context.Background(), domain.Actor{UserID: "u2"}, "Team Alpha", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("ошибка: имя команды занято", func(t *testing.T) {
		svc, teamRepo := setupTeamService(t)

		teamRepo.On("Create", mock.Anything, mock.Anything).
			Return(errors.New("team already exists")).Once()

		_, err := svc.CreateTeam(context.Background(), actor, "Team Alpha", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("ошибка: пустое имя", func(t *testing.T) {
		svc, _ := setupTeamService(t)

		_, err := svc.CreateTeam(context.Background(), actor, "   ", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestTeamService_DeactivateTeam(t *testing.T) {
	t.Run("администратор деактивирует команду", func(t *testing.T) {
		svc, teamRepo := setupTeamService(t)

		teamRepo.On("SetIsActive", mock.Anything, 1, false).Return(nil).Once()

		err := svc.DeactivateTeam(context.Background(), domain.Actor{UserID: "u1", IsAdmin: true}, 1)

		require.NoError(t, err)
		teamRepo.AssertExpectations(t)
	})

	t.Run("ошибка: недостаточно прав", func(t *testing.T) {
		svc, teamRepo := setupTeamService(t)

		err := svc.DeactivateTeam(context.Background(), domain.Actor{UserID: "u1"}, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		teamRepo.AssertNotCalled(t, "SetIsActive", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTeamService_GetTeam(t *testing.T) {
	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		svc, teamRepo := setupTeamService(t)

		teamRepo.On("GetByID", mock.Anything, 404).
			Return(nil, errors.New("team not found")).Once()

		_, err := svc.GetTeam(context.Background(), 404)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
