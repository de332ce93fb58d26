package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupStandupService(t *testing.T) (StandupService, *MockStandupRepository, *MockResponseRepository, *MockMembershipRepository, *MockPublisher) {
	standupRepo := new(MockStandupRepository)
	responseRepo := new(MockResponseRepository)
	membershipRepo := new(MockMembershipRepository)
	publisher := new(MockPublisher)
	membership := NewMembershipService(membershipRepo, new(MockTeamRepository), new(MockUserRepository))
	svc := NewStandupService(standupRepo, responseRepo, membershipRepo, membership, publisher)
	return svc, standupRepo, responseRepo, membershipRepo, publisher
}

func TestStandupService_StartForDate(t *testing.T) {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("создает новый стендап, если на дату его ещё нет", func(t *testing.T) {
		svc, standupRepo, _, _, publisher := setupStandupService(t)

		standupRepo.On("GetByTeamAndDate", mock.Anything, 1, date).
			Return(nil, errors.New("standup not found")).Once()
		standupRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.Standup) bool {
			return s.TeamID == 1 && s.Status == domain.StatusInProgress && s.StartedAt != nil
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Standup).ID = 7
		}).Return(nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		created := &domain.Standup{ID: 7, TeamID: 1, Date: date, Status: domain.StatusInProgress}
		standupRepo.On("GetByID", mock.Anything, 7).Return(created, nil).Once()

		standup, err := svc.StartForDate(context.Background(), 1, date)

		require.NoError(t, err)
		assert.Equal(t, 7, standup.ID)
		assert.Equal(t, domain.StatusInProgress, standup.Status)
		standupRepo.AssertExpectations(t)
		publisher.AssertExpectations(t)
	})

	t.Run("идемпотентность: существующий стендап возвращается без создания", func(t *testing.T) {
		svc, standupRepo, _, _, _ := setupStandupService(t)

		existing := &domain.Standup{ID: 7, TeamID: 1, Date: date, Status: domain.StatusInProgress}
		standupRepo.On("GetByTeamAndDate", mock.Anything, 1, date).Return(existing, nil).Once()

		standup, err := svc.StartForDate(context.Background(), 1, date)

		require.NoError(t, err)
		assert.Equal(t, 7, standup.ID)
		standupRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("гонка создания: проигравший перечитывает существующий стендап", func(t *testing.T) {
		svc, standupRepo, _, _, _ := setupStandupService(t)

		standupRepo.On("GetByTeamAndDate", mock.Anything, 1, date).
			Return(nil, errors.New("standup not found")).Once()
		standupRepo.On("Create", mock.Anything, mock.Anything).
			Return(errors.New("standup already exists")).Once()

		winner := &domain.Standup{ID: 9, TeamID: 1, Date: date, Status: domain.StatusInProgress}
		standupRepo.On("GetByTeamAndDate", mock.Anything, 1, date).Return(winner, nil).Once()

		standup, err := svc.StartForDate(context.Background(), 1, date)

		require.NoError(t, err)
		assert.Equal(t, 9, standup.ID)
		standupRepo.AssertExpectations(t)
	})

	t.Run("pending-стендап переводится в in_progress", func(t *testing.T) {
		svc, standupRepo, _, _, publisher := setupStandupService(t)

		pending := &domain.Standup{ID: 3, TeamID: 1, Date: date, Status: domain.StatusPending}
		standupRepo.On("GetByTeamAndDate", mock.Anything, 1, date).Return(pending, nil).Once()
		standupRepo.On("UpdateStatusIf", mock.Anything, 3, domain.StatusPending, domain.StatusInProgress, (*time.Time)(nil)).
			Return(true, nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		started := &domain.Standup{ID: 3, TeamID: 1, Date: date, Status: domain.StatusInProgress}
		standupRepo.On("GetByID", mock.Anything, 3).Return(started, nil).Once()

		standup, err := svc.StartForDate(context.Background(), 1, date)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusInProgress, standup.Status)
		standupRepo.AssertExpectations(t)
	})
}

func TestStandupService_End(t *testing.T) {
	actor := domain.Actor{UserID: "u1"}
	lead := &domain.TeamMember{TeamID: 1, UserID: "u1", Role: domain.RoleLead, IsActive: true}

	t.Run("lead завершает запущенный стендап", func(t *testing.T) {
		svc, standupRepo, _, membershipRepo, publisher := setupStandupService(t)

		standup := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusInProgress}
		standupRepo.On("GetByID", mock.Anything, 7).Return(standup, nil).Once()
		membershipRepo.On("GetByTeamAndUser", mock.Anything, 1, "u1").Return(lead, nil).Once()
		standupRepo.On("UpdateStatusIf", mock.Anything, 7, domain.StatusInProgress, domain.StatusCompleted, mock.Anything).
			Return(true, nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		ended := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusCompleted}
		standupRepo.On("GetByID", mock.Anything, 7).Return(ended, nil).Once()

		result, err := svc.End(context.Background(), actor, 7)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, result.Status)
		standupRepo.AssertExpectations(t)
	})

	t.Run("ошибка: рядовой участник не может завершить стендап", func(t *testing.T) {
		svc, standupRepo, _, membershipRepo, _ := setupStandupService(t)

		standup := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusInProgress}
		standupRepo.On("GetByID", mock.Anything, 7).Return(standup, nil).Once()
		member := &domain.TeamMember{TeamID: 1, UserID: "u1", Role: domain.RoleMember, IsActive: true}
		membershipRepo.On("GetByTeamAndUser", mock.Anything, 1, "u1").Return(member, nil).Once()

		_, err := svc.End(context.Background(), actor, 7)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		standupRepo.AssertNotCalled(t, "UpdateStatusIf", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ошибка: стендап уже в терминальном статусе", func(t *testing.T) {
		svc, standupRepo, _, membershipRepo, _ := setupStandupService(t)

		standup := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusCompleted}
		standupRepo.On("GetByID", mock.Anything, 7).Return(standup, nil).Once()
		membershipRepo.On("GetByTeamAndUser", mock.Anything, 1, "u1").Return(lead, nil).Once()

		_, err := svc.End(context.Background(), actor, 7)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
	})

	t.Run("гонка двух завершений: проигравший получает ErrAlreadyTerminal", func(t *testing.T) {
		svc, standupRepo, _, membershipRepo, _ := setupStandupService(t)

		standup := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusInProgress}
		standupRepo.On("GetByID", mock.Anything, 7).Return(standup, nil).Once()
		membershipRepo.On("GetByTeamAndUser", mock.Anything, 1, "u1").Return(lead, nil).Once()
		standupRepo.On("UpdateStatusIf", mock.Anything, 7, domain.StatusInProgress, domain.StatusCompleted, mock.Anything).
			Return(false, nil).Once()

		cancelled := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusCancelled}
		standupRepo.On("GetByID", mock.Anything, 7).Return(cancelled, nil).Once()

		_, err := svc.End(context.Background(), actor, 7)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrAlreadyTerminal)
	})

	t.Run("ошибка: стендап не найден", func(t *testing.T) {
		svc, standupRepo, _, _, _ := setupStandupService(t)

		standupRepo.On("GetByID", mock.Anything, 404).
			Return(nil, errors.New("standup not found")).Once()

		_, err := svc.End(context.Background(), actor, 404)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestStandupService_AutoComplete(t *testing.T) {
	t.Run("закрывает запущенный стендап без проверки прав", func(t *testing.T) {
		svc, standupRepo, _, _, publisher := setupStandupService(t)

		standup := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusInProgress}
		standupRepo.On("GetByID", mock.Anything, 7).Return(standup, nil).Once()
		standupRepo.On("UpdateStatusIf", mock.Anything, 7, domain.StatusInProgress, domain.StatusCompleted, mock.Anything).
			Return(true, nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		completed := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusCompleted}
		standupRepo.On("GetByID", mock.Anything, 7).Return(completed, nil).Once()

		result, err := svc.AutoComplete(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, result.Status)
	})

	t.Run("идемпотентность: уже закрытый стендап - не ошибка", func(t *testing.T) {
		svc, standupRepo, _, _, _ := setupStandupService(t)

		standup := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusCompleted}
		standupRepo.On("GetByID", mock.Anything, 7).Return(standup, nil).Once()

		result, err := svc.AutoComplete(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCompleted, result.Status)
		standupRepo.AssertNotCalled(t, "UpdateStatusIf", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestStandupService_Cancel(t *testing.T) {
	actor := domain.Actor{UserID: "admin", IsAdmin: true}

	t.Run("администратор отменяет pending-стендап", func(t *testing.T) {
		svc, standupRepo, _, _, publisher := setupStandupService(t)

		standup := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusPending}
		standupRepo.On("GetByID", mock.Anything, 7).Return(standup, nil).Once()
		standupRepo.On("UpdateStatusIf", mock.Anything, 7, domain.StatusPending, domain.StatusCancelled, mock.Anything).
			Return(true, nil).Once()
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil).Once()

		cancelled := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusCancelled}
		standupRepo.On("GetByID", mock.Anything, 7).Return(cancelled, nil).Once()

		result, err := svc.Cancel(context.Background(), actor, 7)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelled, result.Status)
	})
}

func TestStandupService_MissingMembers(t *testing.T) {
	t.Run("возвращает участников без ответа", func(t *testing.T) {
		svc, standupRepo, responseRepo, membershipRepo, _ := setupStandupService(t)

		standup := &domain.Standup{ID: 7, TeamID: 1, Status: domain.StatusInProgress}
		standupRepo.On("GetByID", mock.Anything, 7).Return(standup, nil).Once()

		members := []*domain.TeamMember{
			{TeamID: 1, UserID: "u1", IsActive: true},
			{TeamID: 1, UserID: "u2", IsActive: true},
			{TeamID: 1, UserID: "u3", IsActive: true},
		}
		membershipRepo.On("ListActiveByTeamID", mock.Anything, 1).Return(members, nil).Once()

		responses := []*domain.StandupResponse{
			{StandupID: 7, UserID: "u2"},
		}
		responseRepo.On("ListByStandupID", mock.Anything, 7).Return(responses, nil).Once()

		missing, err := svc.MissingMembers(context.Background(), 7)

		require.NoError(t, err)
		require.Len(t, missing, 2)
		assert.Equal(t, "u1", missing[0].UserID)
		assert.Equal(t, "u3", missing[1].UserID)
	})
}
