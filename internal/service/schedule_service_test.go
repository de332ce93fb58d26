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

func setupScheduleService(t *testing.T) (ScheduleService, *MockScheduleRepository, *MockTeamRepository) {
	scheduleRepo := new(MockScheduleRepository)
	teamRepo := new(MockTeamRepository)
	svc := NewScheduleService(scheduleRepo, teamRepo)
	return svc, scheduleRepo, teamRepo
}

func validSchedule() *domain.StandupSchedule {
	return &domain.StandupSchedule{
		TeamID:       1,
		Weekdays:     []int{1, 2, 3, 4, 5},
		ReminderTime: domain.DayTime{Hour: 9, Minute: 30},
		EndTime:      domain.DayTime{Hour: 18, Minute: 0},
		Timezone:     "Europe/Moscow",
	}
}

func TestScheduleService_CreateSchedule(t *testing.T) {
	admin := domain.Actor{UserID: "u1", IsAdmin: true}

	t.Run("успешное создание расписания", func(t *testing.T) {
		svc, scheduleRepo, teamRepo := setupScheduleService(t)

		teamRepo.On("GetByID", mock.Anything, 1).Return(&domain.Team{ID: 1}, nil).Once()
		scheduleRepo.On("GetActiveByTeamID", mock.Anything, 1).
			Return(nil, errors.New("schedule not found")).Once()
		scheduleRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.StandupSchedule) bool {
			return s.TeamID == 1 && s.IsActive
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.StandupSchedule).ID = 5
		}).Return(nil).Once()

		created := validSchedule()
		created.ID = 5
		created.IsActive = true
		scheduleRepo.On("GetByID", mock.Anything, 5).Return(created, nil).Once()

		schedule, err := svc.CreateSchedule(context.Background(), admin, validSchedule())

		require.NoError(t, err)
		assert.Equal(t, 5, schedule.ID)
		scheduleRepo.AssertExpectations(t)
	})

	t.Run("ошибка: у команды уже есть активное расписание", func(t *testing.T) {
		svc, scheduleRepo, teamRepo := setupScheduleService(t)

		teamRepo.On("GetByID", mock.Anything, 1).Return(&domain.Team{ID: 1}, nil).Once()
		existing := validSchedule()
		existing.ID = 2
		scheduleRepo.On("GetActiveByTeamID", mock.Anything, 1).Return(existing, nil).Once()

		_, err := svc.CreateSchedule(context.Background(), admin, validSchedule())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrScheduleConflict)
		scheduleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: не администратор", func(t *testing.T) {
		svc, scheduleRepo, _ := setupScheduleService(t)

		_, err := svc.CreateSchedule(context.Background(), domain.Actor{UserID: "u2"}, validSchedule())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		scheduleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("валидация: пустые дни недели", func(t *testing.T) {
		svc, _, teamRepo := setupScheduleService(t)
		teamRepo.On("GetByID", mock.Anything, 1).Return(&domain.Team{ID: 1}, nil).Once()

		schedule := validSchedule()
		schedule.Weekdays = nil
		_, err := svc.CreateSchedule(context.Background(), admin, schedule)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("валидация: день недели вне диапазона 1-7", func(t *testing.T) {
		svc, _, teamRepo := setupScheduleService(t)
		teamRepo.On("GetByID", mock.Anything, 1).Return(&domain.Team{ID: 1}, nil).Once()

		schedule := validSchedule()
		schedule.Weekdays = []int{0, 3}
		_, err := svc.CreateSchedule(context.Background(), admin, schedule)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("валидация: неизвестный часовой пояс", func(t *testing.T) {
		svc, _, teamRepo := setupScheduleService(t)
		teamRepo.On("GetByID", mock.Anything, 1).Return(&domain.Team{ID: 1}, nil).Once()

		schedule := validSchedule()
		schedule.Timezone = "Mars/Olympus"
		_, err := svc.CreateSchedule(context.Background(), admin, schedule)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("валидация: напоминание не раньше окончания", func(t *testing.T) {
		svc, _, teamRepo := setupScheduleService(t)
		teamRepo.On("GetByID", mock.Anything, 1).Return(&domain.Team{ID: 1}, nil).Once()

		schedule := validSchedule()
		schedule.ReminderTime = domain.DayTime{Hour: 18, Minute: 0}
		schedule.EndTime = domain.DayTime{Hour: 9, Minute: 30}
		_, err := svc.CreateSchedule(context.Background(), admin, schedule)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("дни недели нормализуются: сортировка без дубликатов", func(t *testing.T) {
		svc, scheduleRepo, teamRepo := setupScheduleService(t)

		teamRepo.On("GetByID", mock.Anything, 1).Return(&domain.Team{ID: 1}, nil).Once()
		scheduleRepo.On("GetActiveByTeamID", mock.Anything, 1).
			Return(nil, errors.New("schedule not found")).Once()
		scheduleRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *domain.StandupSchedule) bool {
			return assert.ObjectsAreEqual([]int{1, 3, 5}, s.Weekdays)
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.StandupSchedule).ID = 6
		}).Return(nil).Once()
		scheduleRepo.On("GetByID", mock.Anything, 6).Return(validSchedule(), nil).Once()

		schedule := validSchedule()
		schedule.Weekdays = []int{5, 1, 3, 1, 5}
		_, err := svc.CreateSchedule(context.Background(), admin, schedule)

		require.NoError(t, err)
		scheduleRepo.AssertExpectations(t)
	})
}

func TestScheduleService_DeleteSchedule(t *testing.T) {
	admin := domain.Actor{UserID: "u1", IsAdmin: true}

	t.Run("успешное удаление", func(t *testing.T) {
		svc, scheduleRepo, _ := setupScheduleService(t)

		existing := validSchedule()
		existing.ID = 5
		scheduleRepo.On("GetActiveByTeamID", mock.Anything, 1).Return(existing, nil).Once()
		scheduleRepo.On("Delete", mock.Anything, 5).Return(nil).Once()

		err := svc.DeleteSchedule(context.Background(), admin, 1)

		require.NoError(t, err)
		scheduleRepo.AssertExpectations(t)
	})

	t.Run("ошибка: расписания нет", func(t *testing.T) {
		svc, scheduleRepo, _ := setupScheduleService(t)

		scheduleRepo.On("GetActiveByTeamID", mock.Anything, 1).
			Return(nil, errors.New("schedule not found")).Once()

		err := svc.DeleteSchedule(context.Background(), admin, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
