package service

import (
	"context"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/events"
	"github.com/bagdasarian/standup-tracker/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) Update(ctx context.Context, team *domain.Team) error {
	args := m.Called(ctx, team)
	return args.Error(0)
}

func (m *MockTeamRepository) SetIsActive(ctx context.Context, teamID int, isActive bool) error {
	args := m.Called(ctx, teamID, isActive)
	return args.Error(0)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) ListActive(ctx context.Context) ([]*domain.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

func (m *MockTeamRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*domain.Team, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Team), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Add(ctx context.Context, member *domain.TeamMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMembershipRepository) Reactivate(ctx context.Context, teamID int, userID string, role domain.Role) (*domain.TeamMember, error) {
	args := m.Called(ctx, teamID, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockMembershipRepository) SetIsActive(ctx context.Context, teamID int, userID string, isActive bool) error {
	args := m.Called(ctx, teamID, userID, isActive)
	return args.Error(0)
}

func (m *MockMembershipRepository) GetByTeamAndUser(ctx context.Context, teamID int, userID string) (*domain.TeamMember, error) {
	args := m.Called(ctx, teamID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TeamMember), args.Error(1)
}

func (m *MockMembershipRepository) ListActiveByTeamID(ctx context.Context, teamID int) ([]*domain.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamMember), args.Error(1)
}

func (m *MockMembershipRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*domain.TeamMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamMember), args.Error(1)
}

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) Create(ctx context.Context, schedule *domain.StandupSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) Update(ctx context.Context, schedule *domain.StandupSchedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockScheduleRepository) GetByID(ctx context.Context, id int) (*domain.StandupSchedule, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StandupSchedule), args.Error(1)
}

func (m *MockScheduleRepository) GetActiveByTeamID(ctx context.Context, teamID int) (*domain.StandupSchedule, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StandupSchedule), args.Error(1)
}

func (m *MockScheduleRepository) ListActive(ctx context.Context) ([]*domain.StandupSchedule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StandupSchedule), args.Error(1)
}

type MockStandupRepository struct {
	mock.Mock
}

func (m *MockStandupRepository) Create(ctx context.Context, standup *domain.Standup) error {
	args := m.Called(ctx, standup)
	return args.Error(0)
}

func (m *MockStandupRepository) GetByID(ctx context.Context, id int) (*domain.Standup, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Standup), args.Error(1)
}

func (m *MockStandupRepository) GetByTeamAndDate(ctx context.Context, teamID int, date time.Time) (*domain.Standup, error) {
	args := m.Called(ctx, teamID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Standup), args.Error(1)
}

func (m *MockStandupRepository) UpdateStatusIf(ctx context.Context, id int, from, to domain.StandupStatus, endedAt *time.Time) (bool, error) {
	args := m.Called(ctx, id, from, to, endedAt)
	return args.Bool(0), args.Error(1)
}

func (m *MockStandupRepository) List(ctx context.Context, filter repository.StandupFilter) ([]*domain.Standup, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Standup), args.Error(1)
}

func (m *MockStandupRepository) ListInProgress(ctx context.Context) ([]*domain.Standup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Standup), args.Error(1)
}

func (m *MockStandupRepository) ListRecentByUserID(ctx context.Context, userID string, limit int) ([]*domain.Standup, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Standup), args.Error(1)
}

type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) Create(ctx context.Context, response *domain.StandupResponse) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockResponseRepository) GetByStandupAndUser(ctx context.Context, standupID int, userID string) (*domain.StandupResponse, error) {
	args := m.Called(ctx, standupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StandupResponse), args.Error(1)
}

func (m *MockResponseRepository) ListByStandupID(ctx context.Context, standupID int) ([]*domain.StandupResponse, error) {
	args := m.Called(ctx, standupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StandupResponse), args.Error(1)
}

func (m *MockResponseRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]*domain.StandupResponse, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StandupResponse), args.Error(1)
}

func (m *MockResponseRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]*domain.StandupResponse, error) {
	args := m.Called(ctx, userID, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StandupResponse), args.Error(1)
}

func (m *MockResponseRepository) ListRecentByUserTeams(ctx context.Context, userID string, limit int) ([]*domain.StandupResponse, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StandupResponse), args.Error(1)
}

func (m *MockResponseRepository) ResponseDates(ctx context.Context, userID string, limit int) ([]time.Time, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]time.Time), args.Error(1)
}

type MockAnalyticsRepository struct {
	mock.Mock
}

func (m *MockAnalyticsRepository) StandupSamples(ctx context.Context, start, end time.Time, teamID *int) ([]domain.StandupSample, error) {
	args := m.Called(ctx, start, end, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StandupSample), args.Error(1)
}

func (m *MockAnalyticsRepository) ResponseSamples(ctx context.Context, start, end time.Time, teamID *int) ([]domain.ResponseSample, error) {
	args := m.Called(ctx, start, end, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResponseSample), args.Error(1)
}

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, event events.StandupEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
