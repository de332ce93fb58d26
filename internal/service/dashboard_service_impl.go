package service

import (
	"context"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/repository"
)

type dashboardService struct {
	teamRepo      repository.TeamRepository
	standupRepo   repository.StandupRepository
	responseRepo  repository.ResponseRepository
	analyticsRepo repository.AnalyticsRepository
	location      *time.Location
}

// NewDashboardService создает новый экземпляр DashboardService
func NewDashboardService(
	teamRepo repository.TeamRepository,
	standupRepo repository.StandupRepository,
	responseRepo repository.ResponseRepository,
	analyticsRepo repository.AnalyticsRepository,
	reportingTimezone string,
) (DashboardService, error) {
	location, err := time.LoadLocation(reportingTimezone)
	if err != nil {
		return nil, domain.NewValidationError("unknown reporting timezone: " + reportingTimezone)
	}
	return &dashboardService{
		teamRepo:      teamRepo,
		standupRepo:   standupRepo,
		responseRepo:  responseRepo,
		analyticsRepo: analyticsRepo,
		location:      location,
	}, nil
}

// Build собирает личную сводку: статистика за последние 7 дней,
// текущая серия ответов и срез по командам пользователя
func (s *dashboardService) Build(ctx context.Context, actor domain.Actor) (*domain.Dashboard, error) {
	now := time.Now().In(s.location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)
	weekStart := today.AddDate(0, 0, -6)
	tomorrow := today.AddDate(0, 0, 1)

	teams, err := s.teamRepo.ListActiveByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}

	weekResponses, err := s.responseRepo.ListByUserSince(ctx, actor.UserID, weekStart)
	if err != nil {
		return nil, err
	}

	var moodSum int
	for _, r := range weekResponses {
		moodSum += r.Mood.Score()
	}
	var avgMood float64
	if len(weekResponses) > 0 {
		avgMood = float64(moodSum) / float64(len(weekResponses))
	}

	dates, err := s.responseRepo.ResponseDates(ctx, actor.UserID, 60)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{
		UserStats: domain.UserStats{
			TeamsCount:        len(teams),
			ResponsesThisWeek: len(weekResponses),
			CurrentStreak:     currentStreak(dates, today),
			AvgMoodThisWeek:   avgMood,
		},
	}

	for _, team := range teams {
		stats, err := s.teamWeekStats(ctx, team, actor.UserID, weekStart, tomorrow)
		if err != nil {
			return nil, err
		}
		// Команды без стендапов за неделю не показываются
		if stats.StandupsThisWeek > 0 {
			dashboard.TeamStats = append(dashboard.TeamStats, stats)
		}
	}

	dashboard.RecentStandups, err = s.standupRepo.ListRecentByUserID(ctx, actor.UserID, 5)
	if err != nil {
		return nil, err
	}

	dashboard.RecentResponses, err = s.responseRepo.ListRecentByUserTeams(ctx, actor.UserID, 10)
	if err != nil {
		return nil, err
	}

	return dashboard, nil
}

func (s *dashboardService) teamWeekStats(ctx context.Context, team *domain.Team, userID string, start, end time.Time) (domain.TeamStats, error) {
	stats := domain.TeamStats{TeamID: team.ID, TeamName: team.Name}

	standups, err := s.analyticsRepo.StandupSamples(ctx, start, end, &team.ID)
	if err != nil {
		return stats, err
	}
	stats.StandupsThisWeek = len(standups)
	stats.AvgCompletionRate = avgParticipation(standups)

	responses, err := s.analyticsRepo.ResponseSamples(ctx, start, end, &team.ID)
	if err != nil {
		return stats, err
	}
	for _, r := range responses {
		if r.UserID == userID {
			stats.UserParticipation++
		}
	}

	return stats, nil
}

// currentStreak - длина непрерывной серии дней с ответом, считая назад
// от сегодня. Если сегодня ответа ещё нет, серия может начинаться вчера
func currentStreak(dates []time.Time, today time.Time) int {
	if len(dates) == 0 {
		return 0
	}

	expected := today
	if !sameDay(dates[0], today) {
		expected = today.AddDate(0, 0, -1)
	}

	streak := 0
	for _, date := range dates {
		if !sameDay(date, expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
