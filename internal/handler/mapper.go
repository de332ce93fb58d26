package handler

import (
	"fmt"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

const dateLayout = "2006-01-02"

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		TeamID:      team.ID,
		TeamName:    team.Name,
		Description: team.Description,
		IsActive:    team.IsActive,
		MemberCount: team.MemberCount,
		CreatedAt:   team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   formatTimePtr(team.UpdatedAt),
	}
}

func domainTeamsToHTTP(teams []*domain.Team) []TeamResponse {
	result := make([]TeamResponse, 0, len(teams))
	for _, team := range teams {
		result = append(result, domainTeamToHTTP(team))
	}
	return result
}

func domainMemberToHTTP(member *domain.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		UserID:     member.UserID,
		Username:   member.Username,
		Role:       string(member.Role),
		ChatUserID: member.ChatUserID,
		IsActive:   member.IsActive,
		JoinedAt:   member.JoinedAt.Format(time.RFC3339),
	}
}

func domainMembersToHTTP(members []*domain.TeamMember) []TeamMemberResponse {
	result := make([]TeamMemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, domainMemberToHTTP(member))
	}
	return result
}

func formatDayTime(t domain.DayTime) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// parseDayTime разбирает время вида "09:30"
func parseDayTime(s string) (domain.DayTime, error) {
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return domain.DayTime{}, domain.NewValidationError(
			fmt.Sprintf("invalid time %q, expected HH:MM", s))
	}
	return domain.DayTime{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func domainScheduleToHTTP(schedule *domain.StandupSchedule) ScheduleResponse {
	return ScheduleResponse{
		ScheduleID:   schedule.ID,
		TeamID:       schedule.TeamID,
		Weekdays:     schedule.Weekdays,
		ReminderTime: formatDayTime(schedule.ReminderTime),
		EndTime:      formatDayTime(schedule.EndTime),
		Timezone:     schedule.Timezone,
		IsActive:     schedule.IsActive,
	}
}

func httpScheduleToDomain(req ScheduleRequest) (*domain.StandupSchedule, error) {
	reminderTime, err := parseDayTime(req.ReminderTime)
	if err != nil {
		return nil, err
	}
	endTime, err := parseDayTime(req.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.StandupSchedule{
		TeamID:       req.TeamID,
		Weekdays:     req.Weekdays,
		ReminderTime: reminderTime,
		EndTime:      endTime,
		Timezone:     req.Timezone,
		IsActive:     true,
	}, nil
}

func domainStandupToHTTP(standup *domain.Standup) StandupResponseModel {
	return StandupResponseModel{
		StandupID:      standup.ID,
		TeamID:         standup.TeamID,
		TeamName:       standup.TeamName,
		Date:           standup.Date.Format(dateLayout),
		Status:         string(standup.Status),
		StartedAt:      formatTimePtr(standup.StartedAt),
		EndedAt:        formatTimePtr(standup.EndedAt),
		ResponseCount:  standup.ResponseCount,
		MemberCount:    standup.MemberCount,
		CompletionRate: standup.CompletionRate(),
	}
}

func domainStandupsToHTTP(standups []*domain.Standup) []StandupResponseModel {
	result := make([]StandupResponseModel, 0, len(standups))
	for _, standup := range standups {
		result = append(result, domainStandupToHTTP(standup))
	}
	return result
}

func domainResponseToHTTP(response *domain.StandupResponse) ResponseModel {
	return ResponseModel{
		ResponseID:    response.ID,
		StandupID:     response.StandupID,
		UserID:        response.UserID,
		Username:      response.Username,
		TeamID:        response.TeamID,
		TeamName:      response.TeamName,
		StandupDate:   response.StandupDate.Format(dateLayout),
		YesterdayWork: response.YesterdayWork,
		TodayWork:     response.TodayWork,
		Blockers:      response.Blockers,
		Mood:          string(response.Mood),
		SubmittedAt:   response.SubmittedAt.Format(time.RFC3339),
	}
}

func domainResponsesToHTTP(responses []*domain.StandupResponse) []ResponseModel {
	result := make([]ResponseModel, 0, len(responses))
	for _, response := range responses {
		result = append(result, domainResponseToHTTP(response))
	}
	return result
}

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		IsActive: user.IsActive,
	}
}

func domainAnalyticsToHTTP(analytics *domain.Analytics) AnalyticsResponse {
	trends := make([]TrendPointResponse, 0, len(analytics.ParticipationTrends))
	for _, point := range analytics.ParticipationTrends {
		trends = append(trends, TrendPointResponse{
			Date:              point.Date.Format(dateLayout),
			ParticipationRate: point.ParticipationRate,
		})
	}

	moods := make([]MoodSliceResponse, 0, len(analytics.MoodAnalysis.MoodDistribution))
	for _, slice := range analytics.MoodAnalysis.MoodDistribution {
		moods = append(moods, MoodSliceResponse{
			Mood:       string(slice.Mood),
			Count:      slice.Count,
			Percentage: slice.Percentage,
		})
	}

	teams := make([]TeamPerformanceResponse, 0, len(analytics.TeamPerformance))
	for _, team := range analytics.TeamPerformance {
		teams = append(teams, TeamPerformanceResponse{
			TeamID:               team.TeamID,
			TeamName:             team.TeamName,
			StandupsCount:        team.StandupsCount,
			AvgParticipationRate: team.AvgParticipationRate,
			TotalResponses:       team.TotalResponses,
			AvgMoodScore:         team.AvgMoodScore,
			AvgResponseTimeHours: team.AvgResponseTimeHours,
		})
	}

	hours := make([]HourCountResponse, 0, len(analytics.ResponsePatterns.HourlyDistribution))
	for _, hour := range analytics.ResponsePatterns.HourlyDistribution {
		hours = append(hours, HourCountResponse{Hour: hour.Hour, Count: hour.Count})
	}

	days := make([]DayCountResponse, 0, len(analytics.ResponsePatterns.DailyDistribution))
	for _, day := range analytics.ResponsePatterns.DailyDistribution {
		days = append(days, DayCountResponse{DayName: day.DayName, Count: day.Count})
	}

	return AnalyticsResponse{
		Overview: OverviewResponse{
			TotalStandups:        analytics.Overview.TotalStandups,
			StandupsChange:       analytics.Overview.StandupsChange,
			TotalResponses:       analytics.Overview.TotalResponses,
			ResponsesChange:      analytics.Overview.ResponsesChange,
			AvgParticipationRate: analytics.Overview.AvgParticipationRate,
			ParticipationChange:  analytics.Overview.ParticipationChange,
			AvgMoodScore:         analytics.Overview.AvgMoodScore,
			MoodChange:           analytics.Overview.MoodChange,
		},
		ParticipationTrends: trends,
		MoodAnalysis:        MoodAnalysisResponse{MoodDistribution: moods},
		TeamPerformance:     teams,
		ResponsePatterns: ResponsePatternsResponse{
			HourlyDistribution: hours,
			DailyDistribution:  days,
		},
	}
}

func domainDashboardToHTTP(dashboard *domain.Dashboard) DashboardResponse {
	teamStats := make([]TeamStatsResponse, 0, len(dashboard.TeamStats))
	for _, stats := range dashboard.TeamStats {
		teamStats = append(teamStats, TeamStatsResponse{
			TeamID:            stats.TeamID,
			TeamName:          stats.TeamName,
			StandupsThisWeek:  stats.StandupsThisWeek,
			AvgCompletionRate: stats.AvgCompletionRate,
			UserParticipation: stats.UserParticipation,
		})
	}

	return DashboardResponse{
		UserStats: UserStatsResponse{
			TeamsCount:        dashboard.UserStats.TeamsCount,
			ResponsesThisWeek: dashboard.UserStats.ResponsesThisWeek,
			CurrentStreak:     dashboard.UserStats.CurrentStreak,
			AvgMoodThisWeek:   dashboard.UserStats.AvgMoodThisWeek,
		},
		TeamStats:       teamStats,
		RecentStandups:  domainStandupsToHTTP(dashboard.RecentStandups),
		RecentResponses: domainResponsesToHTTP(dashboard.RecentResponses),
	}
}
