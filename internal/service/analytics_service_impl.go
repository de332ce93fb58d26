package service

import (
	"context"
	"sort"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/repository"
)

type analyticsService struct {
	analyticsRepo repository.AnalyticsRepository
	location      *time.Location
}

// NewAnalyticsService создает новый экземпляр AnalyticsService.
// Все календарные границы считаются в отчетном часовом поясе
func NewAnalyticsService(analyticsRepo repository.AnalyticsRepository, reportingTimezone string) (AnalyticsService, error) {
	location, err := time.LoadLocation(reportingTimezone)
	if err != nil {
		return nil, domain.NewValidationError("unknown reporting timezone: " + reportingTimezone)
	}
	return &analyticsService{
		analyticsRepo: analyticsRepo,
		location:      location,
	}, nil
}

// Build собирает аналитику за окно [сегодня-N+1 .. сегодня] и сравнивает
// итоги с предыдущим окном той же длины
func (s *analyticsService) Build(ctx context.Context, timeRange domain.TimeRange, teamID *int) (*domain.Analytics, error) {
	days := timeRange.Days()
	if days == 0 {
		return nil, domain.NewValidationError("invalid time range: " + string(timeRange))
	}

	now := time.Now().In(s.location)
	end := time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, s.location)
	start := end.AddDate(0, 0, -days)
	prevStart := start.AddDate(0, 0, -days)

	standups, err := s.analyticsRepo.StandupSamples(ctx, start, end, teamID)
	if err != nil {
		return nil, err
	}
	responses, err := s.analyticsRepo.ResponseSamples(ctx, start, end, teamID)
	if err != nil {
		return nil, err
	}
	prevStandups, err := s.analyticsRepo.StandupSamples(ctx, prevStart, start, teamID)
	if err != nil {
		return nil, err
	}
	prevResponses, err := s.analyticsRepo.ResponseSamples(ctx, prevStart, start, teamID)
	if err != nil {
		return nil, err
	}

	return &domain.Analytics{
		Overview:            buildOverview(standups, responses, prevStandups, prevResponses),
		ParticipationTrends: participationTrends(standups),
		MoodAnalysis:        domain.MoodAnalysis{MoodDistribution: moodDistribution(responses)},
		TeamPerformance:     teamPerformance(standups, responses),
		ResponsePatterns:    responsePatterns(responses, s.location),
	}, nil
}

// changePercent - изменение показателя к предыдущему окну в процентах.
// База ноль при ненулевом текущем значении - сравнение не определено, nil
func changePercent(prev, curr float64) *float64 {
	if prev == 0 {
		if curr == 0 {
			zero := 0.0
			return &zero
		}
		return nil
	}
	change := (curr - prev) / prev * 100
	return &change
}

func avgParticipation(standups []domain.StandupSample) float64 {
	if len(standups) == 0 {
		return 0
	}
	var sum float64
	for _, s := range standups {
		sum += s.CompletionRate()
	}
	return sum / float64(len(standups))
}

func avgMoodScore(responses []domain.ResponseSample) float64 {
	if len(responses) == 0 {
		return 0
	}
	var sum int
	for _, r := range responses {
		sum += r.Mood.Score()
	}
	return float64(sum) / float64(len(responses))
}

func buildOverview(standups []domain.StandupSample, responses []domain.ResponseSample, prevStandups []domain.StandupSample, prevResponses []domain.ResponseSample) domain.Overview {
	participation := avgParticipation(standups)
	prevParticipation := avgParticipation(prevStandups)
	mood := avgMoodScore(responses)
	prevMood := avgMoodScore(prevResponses)

	return domain.Overview{
		TotalStandups:        len(standups),
		StandupsChange:       changePercent(float64(len(prevStandups)), float64(len(standups))),
		TotalResponses:       len(responses),
		ResponsesChange:      changePercent(float64(len(prevResponses)), float64(len(responses))),
		AvgParticipationRate: participation,
		ParticipationChange:  changePercent(prevParticipation, participation),
		AvgMoodScore:         mood,
		MoodChange:           changePercent(prevMood, mood),
	}
}

// participationTrends - средний процент участия по дням, хронологически
func participationTrends(standups []domain.StandupSample) []domain.TrendPoint {
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[time.Time]*bucket)
	for _, s := range standups {
		day := time.Date(s.Date.Year(), s.Date.Month(), s.Date.Day(), 0, 0, 0, 0, time.UTC)
		b, ok := buckets[day]
		if !ok {
			b = &bucket{}
			buckets[day] = b
		}
		b.sum += s.CompletionRate()
		b.count++
	}

	var points []domain.TrendPoint
	for day, b := range buckets {
		points = append(points, domain.TrendPoint{
			Date:              day,
			ParticipationRate: b.sum / float64(b.count),
		})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date.Before(points[j].Date) })
	return points
}

// moodDistribution - счетчики настроений в порядке убывания шкалы;
// настроения без ответов не включаются
func moodDistribution(responses []domain.ResponseSample) []domain.MoodSlice {
	counts := make(map[domain.Mood]int)
	for _, r := range responses {
		counts[r.Mood]++
	}

	total := len(responses)
	slices := make([]domain.MoodSlice, 0, len(domain.Moods))
	for _, mood := range domain.Moods {
		count := counts[mood]
		if count == 0 {
			continue
		}
		slices = append(slices, domain.MoodSlice{
			Mood:       mood,
			Count:      count,
			Percentage: float64(count) / float64(total) * 100,
		})
	}
	return slices
}

// teamPerformance - сводка по командам, отсортирована по участию (убывание)
func teamPerformance(standups []domain.StandupSample, responses []domain.ResponseSample) []domain.TeamPerformance {
	type teamAgg struct {
		perf              domain.TeamPerformance
		participationSum  float64
		moodSum           int
		responseTimeSum   float64
		responseTimeCount int
	}

	teams := make(map[int]*teamAgg)
	for _, s := range standups {
		agg, ok := teams[s.TeamID]
		if !ok {
			agg = &teamAgg{perf: domain.TeamPerformance{TeamID: s.TeamID, TeamName: s.TeamName}}
			teams[s.TeamID] = agg
		}
		agg.perf.StandupsCount++
		agg.participationSum += s.CompletionRate()
	}

	for _, r := range responses {
		agg, ok := teams[r.TeamID]
		if !ok {
			continue
		}
		agg.perf.TotalResponses++
		agg.moodSum += r.Mood.Score()
		if r.StartedAt != nil {
			agg.responseTimeSum += r.SubmittedAt.Sub(*r.StartedAt).Hours()
			agg.responseTimeCount++
		}
	}

	result := make([]domain.TeamPerformance, 0, len(teams))
	for _, agg := range teams {
		if agg.perf.StandupsCount > 0 {
			agg.perf.AvgParticipationRate = agg.participationSum / float64(agg.perf.StandupsCount)
		}
		if agg.perf.TotalResponses > 0 {
			agg.perf.AvgMoodScore = float64(agg.moodSum) / float64(agg.perf.TotalResponses)
		}
		if agg.responseTimeCount > 0 {
			avg := agg.responseTimeSum / float64(agg.responseTimeCount)
			agg.perf.AvgResponseTimeHours = &avg
		}
		result = append(result, agg.perf)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].AvgParticipationRate != result[j].AvgParticipationRate {
			return result[i].AvgParticipationRate > result[j].AvgParticipationRate
		}
		return result[i].TeamName < result[j].TeamName
	})
	return result
}

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// responsePatterns - распределение ответов по часам и дням недели
// в отчетном часовом поясе
func responsePatterns(responses []domain.ResponseSample, location *time.Location) domain.ResponsePatterns {
	hourCounts := make(map[int]int)
	dayCounts := make(map[int]int)
	for _, r := range responses {
		local := r.SubmittedAt.In(location)
		hourCounts[local.Hour()]++
		dayCounts[domain.ISOWeekday(local.Weekday())]++
	}

	var hours []domain.HourCount
	for hour := 0; hour < 24; hour++ {
		if count, ok := hourCounts[hour]; ok {
			hours = append(hours, domain.HourCount{Hour: hour, Count: count})
		}
	}
	// Пиковые часы первыми
	sort.SliceStable(hours, func(i, j int) bool {
		return hours[i].Count > hours[j].Count
	})

	var days []domain.DayCount
	for weekday := 1; weekday <= 7; weekday++ {
		if count, ok := dayCounts[weekday]; ok {
			days = append(days, domain.DayCount{DayName: dayNames[weekday-1], Count: count})
		}
	}

	return domain.ResponsePatterns{
		HourlyDistribution: hours,
		DailyDistribution:  days,
	}
}
