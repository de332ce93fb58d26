package domain

import "time"

type TimeRange string

const (
	RangeWeek    TimeRange = "week"
	RangeMonth   TimeRange = "month"
	RangeQuarter TimeRange = "quarter"
	RangeYear    TimeRange = "year"
)

// Days возвращает длину окна в днях, 0 для неизвестного диапазона
func (r TimeRange) Days() int {
	switch r {
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	case RangeQuarter:
		return 90
	case RangeYear:
		return 365
	}
	return 0
}

type Analytics struct {
	Overview            Overview
	ParticipationTrends []TrendPoint
	MoodAnalysis        MoodAnalysis
	TeamPerformance     []TeamPerformance
	ResponsePatterns    ResponsePatterns
}

// Overview - итоги окна; Change-поля равны nil, когда сравнение
// с предыдущим окном не определено (prev == 0 при curr > 0)
type Overview struct {
	TotalStandups        int
	StandupsChange       *float64
	TotalResponses       int
	ResponsesChange      *float64
	AvgParticipationRate float64
	ParticipationChange  *float64
	AvgMoodScore         float64
	MoodChange           *float64
}

type TrendPoint struct {
	Date              time.Time
	ParticipationRate float64
}

type MoodAnalysis struct {
	MoodDistribution []MoodSlice
}

type MoodSlice struct {
	Mood       Mood
	Count      int
	Percentage float64
}

// TeamPerformance - сводка по команде; AvgResponseTimeHours == nil,
// когда ни у одного ответа нет точки отсчёта started_at
type TeamPerformance struct {
	TeamID               int
	TeamName             string
	StandupsCount        int
	AvgParticipationRate float64
	TotalResponses       int
	AvgMoodScore         float64
	AvgResponseTimeHours *float64
}

type ResponsePatterns struct {
	HourlyDistribution []HourCount
	DailyDistribution  []DayCount
}

type HourCount struct {
	Hour  int
	Count int
}

type DayCount struct {
	DayName string
	Count   int
}

// StandupSample - сырая строка для агрегатора: стендап с числом ответов
// и числом активных участников команды на момент запроса
type StandupSample struct {
	ID            int
	TeamID        int
	TeamName      string
	Date          time.Time
	StartedAt     *time.Time
	ResponseCount int
	MemberCount   int
}

func (s StandupSample) CompletionRate() float64 {
	if s.MemberCount == 0 {
		return 0
	}
	return float64(s.ResponseCount) / float64(s.MemberCount) * 100
}

// ResponseSample - сырая строка ответа с контекстом стендапа
type ResponseSample struct {
	StandupID   int
	TeamID      int
	UserID      string
	Mood        Mood
	SubmittedAt time.Time
	StartedAt   *time.Time
}
