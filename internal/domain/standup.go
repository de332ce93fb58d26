package domain

import "time"

type Standup struct {
	ID            int
	TeamID        int
	TeamName      string
	Date          time.Time
	Status        StandupStatus
	StartedAt     *time.Time
	EndedAt       *time.Time
	ResponseCount int
	MemberCount   int
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

type StandupStatus string

const (
	StatusPending    StandupStatus = "pending"
	StatusInProgress StandupStatus = "in_progress"
	StatusCompleted  StandupStatus = "completed"
	StatusCancelled  StandupStatus = "cancelled"
)

func (s StandupStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal - из completed и cancelled переходов больше нет
func (s StandupStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CompletionRate - процент активных участников, отправивших ответ
func (s *Standup) CompletionRate() float64 {
	if s.MemberCount == 0 {
		return 0
	}
	return float64(s.ResponseCount) / float64(s.MemberCount) * 100
}

type StandupResponse struct {
	ID            int
	StandupID     int
	UserID        string
	Username      string
	TeamID        int
	TeamName      string
	StandupDate   time.Time
	YesterdayWork string
	TodayWork     string
	Blockers      string
	Mood          Mood
	SubmittedAt   time.Time
}

type Mood string

const (
	MoodGreat    Mood = "great"
	MoodGood     Mood = "good"
	MoodOkay     Mood = "okay"
	MoodStressed Mood = "stressed"
	MoodBlocked  Mood = "blocked"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodGreat, MoodGood, MoodOkay, MoodStressed, MoodBlocked:
		return true
	}
	return false
}

// Score - числовая шкала настроения для аналитики
func (m Mood) Score() int {
	switch m {
	case MoodGreat:
		return 5
	case MoodGood:
		return 4
	case MoodOkay:
		return 3
	case MoodStressed:
		return 2
	case MoodBlocked:
		return 1
	}
	return 0
}

// Moods - все значения в порядке убывания шкалы
var Moods = []Mood{MoodGreat, MoodGood, MoodOkay, MoodStressed, MoodBlocked}
