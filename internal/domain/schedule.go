package domain

import "time"

// StandupSchedule - правило повторения стендапа: дни недели 1-7 (понедельник=1),
// время напоминания и окончания в часовом поясе команды
type StandupSchedule struct {
	ID           int
	TeamID       int
	Weekdays     []int
	ReminderTime DayTime
	EndTime      DayTime
	Timezone     string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// DayTime - время дня без даты и пояса
type DayTime struct {
	Hour   int
	Minute int
}

func (t DayTime) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t DayTime) Before(other DayTime) bool {
	return t.Minutes() < other.Minutes()
}

// HasWeekday проверяет вхождение дня недели (1-7, понедельник=1)
func (s *StandupSchedule) HasWeekday(weekday int) bool {
	for _, d := range s.Weekdays {
		if d == weekday {
			return true
		}
	}
	return false
}

// ISOWeekday переводит time.Weekday в формат расписания (понедельник=1 ... воскресенье=7)
func ISOWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}
