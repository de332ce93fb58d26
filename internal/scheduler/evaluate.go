package scheduler

import (
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type ActionKind string

const (
	ActionStart    ActionKind = "start"
	ActionComplete ActionKind = "complete"
)

// Action - решение планировщика для одного тика
type Action struct {
	Kind      ActionKind
	TeamID    int
	StandupID int
	Date      time.Time
}

// Evaluate - чистая функция решений: по текущему моменту, активным
// расписаниям и открытым стендапам возвращает список действий.
// Вся работа с часовыми поясами идёт здесь: момент напоминания
// сравнивается с точностью до минуты в поясе расписания, поэтому
// тикать нужно не реже раза в минуту
func Evaluate(now time.Time, schedules []*domain.StandupSchedule, open []*domain.Standup) []Action {
	var actions []Action

	byTeam := make(map[int]*domain.StandupSchedule, len(schedules))
	for _, schedule := range schedules {
		if !schedule.IsActive {
			continue
		}
		byTeam[schedule.TeamID] = schedule

		location, err := time.LoadLocation(schedule.Timezone)
		if err != nil {
			continue
		}
		local := now.In(location)

		if !schedule.HasWeekday(domain.ISOWeekday(local.Weekday())) {
			continue
		}
		if local.Hour() == schedule.ReminderTime.Hour && local.Minute() == schedule.ReminderTime.Minute {
			actions = append(actions, Action{
				Kind:   ActionStart,
				TeamID: schedule.TeamID,
				Date:   time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC),
			})
		}
	}

	for _, standup := range open {
		schedule, ok := byTeam[standup.TeamID]
		if !ok {
			// Без активного расписания стендап закрывают вручную
			continue
		}
		location, err := time.LoadLocation(schedule.Timezone)
		if err != nil {
			continue
		}
		local := now.In(location)

		sameDay := local.Year() == standup.Date.Year() &&
			local.Month() == standup.Date.Month() &&
			local.Day() == standup.Date.Day()
		pastEnd := local.Hour()*60+local.Minute() >= schedule.EndTime.Minutes()

		if !sameDay || pastEnd {
			actions = append(actions, Action{
				Kind:      ActionComplete,
				TeamID:    standup.TeamID,
				StandupID: standup.ID,
				Date:      standup.Date,
			})
		}
	}

	return actions
}
