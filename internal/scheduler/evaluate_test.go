package scheduler

import (
	"testing"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mskSchedule(teamID int) *domain.StandupSchedule {
	return &domain.StandupSchedule{
		ID:           teamID,
		TeamID:       teamID,
		Weekdays:     []int{1, 2, 3, 4, 5},
		ReminderTime: domain.DayTime{Hour: 9, Minute: 30},
		EndTime:      domain.DayTime{Hour: 18, Minute: 0},
		Timezone:     "Europe/Moscow",
		IsActive:     true,
	}
}

// mskTime - момент в поясе Europe/Moscow (UTC+3, без летнего времени)
func mskTime(t *testing.T, year int, month time.Month, day, hour, minute int) time.Time {
	location, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	return time.Date(year, month, day, hour, minute, 0, 0, location)
}

func TestEvaluate_Start(t *testing.T) {
	t.Run("старт в минуту напоминания в поясе расписания", func(t *testing.T) {
		// Понедельник 10 марта 2025, 09:30 МСК
		now := mskTime(t, 2025, 3, 10, 9, 30)

		actions := Evaluate(now, []*domain.StandupSchedule{mskSchedule(1)}, nil)

		require.Len(t, actions, 1)
		assert.Equal(t, ActionStart, actions[0].Kind)
		assert.Equal(t, 1, actions[0].TeamID)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), actions[0].Date)
	})

	t.Run("минута не совпала - действий нет", func(t *testing.T) {
		now := mskTime(t, 2025, 3, 10, 9, 31)

		actions := Evaluate(now, []*domain.StandupSchedule{mskSchedule(1)}, nil)

		assert.Empty(t, actions)
	})

	t.Run("день недели не входит в расписание", func(t *testing.T) {
		// Суббота 15 марта 2025
		now := mskTime(t, 2025, 3, 15, 9, 30)

		actions := Evaluate(now, []*domain.StandupSchedule{mskSchedule(1)}, nil)

		assert.Empty(t, actions)
	})

	t.Run("неактивное расписание не срабатывает", func(t *testing.T) {
		now := mskTime(t, 2025, 3, 10, 9, 30)
		schedule := mskSchedule(1)
		schedule.IsActive = false

		actions := Evaluate(now, []*domain.StandupSchedule{schedule}, nil)

		assert.Empty(t, actions)
	})

	t.Run("момент сравнивается в поясе расписания, а не в UTC", func(t *testing.T) {
		// 06:30 UTC == 09:30 МСК
		now := time.Date(2025, 3, 10, 6, 30, 0, 0, time.UTC)

		actions := Evaluate(now, []*domain.StandupSchedule{mskSchedule(1)}, nil)

		require.Len(t, actions, 1)
		assert.Equal(t, ActionStart, actions[0].Kind)
	})
}

func TestEvaluate_Complete(t *testing.T) {
	openStandup := func(teamID int, date time.Time) *domain.Standup {
		return &domain.Standup{ID: 100 + teamID, TeamID: teamID, Date: date, Status: domain.StatusInProgress}
	}

	t.Run("закрытие после end_time того же дня", func(t *testing.T) {
		now := mskTime(t, 2025, 3, 10, 18, 0)
		standup := openStandup(1, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

		actions := Evaluate(now, []*domain.StandupSchedule{mskSchedule(1)}, []*domain.Standup{standup})

		require.Len(t, actions, 1)
		assert.Equal(t, ActionComplete, actions[0].Kind)
		assert.Equal(t, standup.ID, actions[0].StandupID)
	})

	t.Run("до end_time стендап остаётся открытым", func(t *testing.T) {
		now := mskTime(t, 2025, 3, 10, 17, 59)
		standup := openStandup(1, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

		actions := Evaluate(now, []*domain.StandupSchedule{mskSchedule(1)}, []*domain.Standup{standup})

		assert.Empty(t, actions)
	})

	t.Run("вчерашний стендап закрывается в любое время", func(t *testing.T) {
		now := mskTime(t, 2025, 3, 11, 8, 0)
		standup := openStandup(1, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

		actions := Evaluate(now, []*domain.StandupSchedule{mskSchedule(1)}, []*domain.Standup{standup})

		require.Len(t, actions, 1)
		assert.Equal(t, ActionComplete, actions[0].Kind)
	})

	t.Run("без активного расписания стендап не трогаем", func(t *testing.T) {
		now := mskTime(t, 2025, 3, 10, 23, 0)
		standup := openStandup(9, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

		actions := Evaluate(now, []*domain.StandupSchedule{mskSchedule(1)}, []*domain.Standup{standup})

		assert.Empty(t, actions)
	})

	t.Run("старт и закрытие разных команд в одном тике", func(t *testing.T) {
		// 09:30 МСК == 06:30 UTC; для команды в UTC end_time уже позади
		utcSchedule := &domain.StandupSchedule{
			ID:           2,
			TeamID:       2,
			Weekdays:     []int{1, 2, 3, 4, 5},
			ReminderTime: domain.DayTime{Hour: 1, Minute: 0},
			EndTime:      domain.DayTime{Hour: 6, Minute: 0},
			Timezone:     "UTC",
			IsActive:     true,
		}
		now := mskTime(t, 2025, 3, 10, 9, 30)
		standup := openStandup(2, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))

		actions := Evaluate(now,
			[]*domain.StandupSchedule{mskSchedule(1), utcSchedule},
			[]*domain.Standup{standup})

		require.Len(t, actions, 2)
		assert.Equal(t, ActionStart, actions[0].Kind)
		assert.Equal(t, 1, actions[0].TeamID)
		assert.Equal(t, ActionComplete, actions[1].Kind)
		assert.Equal(t, 2, actions[1].TeamID)
	})
}
