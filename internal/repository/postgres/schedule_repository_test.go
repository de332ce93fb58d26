package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupScheduleRepo создает мок БД и репозиторий для StandupSchedule
func setupScheduleRepo(t *testing.T) (*scheduleRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewScheduleRepository(db), mock
}

func TestEncodeDecodeWeekdays(t *testing.T) {
	t.Run("кодирование и разбор обратимы", func(t *testing.T) {
		encoded := encodeWeekdays([]int{1, 2, 3, 4, 5})
		assert.Equal(t, "1,2,3,4,5", encoded)

		decoded, err := decodeWeekdays(encoded)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, decoded)
	})

	t.Run("ошибка при мусоре в строке", func(t *testing.T) {
		_, err := decodeWeekdays("1,x,3")
		require.Error(t, err)
	})
}

func TestEncodeDecodeDayTime(t *testing.T) {
	t.Run("время кодируется как HH:MM:SS", func(t *testing.T) {
		encoded := encodeDayTime(domain.DayTime{Hour: 9, Minute: 30})
		assert.Equal(t, "09:30:00", encoded)

		decoded, err := decodeDayTime(encoded)
		require.NoError(t, err)
		assert.Equal(t, domain.DayTime{Hour: 9, Minute: 30}, decoded)
	})

	t.Run("ошибка при невалидной строке", func(t *testing.T) {
		_, err := decodeDayTime("25:99")
		require.Error(t, err)
	})
}

// TestScheduleRepository_GetActiveByTeamID - тест выборки активного расписания
func TestScheduleRepository_GetActiveByTeamID(t *testing.T) {
	scheduleColumnNames := []string{
		"id", "team_id", "weekdays", "reminder_time", "end_time",
		"timezone", "is_active", "created_at", "updated_at",
	}

	t.Run("успешное получение активного расписания", func(t *testing.T) {
		repo, mock := setupScheduleRepo(t)

		createdAt := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows(scheduleColumnNames).
			AddRow(1, 3, "1,3,5", "09:30:00", "18:00:00", "Europe/Moscow", true, createdAt, nil)
		mock.ExpectQuery("SELECT").
			WithArgs(3).
			WillReturnRows(rows)

		schedule, err := repo.GetActiveByTeamID(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, 1, schedule.ID)
		assert.Equal(t, []int{1, 3, 5}, schedule.Weekdays)
		assert.Equal(t, domain.DayTime{Hour: 9, Minute: 30}, schedule.ReminderTime)
		assert.Equal(t, domain.DayTime{Hour: 18, Minute: 0}, schedule.EndTime)
		assert.Equal(t, "Europe/Moscow", schedule.Timezone)

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("ошибка: расписание не найдено", func(t *testing.T) {
		repo, mock := setupScheduleRepo(t)

		mock.ExpectQuery("SELECT").
			WithArgs(3).
			WillReturnError(sql.ErrNoRows)

		schedule, err := repo.GetActiveByTeamID(context.Background(), 3)

		require.Error(t, err)
		assert.Nil(t, schedule)
		assert.Equal(t, "schedule not found", err.Error())

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})
}
