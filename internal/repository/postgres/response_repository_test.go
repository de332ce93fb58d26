package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupResponseRepo создает мок БД и репозиторий для StandupResponse
func setupResponseRepo(t *testing.T) (*responseRepository, sqlmock.Sqlmock) {
	db, mock := setupMockDB(t)
	return NewResponseRepository(db), mock
}

// TestResponseRepository_Create - тест вставки ответа
// Статус стендапа перепроверяется под блокировкой строки в той же
// транзакции, что и вставка
func TestResponseRepository_Create(t *testing.T) {
	t.Run("успешная вставка при статусе in_progress", func(t *testing.T) {
		repo, mock := setupResponseRepo(t)

		now := time.Now()
		response := &domain.StandupResponse{
			StandupID:     7,
			UserID:        "u42",
			YesterdayWork: "выкатил релиз",
			TodayWork:     "чиню тесты",
			Mood:          domain.MoodGood,
		}

		mock.ExpectBegin()

		statusRows := sqlmock.NewRows([]string{"status"}).AddRow("in_progress")
		mock.ExpectQuery("SELECT status FROM standups").
			WithArgs(7).
			WillReturnRows(statusRows)

		insertRows := sqlmock.NewRows([]string{"id", "submitted_at"}).AddRow(100, now)
		mock.ExpectQuery("INSERT INTO standup_responses").
			WithArgs(7, 42, "выкатил релиз", "чиню тесты", "", "good", sqlmock.AnyArg()).
			WillReturnRows(insertRows)

		mock.ExpectCommit()

		err := repo.Create(context.Background(), response)

		require.NoError(t, err)
		assert.Equal(t, 100, response.ID)
		assert.Equal(t, now, response.SubmittedAt)

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("ошибка: стендап уже не принимает ответы", func(t *testing.T) {
		repo, mock := setupResponseRepo(t)

		response := &domain.StandupResponse{
			StandupID: 7,
			UserID:    "u42",
			Mood:      domain.MoodOkay,
		}

		mock.ExpectBegin()

		statusRows := sqlmock.NewRows([]string{"status"}).AddRow("completed")
		mock.ExpectQuery("SELECT status FROM standups").
			WithArgs(7).
			WillReturnRows(statusRows)

		mock.ExpectRollback()

		err := repo.Create(context.Background(), response)

		require.Error(t, err)
		assert.Equal(t, "standup is not accepting responses", err.Error())

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("ошибка: стендап не найден", func(t *testing.T) {
		repo, mock := setupResponseRepo(t)

		response := &domain.StandupResponse{
			StandupID: 404,
			UserID:    "u42",
			Mood:      domain.MoodOkay,
		}

		mock.ExpectBegin()

		mock.ExpectQuery("SELECT status FROM standups").
			WithArgs(404).
			WillReturnError(sql.ErrNoRows)

		mock.ExpectRollback()

		err := repo.Create(context.Background(), response)

		require.Error(t, err)
		assert.Equal(t, "standup not found", err.Error())

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("ошибка: повторный ответ того же пользователя", func(t *testing.T) {
		repo, mock := setupResponseRepo(t)

		response := &domain.StandupResponse{
			StandupID: 7,
			UserID:    "u42",
			Mood:      domain.MoodGreat,
		}

		mock.ExpectBegin()

		statusRows := sqlmock.NewRows([]string{"status"}).AddRow("in_progress")
		mock.ExpectQuery("SELECT status FROM standups").
			WithArgs(7).
			WillReturnRows(statusRows)

		mock.ExpectQuery("INSERT INTO standup_responses").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		mock.ExpectRollback()

		err := repo.Create(context.Background(), response)

		require.Error(t, err)
		assert.Equal(t, "response already exists", err.Error())

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})

	t.Run("ошибка: невалидный ID пользователя", func(t *testing.T) {
		repo, _ := setupResponseRepo(t)

		response := &domain.StandupResponse{
			StandupID: 7,
			UserID:    "abc",
			Mood:      domain.MoodOkay,
		}

		err := repo.Create(context.Background(), response)

		require.Error(t, err)
		assert.Equal(t, "invalid user ID", err.Error())
	})
}

// TestResponseRepository_ResponseDates - уникальные даты ответов пользователя
func TestResponseRepository_ResponseDates(t *testing.T) {
	t.Run("даты возвращаются по убыванию", func(t *testing.T) {
		repo, mock := setupResponseRepo(t)

		d1 := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
		d2 := time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"date"}).AddRow(d1).AddRow(d2)
		mock.ExpectQuery("SELECT DISTINCT s.date").
			WithArgs(42, 60).
			WillReturnRows(rows)

		dates, err := repo.ResponseDates(context.Background(), "u42", 60)

		require.NoError(t, err)
		require.Len(t, dates, 2)
		assert.Equal(t, d1, dates[0])
		assert.Equal(t, d2, dates[1])

		err = mock.ExpectationsWereMet()
		assert.NoError(t, err)
	})
}
