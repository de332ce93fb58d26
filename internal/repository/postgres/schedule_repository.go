package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type scheduleRepository struct {
	executor DBExecutor
}

func NewScheduleRepository(db *sql.DB) *scheduleRepository {
	return &scheduleRepository{executor: db}
}

// weekdays хранятся строкой "1,2,3", времена - колонками TIME
func encodeWeekdays(weekdays []int) string {
	parts := make([]string, 0, len(weekdays))
	for _, d := range weekdays {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ",")
}

func decodeWeekdays(encoded string) ([]int, error) {
	if encoded == "" {
		return nil, nil
	}
	parts := strings.Split(encoded, ",")
	weekdays := make([]int, 0, len(parts))
	for _, part := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		weekdays = append(weekdays, d)
	}
	return weekdays, nil
}

func encodeDayTime(t domain.DayTime) string {
	return fmt.Sprintf("%02d:%02d:00", t.Hour, t.Minute)
}

func decodeDayTime(value string) (domain.DayTime, error) {
	parsed, err := time.Parse("15:04:05", value)
	if err != nil {
		return domain.DayTime{}, err
	}
	return domain.DayTime{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *domain.StandupSchedule) error {
	query := `
		INSERT INTO standup_schedules (team_id, weekdays, reminder_time, end_time, timezone, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		schedule.TeamID,
		encodeWeekdays(schedule.Weekdays),
		encodeDayTime(schedule.ReminderTime),
		encodeDayTime(schedule.EndTime),
		schedule.Timezone,
		schedule.IsActive,
		time.Now(),
	).Scan(&schedule.ID, &schedule.CreatedAt)

	return err
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *domain.StandupSchedule) error {
	query := `
		UPDATE standup_schedules
		SET weekdays = $2, reminder_time = $3, end_time = $4, timezone = $5, is_active = $6, updated_at = $7
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		schedule.ID,
		encodeWeekdays(schedule.Weekdays),
		encodeDayTime(schedule.ReminderTime),
		encodeDayTime(schedule.EndTime),
		schedule.Timezone,
		schedule.IsActive,
		time.Now(),
	).Scan(&schedule.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.New("schedule not found")
		}
		return err
	}

	if updatedAt.Valid {
		schedule.UpdatedAt = &updatedAt.Time
	}

	return nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id int) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM standup_schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("schedule not found")
	}

	return nil
}

const scheduleColumns = `
	s.id, s.team_id, s.weekdays, s.reminder_time::text, s.end_time::text, s.timezone, s.is_active, s.created_at, s.updated_at
`

func (r *scheduleRepository) GetByID(ctx context.Context, id int) (*domain.StandupSchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM standup_schedules s
		WHERE s.id = $1
	`

	return r.scanSchedule(r.executor.QueryRowContext(ctx, query, id))
}

func (r *scheduleRepository) GetActiveByTeamID(ctx context.Context, teamID int) (*domain.StandupSchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM standup_schedules s
		WHERE s.team_id = $1 AND s.is_active = TRUE
		ORDER BY s.id
		LIMIT 1
	`

	return r.scanSchedule(r.executor.QueryRowContext(ctx, query, teamID))
}

func (r *scheduleRepository) ListActive(ctx context.Context) ([]*domain.StandupSchedule, error) {
	query := `
		SELECT ` + scheduleColumns + `
		FROM standup_schedules s
		JOIN teams t ON t.id = s.team_id
		WHERE s.is_active = TRUE AND t.is_active = TRUE
		ORDER BY s.team_id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*domain.StandupSchedule
	for rows.Next() {
		schedule, err := scanScheduleRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}

	return schedules, rows.Err()
}

func (r *scheduleRepository) scanSchedule(row *sql.Row) (*domain.StandupSchedule, error) {
	schedule, err := scanScheduleRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("schedule not found")
		}
		return nil, err
	}
	return schedule, nil
}

func scanScheduleRow(scan func(dest ...any) error) (*domain.StandupSchedule, error) {
	schedule := &domain.StandupSchedule{}
	var weekdays, reminderTime, endTime string
	var updatedAt sql.NullTime
	err := scan(
		&schedule.ID,
		&schedule.TeamID,
		&weekdays,
		&reminderTime,
		&endTime,
		&schedule.Timezone,
		&schedule.IsActive,
		&schedule.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	schedule.Weekdays, err = decodeWeekdays(weekdays)
	if err != nil {
		return nil, err
	}
	schedule.ReminderTime, err = decodeDayTime(reminderTime)
	if err != nil {
		return nil, err
	}
	schedule.EndTime, err = decodeDayTime(endTime)
	if err != nil {
		return nil, err
	}
	if updatedAt.Valid {
		schedule.UpdatedAt = &updatedAt.Time
	}

	return schedule, nil
}
