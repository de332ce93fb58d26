package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type analyticsRepository struct {
	executor DBExecutor
}

func NewAnalyticsRepository(db *sql.DB) *analyticsRepository {
	return &analyticsRepository{executor: db}
}

func (r *analyticsRepository) StandupSamples(ctx context.Context, start, end time.Time, teamID *int) ([]domain.StandupSample, error) {
	query := `
		SELECT s.id, s.team_id, t.name, s.date, s.started_at,
			(SELECT COUNT(*) FROM standup_responses r WHERE r.standup_id = s.id),
			(SELECT COUNT(*) FROM team_members tm JOIN users u ON u.id = tm.user_id
			 WHERE tm.team_id = s.team_id AND tm.is_active = TRUE AND u.is_active = TRUE)
		FROM standups s
		JOIN teams t ON t.id = s.team_id
		WHERE s.date >= $1 AND s.date < $2
		  AND ($3::int IS NULL OR s.team_id = $3)
		ORDER BY s.date, s.id
	`

	var team any
	if teamID != nil {
		team = *teamID
	}

	rows, err := r.executor.QueryContext(ctx, query, start.Format(dateLayout), end.Format(dateLayout), team)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []domain.StandupSample
	for rows.Next() {
		var sample domain.StandupSample
		var startedAt sql.NullTime
		err := rows.Scan(
			&sample.ID,
			&sample.TeamID,
			&sample.TeamName,
			&sample.Date,
			&startedAt,
			&sample.ResponseCount,
			&sample.MemberCount,
		)
		if err != nil {
			return nil, err
		}
		if startedAt.Valid {
			sample.StartedAt = &startedAt.Time
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}

func (r *analyticsRepository) ResponseSamples(ctx context.Context, start, end time.Time, teamID *int) ([]domain.ResponseSample, error) {
	query := `
		SELECT r.standup_id, s.team_id, r.user_id, r.mood, r.submitted_at, s.started_at
		FROM standup_responses r
		JOIN standups s ON s.id = r.standup_id
		WHERE s.date >= $1 AND s.date < $2
		  AND ($3::int IS NULL OR s.team_id = $3)
		ORDER BY r.submitted_at
	`

	var team any
	if teamID != nil {
		team = *teamID
	}

	rows, err := r.executor.QueryContext(ctx, query, start.Format(dateLayout), end.Format(dateLayout), team)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var samples []domain.ResponseSample
	for rows.Next() {
		var sample domain.ResponseSample
		var dbUserID int
		var mood string
		var startedAt sql.NullTime
		err := rows.Scan(
			&sample.StandupID,
			&sample.TeamID,
			&dbUserID,
			&mood,
			&sample.SubmittedAt,
			&startedAt,
		)
		if err != nil {
			return nil, err
		}
		sample.UserID = intToStringID(dbUserID)
		sample.Mood = domain.Mood(mood)
		if startedAt.Valid {
			sample.StartedAt = &startedAt.Time
		}
		samples = append(samples, sample)
	}
	return samples, rows.Err()
}
