package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/repository"
)

type standupRepository struct {
	executor DBExecutor
}

func NewStandupRepository(db *sql.DB) *standupRepository {
	return &standupRepository{executor: db}
}

const dateLayout = "2006-01-02"

const standupColumns = `
	s.id, s.team_id, t.name, s.date, s.status, s.started_at, s.ended_at, s.created_at, s.updated_at,
	(SELECT COUNT(*) FROM standup_responses r WHERE r.standup_id = s.id),
	(SELECT COUNT(*) FROM team_members tm JOIN users u ON u.id = tm.user_id
	 WHERE tm.team_id = s.team_id AND tm.is_active = TRUE AND u.is_active = TRUE)
`

func (r *standupRepository) Create(ctx context.Context, standup *domain.Standup) error {
	query := `
		INSERT INTO standups (team_id, date, status, started_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	var startedAt any
	if standup.StartedAt != nil {
		startedAt = *standup.StartedAt
	}

	err := r.executor.QueryRowContext(
		ctx,
		query,
		standup.TeamID,
		standup.Date.Format(dateLayout),
		string(standup.Status),
		startedAt,
		time.Now(),
	).Scan(&standup.ID, &standup.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.New("standup already exists")
		}
		return err
	}

	return nil
}

func (r *standupRepository) GetByID(ctx context.Context, id int) (*domain.Standup, error) {
	query := `
		SELECT ` + standupColumns + `
		FROM standups s
		JOIN teams t ON t.id = s.team_id
		WHERE s.id = $1
	`

	return r.scanStandup(r.executor.QueryRowContext(ctx, query, id))
}

func (r *standupRepository) GetByTeamAndDate(ctx context.Context, teamID int, date time.Time) (*domain.Standup, error) {
	query := `
		SELECT ` + standupColumns + `
		FROM standups s
		JOIN teams t ON t.id = s.team_id
		WHERE s.team_id = $1 AND s.date = $2
	`

	return r.scanStandup(r.executor.QueryRowContext(ctx, query, teamID, date.Format(dateLayout)))
}

func (r *standupRepository) UpdateStatusIf(ctx context.Context, id int, from, to domain.StandupStatus, endedAt *time.Time) (bool, error) {
	query := `
		UPDATE standups
		SET status = $3,
		    started_at = CASE WHEN $3 = 'in_progress' THEN COALESCE(started_at, $5) ELSE started_at END,
		    ended_at = COALESCE($4, ended_at),
		    updated_at = $5
		WHERE id = $1 AND status = $2
	`

	var ended any
	if endedAt != nil {
		ended = *endedAt
	}

	result, err := r.executor.ExecContext(ctx, query, id, string(from), string(to), ended, time.Now())
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *standupRepository) List(ctx context.Context, filter repository.StandupFilter) ([]*domain.Standup, error) {
	query := `
		SELECT ` + standupColumns + `
		FROM standups s
		JOIN teams t ON t.id = s.team_id
		WHERE ($1::int IS NULL OR s.team_id = $1)
		  AND ($2::text IS NULL OR s.status = $2)
		ORDER BY s.date DESC, t.name
		LIMIT $3 OFFSET $4
	`

	perPage := filter.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	var teamID any
	if filter.TeamID != nil {
		teamID = *filter.TeamID
	}
	var status any
	if filter.Status != nil {
		status = string(*filter.Status)
	}

	rows, err := r.executor.QueryContext(ctx, query, teamID, status, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectStandups(rows)
}

func (r *standupRepository) ListInProgress(ctx context.Context) ([]*domain.Standup, error) {
	query := `
		SELECT ` + standupColumns + `
		FROM standups s
		JOIN teams t ON t.id = s.team_id
		WHERE s.status = 'in_progress'
		ORDER BY s.id
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectStandups(rows)
}

func (r *standupRepository) ListRecentByUserID(ctx context.Context, userID string, limit int) ([]*domain.Standup, error) {
	dbUserID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `
		SELECT ` + standupColumns + `
		FROM standups s
		JOIN teams t ON t.id = s.team_id
		JOIN team_members tm ON tm.team_id = s.team_id
		WHERE tm.user_id = $1 AND tm.is_active = TRUE
		ORDER BY s.date DESC, s.id DESC
		LIMIT $2
	`

	rows, err := r.executor.QueryContext(ctx, query, dbUserID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectStandups(rows)
}

func (r *standupRepository) scanStandup(row *sql.Row) (*domain.Standup, error) {
	standup, err := scanStandupRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("standup not found")
		}
		return nil, err
	}
	return standup, nil
}

func (r *standupRepository) collectStandups(rows *sql.Rows) ([]*domain.Standup, error) {
	var standups []*domain.Standup
	for rows.Next() {
		standup, err := scanStandupRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		standups = append(standups, standup)
	}
	return standups, rows.Err()
}

func scanStandupRow(scan func(dest ...any) error) (*domain.Standup, error) {
	standup := &domain.Standup{}
	var status string
	var startedAt, endedAt, updatedAt sql.NullTime
	err := scan(
		&standup.ID,
		&standup.TeamID,
		&standup.TeamName,
		&standup.Date,
		&status,
		&startedAt,
		&endedAt,
		&standup.CreatedAt,
		&updatedAt,
		&standup.ResponseCount,
		&standup.MemberCount,
	)
	if err != nil {
		return nil, err
	}

	standup.Status = domain.StandupStatus(status)
	if startedAt.Valid {
		standup.StartedAt = &startedAt.Time
	}
	if endedAt.Valid {
		standup.EndedAt = &endedAt.Time
	}
	if updatedAt.Valid {
		standup.UpdatedAt = &updatedAt.Time
	}

	return standup, nil
}
