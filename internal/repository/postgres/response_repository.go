package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type responseRepository struct {
	db *sql.DB
}

func NewResponseRepository(db *sql.DB) *responseRepository {
	return &responseRepository{db: db}
}

const responseColumns = `
	r.id, r.standup_id, r.user_id, u.name, s.team_id, t.name, s.date,
	r.yesterday_work, r.today_work, r.blockers, r.mood, r.submitted_at
`

const responseJoins = `
	FROM standup_responses r
	JOIN users u ON u.id = r.user_id
	JOIN standups s ON s.id = r.standup_id
	JOIN teams t ON t.id = s.team_id
`

func (r *responseRepository) Create(ctx context.Context, response *domain.StandupResponse) error {
	dbUserID, err := stringIDToInt(response.UserID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Блокируем строку стендапа, чтобы переход статуса и вставка
	// ответа не пересеклись
	var status string
	err = tx.QueryRowContext(
		ctx,
		`SELECT status FROM standups WHERE id = $1 FOR UPDATE`,
		response.StandupID,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.New("standup not found")
		}
		return err
	}

	if domain.StandupStatus(status) != domain.StatusInProgress {
		return errors.New("standup is not accepting responses")
	}

	query := `
		INSERT INTO standup_responses (standup_id, user_id, yesterday_work, today_work, blockers, mood, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, submitted_at
	`

	submittedAt := response.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = time.Now()
	}

	err = tx.QueryRowContext(
		ctx,
		query,
		response.StandupID,
		dbUserID,
		response.YesterdayWork,
		response.TodayWork,
		response.Blockers,
		string(response.Mood),
		submittedAt,
	).Scan(&response.ID, &response.SubmittedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.New("response already exists")
		}
		return err
	}

	return tx.Commit()
}

func (r *responseRepository) GetByStandupAndUser(ctx context.Context, standupID int, userID string) (*domain.StandupResponse, error) {
	dbUserID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `SELECT ` + responseColumns + responseJoins + `WHERE r.standup_id = $1 AND r.user_id = $2`

	response, err := scanResponseRow(r.db.QueryRowContext(ctx, query, standupID, dbUserID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("response not found")
		}
		return nil, err
	}
	return response, nil
}

func (r *responseRepository) ListByStandupID(ctx context.Context, standupID int) ([]*domain.StandupResponse, error) {
	query := `SELECT ` + responseColumns + responseJoins + `WHERE r.standup_id = $1 ORDER BY r.submitted_at`

	rows, err := r.db.QueryContext(ctx, query, standupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectResponses(rows)
}

func (r *responseRepository) ListByUserID(ctx context.Context, userID string, limit int) ([]*domain.StandupResponse, error) {
	dbUserID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `SELECT ` + responseColumns + responseJoins + `WHERE r.user_id = $1 ORDER BY r.submitted_at DESC LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, dbUserID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectResponses(rows)
}

func (r *responseRepository) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]*domain.StandupResponse, error) {
	dbUserID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `SELECT ` + responseColumns + responseJoins + `WHERE r.user_id = $1 AND r.submitted_at >= $2 ORDER BY r.submitted_at DESC`

	rows, err := r.db.QueryContext(ctx, query, dbUserID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectResponses(rows)
}

func (r *responseRepository) ListRecentByUserTeams(ctx context.Context, userID string, limit int) ([]*domain.StandupResponse, error) {
	dbUserID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `SELECT ` + responseColumns + responseJoins + `
		WHERE s.team_id IN (
			SELECT tm.team_id FROM team_members tm
			WHERE tm.user_id = $1 AND tm.is_active = TRUE
		)
		ORDER BY r.submitted_at DESC
		LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, dbUserID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectResponses(rows)
}

func (r *responseRepository) ResponseDates(ctx context.Context, userID string, limit int) ([]time.Time, error) {
	dbUserID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `
		SELECT DISTINCT s.date
		FROM standup_responses r
		JOIN standups s ON s.id = r.standup_id
		WHERE r.user_id = $1
		ORDER BY s.date DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, dbUserID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

func collectResponses(rows *sql.Rows) ([]*domain.StandupResponse, error) {
	var responses []*domain.StandupResponse
	for rows.Next() {
		response, err := scanResponseRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, rows.Err()
}

func scanResponseRow(scan func(dest ...any) error) (*domain.StandupResponse, error) {
	response := &domain.StandupResponse{}
	var dbUserID int
	var mood string
	err := scan(
		&response.ID,
		&response.StandupID,
		&dbUserID,
		&response.Username,
		&response.TeamID,
		&response.TeamName,
		&response.StandupDate,
		&response.YesterdayWork,
		&response.TodayWork,
		&response.Blockers,
		&mood,
		&response.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	response.UserID = intToStringID(dbUserID)
	response.Mood = domain.Mood(mood)
	return response, nil
}
