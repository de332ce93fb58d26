package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

const teamColumns = `
	t.id, t.name, t.description, t.is_active, t.created_at, t.updated_at,
	(SELECT COUNT(*) FROM team_members tm WHERE tm.team_id = t.id AND tm.is_active = TRUE)
`

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name, description, is_active, created_at)
		VALUES ($1, $2, TRUE, $3)
		RETURNING id, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		team.Name,
		team.Description,
		time.Now(),
	).Scan(&team.ID, &team.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.New("team already exists")
		}
		return err
	}

	team.IsActive = true

	return nil
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE teams
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
		RETURNING created_at, updated_at
	`

	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(
		ctx,
		query,
		team.ID,
		team.Name,
		team.Description,
		time.Now(),
	).Scan(&team.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.New("team not found")
		}
		if isUniqueViolation(err) {
			return errors.New("team already exists")
		}
		return err
	}

	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	}

	return nil
}

func (r *teamRepository) SetIsActive(ctx context.Context, teamID int, isActive bool) error {
	query := `
		UPDATE teams
		SET is_active = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, teamID, isActive, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("team not found")
	}

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		WHERE t.id = $1
	`

	return r.scanTeam(r.executor.QueryRowContext(ctx, query, id))
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		WHERE t.name = $1
	`

	return r.scanTeam(r.executor.QueryRowContext(ctx, query, name))
}

func (r *teamRepository) ListActive(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		WHERE t.is_active = TRUE
		ORDER BY t.name
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectTeams(rows)
}

func (r *teamRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*domain.Team, error) {
	dbID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `
		SELECT ` + teamColumns + `
		FROM teams t
		JOIN team_members tm ON tm.team_id = t.id
		WHERE t.is_active = TRUE AND tm.user_id = $1 AND tm.is_active = TRUE
		ORDER BY t.name
	`

	rows, err := r.executor.QueryContext(ctx, query, dbID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectTeams(rows)
}

func (r *teamRepository) scanTeam(row *sql.Row) (*domain.Team, error) {
	team := &domain.Team{}
	var updatedAt sql.NullTime
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&team.IsActive,
		&team.CreatedAt,
		&updatedAt,
		&team.MemberCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("team not found")
		}
		return nil, err
	}

	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	}

	return team, nil
}

func (r *teamRepository) collectTeams(rows *sql.Rows) ([]*domain.Team, error) {
	var teams []*domain.Team
	for rows.Next() {
		team := &domain.Team{}
		var updatedAt sql.NullTime
		err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Description,
			&team.IsActive,
			&team.CreatedAt,
			&updatedAt,
			&team.MemberCount,
		)
		if err != nil {
			return nil, err
		}
		if updatedAt.Valid {
			team.UpdatedAt = &updatedAt.Time
		}
		teams = append(teams, team)
	}

	return teams, rows.Err()
}
