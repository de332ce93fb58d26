package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type membershipRepository struct {
	executor DBExecutor
}

func NewMembershipRepository(db *sql.DB) *membershipRepository {
	return &membershipRepository{executor: db}
}

const memberColumns = `
	tm.id, tm.team_id, tm.user_id, u.name, tm.role, tm.chat_user_id, tm.is_active, tm.joined_at
`

func (r *membershipRepository) Add(ctx context.Context, member *domain.TeamMember) error {
	dbUserID, err := stringIDToInt(member.UserID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	query := `
		INSERT INTO team_members (team_id, user_id, role, chat_user_id, is_active, joined_at)
		VALUES ($1, $2, $3, $4, TRUE, $5)
		RETURNING id, joined_at
	`

	err = r.executor.QueryRowContext(
		ctx,
		query,
		member.TeamID,
		dbUserID,
		string(member.Role),
		member.ChatUserID,
		time.Now(),
	).Scan(&member.ID, &member.JoinedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.New("membership already exists")
		}
		return err
	}

	member.IsActive = true

	return nil
}

func (r *membershipRepository) Reactivate(ctx context.Context, teamID int, userID string, role domain.Role) (*domain.TeamMember, error) {
	dbUserID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `
		UPDATE team_members
		SET is_active = TRUE, role = $3
		WHERE team_id = $1 AND user_id = $2
	`

	result, err := r.executor.ExecContext(ctx, query, teamID, dbUserID, string(role))
	if err != nil {
		return nil, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rowsAffected == 0 {
		return nil, errors.New("membership not found")
	}

	return r.GetByTeamAndUser(ctx, teamID, userID)
}

func (r *membershipRepository) SetIsActive(ctx context.Context, teamID int, userID string, isActive bool) error {
	dbUserID, err := stringIDToInt(userID)
	if err != nil {
		return errors.New("invalid user ID")
	}

	query := `
		UPDATE team_members
		SET is_active = $3
		WHERE team_id = $1 AND user_id = $2
	`

	result, err := r.executor.ExecContext(ctx, query, teamID, dbUserID, isActive)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("membership not found")
	}

	return nil
}

func (r *membershipRepository) GetByTeamAndUser(ctx context.Context, teamID int, userID string) (*domain.TeamMember, error) {
	dbUserID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `
		SELECT ` + memberColumns + `
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1 AND tm.user_id = $2
	`

	member := &domain.TeamMember{}
	var dbID int
	var role string
	err = r.executor.QueryRowContext(ctx, query, teamID, dbUserID).Scan(
		&member.ID,
		&member.TeamID,
		&dbID,
		&member.Username,
		&role,
		&member.ChatUserID,
		&member.IsActive,
		&member.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("membership not found")
		}
		return nil, err
	}

	member.UserID = intToStringID(dbID)
	member.Role = domain.Role(role)

	return member, nil
}

func (r *membershipRepository) ListActiveByTeamID(ctx context.Context, teamID int) ([]*domain.TeamMember, error) {
	query := `
		SELECT ` + memberColumns + `
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		WHERE tm.team_id = $1 AND tm.is_active = TRUE AND u.is_active = TRUE
		ORDER BY u.name
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectMembers(rows)
}

func (r *membershipRepository) ListActiveByUserID(ctx context.Context, userID string) ([]*domain.TeamMember, error) {
	dbUserID, err := stringIDToInt(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `
		SELECT ` + memberColumns + `
		FROM team_members tm
		JOIN users u ON u.id = tm.user_id
		JOIN teams t ON t.id = tm.team_id
		WHERE tm.user_id = $1 AND tm.is_active = TRUE AND t.is_active = TRUE
		ORDER BY tm.team_id
	`

	rows, err := r.executor.QueryContext(ctx, query, dbUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.collectMembers(rows)
}

func (r *membershipRepository) collectMembers(rows *sql.Rows) ([]*domain.TeamMember, error) {
	var members []*domain.TeamMember
	for rows.Next() {
		member := &domain.TeamMember{}
		var dbID int
		var role string
		err := rows.Scan(
			&member.ID,
			&member.TeamID,
			&dbID,
			&member.Username,
			&role,
			&member.ChatUserID,
			&member.IsActive,
			&member.JoinedAt,
		)
		if err != nil {
			return nil, err
		}
		member.UserID = intToStringID(dbID)
		member.Role = domain.Role(role)
		members = append(members, member)
	}

	return members, rows.Err()
}
