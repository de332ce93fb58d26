package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (name, is_admin, is_active, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	var dbID int
	err := r.executor.QueryRowContext(
		ctx,
		query,
		user.Username,
		user.IsAdmin,
		user.IsActive,
		time.Now(),
	).Scan(&dbID, &user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.New("user already exists")
		}
		return err
	}

	user.ID = intToStringID(dbID)

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	dbID, err := stringIDToInt(id)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	query := `
		SELECT id, name, is_admin, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	return r.scanUser(r.executor.QueryRowContext(ctx, query, dbID))
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, name, is_admin, is_active, created_at, updated_at
		FROM users
		WHERE name = $1
	`

	return r.scanUser(r.executor.QueryRowContext(ctx, query, username))
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	var dbID int
	var updatedAt sql.NullTime
	err := row.Scan(
		&dbID,
		&user.Username,
		&user.IsAdmin,
		&user.IsActive,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	}
	user.ID = intToStringID(dbID)

	return user, nil
}
