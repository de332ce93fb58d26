package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type ResponseRepository interface {
	// Create вставляет ответ под блокировкой строки стендапа: статус
	// перепроверяется в той же транзакции, уникальность (standup, user)
	// гарантирует БД. Возвращает "standup is not accepting responses" или
	// "response already exists"
	Create(ctx context.Context, response *domain.StandupResponse) error
	GetByStandupAndUser(ctx context.Context, standupID int, userID string) (*domain.StandupResponse, error)
	ListByStandupID(ctx context.Context, standupID int) ([]*domain.StandupResponse, error)
	ListByUserID(ctx context.Context, userID string, limit int) ([]*domain.StandupResponse, error)
	ListByUserSince(ctx context.Context, userID string, since time.Time) ([]*domain.StandupResponse, error)
	ListRecentByUserTeams(ctx context.Context, userID string, limit int) ([]*domain.StandupResponse, error)
	// ResponseDates - уникальные даты ответов пользователя, убывание
	ResponseDates(ctx context.Context, userID string, limit int) ([]time.Time, error)
}
