package service

import (
	"context"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type UserService interface {
	// Register создает пользователя; доступно только администратору
	Register(ctx context.Context, actor domain.Actor, username string, isAdmin bool) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}
