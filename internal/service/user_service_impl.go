package service

import (
	"context"
	"strings"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый экземпляр UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Register(ctx context.Context, actor domain.Actor, username string, isAdmin bool) (*domain.User, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrUnauthorized
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, domain.NewValidationError("username must not be empty")
	}

	user := &domain.User{
		Username:  username,
		IsAdmin:   isAdmin,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if err.Error() == "user already exists" {
			return nil, domain.NewValidationError("user with name " + username + " already exists")
		}
		return nil, err
	}

	return s.userRepo.GetByID(ctx, user.ID)
}

func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err.Error() == "user not found" || err.Error() == "invalid user ID" {
			return nil, domain.NewNotFoundError("user with id " + userID)
		}
		return nil, err
	}
	return user, nil
}
