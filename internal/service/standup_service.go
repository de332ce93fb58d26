package service

import (
	"context"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/repository"
)

type StandupService interface {
	// StartForDate идемпотентно открывает стендап команды на дату:
	// повторный вызов возвращает уже существующий
	StartForDate(ctx context.Context, teamID int, date time.Time) (*domain.Standup, error)
	End(ctx context.Context, actor domain.Actor, standupID int) (*domain.Standup, error)
	Cancel(ctx context.Context, actor domain.Actor, standupID int) (*domain.Standup, error)
	// AutoComplete закрывает стендап без проверки прав; вызывается планировщиком
	AutoComplete(ctx context.Context, standupID int) (*domain.Standup, error)
	Get(ctx context.Context, standupID int) (*domain.Standup, error)
	List(ctx context.Context, filter repository.StandupFilter) ([]*domain.Standup, error)
	Responses(ctx context.Context, standupID int) ([]*domain.StandupResponse, error)
	// MissingMembers - активные участники команды без ответа на стендап
	MissingMembers(ctx context.Context, standupID int) ([]*domain.TeamMember, error)
}
