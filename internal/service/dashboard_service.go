package service

import (
	"context"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type DashboardService interface {
	Build(ctx context.Context, actor domain.Actor) (*domain.Dashboard, error)
}
