package service

import (
	"context"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

type AnalyticsService interface {
	// Build собирает аналитику за окно; teamID == nil - по всем командам
	Build(ctx context.Context, timeRange domain.TimeRange, teamID *int) (*domain.Analytics, error)
}
