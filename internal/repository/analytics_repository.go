package repository

import (
	"context"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

// AnalyticsRepository отдаёт сырые строки за окно [start, end);
// вся агрегатная математика считается в сервисе
type AnalyticsRepository interface {
	StandupSamples(ctx context.Context, start, end time.Time, teamID *int) ([]domain.StandupSample, error)
	ResponseSamples(ctx context.Context, start, end time.Time, teamID *int) ([]domain.ResponseSample, error)
}
