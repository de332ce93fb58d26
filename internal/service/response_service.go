package service

import (
	"context"

	"github.com/bagdasarian/standup-tracker/internal/domain"
)

// SubmitResponseInput - поля ответа участника; blockers может быть пустым
type SubmitResponseInput struct {
	YesterdayWork string
	TodayWork     string
	Blockers      string
	Mood          domain.Mood
}

type ResponseService interface {
	Submit(ctx context.Context, actor domain.Actor, standupID int, input SubmitResponseInput) (*domain.StandupResponse, error)
	ListOwn(ctx context.Context, actor domain.Actor, limit int) ([]*domain.StandupResponse, error)
}
