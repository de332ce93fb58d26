package events

import (
	"context"
	"time"
)

// Типы событий жизненного цикла стендапа. Доставку напоминаний
// в мессенджеры выполняют внешние потребители топика
const (
	TypeStandupStarted    = "standup.started"
	TypeStandupCompleted  = "standup.completed"
	TypeStandupCancelled  = "standup.cancelled"
	TypeResponseSubmitted = "response.submitted"
)

// StandupEvent - конверт события для внешних потребителей
type StandupEvent struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	TeamID     int       `json:"team_id"`
	StandupID  int       `json:"standup_id"`
	Date       string    `json:"date"`
	UserID     string    `json:"user_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, event StandupEvent) error
	Close() error
}
