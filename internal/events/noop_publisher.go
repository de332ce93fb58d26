package events

import "context"

// NoopPublisher используется, когда брокер не сконфигурирован
type NoopPublisher struct{}

func NewNoopPublisher() NoopPublisher { return NoopPublisher{} }

func (NoopPublisher) Publish(ctx context.Context, event StandupEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }
