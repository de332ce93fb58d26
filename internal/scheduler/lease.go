package scheduler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Lease выбирает лидера среди реплик: тикает только владелец аренды
type Lease interface {
	TryAcquire(ctx context.Context) (bool, error)
}

// redisLease - аренда через SET NX PX. Владелец продлевает свою запись,
// остальные реплики пропускают тик до истечения TTL
type redisLease struct {
	client *redis.Client
	key    string
	ttl    time.Duration
	id     string
}

func NewRedisLease(client *redis.Client, key string, ttl time.Duration) Lease {
	return &redisLease{
		client: client,
		key:    key,
		ttl:    ttl,
		id:     uuid.NewString(),
	}
}

func (l *redisLease) TryAcquire(ctx context.Context) (bool, error) {
	ok, err := l.client.SetNX(ctx, l.key, l.id, l.ttl).Result()
	if err != nil {
		return false, err
	}
	if ok {
		return true, nil
	}

	owner, err := l.client.Get(ctx, l.key).Result()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if owner != l.id {
		return false, nil
	}

	// Продлеваем собственную аренду
	if err := l.client.PExpire(ctx, l.key, l.ttl).Err(); err != nil {
		return false, err
	}
	return true, nil
}

// noopLease - единственная реплика всегда лидер
type noopLease struct{}

func NewNoopLease() Lease { return noopLease{} }

func (noopLease) TryAcquire(ctx context.Context) (bool, error) { return true, nil }
