package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/observability"
	"github.com/bagdasarian/standup-tracker/internal/repository"
	"github.com/bagdasarian/standup-tracker/internal/service"
)

// Engine раз в интервал сверяет расписания с открытыми стендапами
// и выполняет назревшие действия. Все действия идемпотентны, поэтому
// повторный тик по тем же данным безопасен
type Engine struct {
	scheduleRepo repository.ScheduleRepository
	standupRepo  repository.StandupRepository
	standups     service.StandupService
	lease        Lease
	interval     time.Duration
	tickTimeout  time.Duration
	now          func() time.Time
}

func NewEngine(
	scheduleRepo repository.ScheduleRepository,
	standupRepo repository.StandupRepository,
	standups service.StandupService,
	lease Lease,
	interval time.Duration,
	tickTimeout time.Duration,
) *Engine {
	return &Engine{
		scheduleRepo: scheduleRepo,
		standupRepo:  standupRepo,
		standups:     standups,
		lease:        lease,
		interval:     interval,
		tickTimeout:  tickTimeout,
		now:          time.Now,
	}
}

// Run блокируется до отмены контекста
func (e *Engine) Run(ctx context.Context) {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	log.Printf("scheduler: started, interval %s", e.interval)
	for {
		select {
		case <-ctx.Done():
			log.Println("scheduler: stopped")
			return
		case <-ticker.C:
			e.tick(ctx)
		}
	}
}

func (e *Engine) tick(ctx context.Context) {
	tickCtx, cancel := context.WithTimeout(ctx, e.tickTimeout)
	defer cancel()

	isLeader, err := e.lease.TryAcquire(tickCtx)
	if err != nil {
		log.Printf("scheduler: lease error: %v", err)
		observability.RecordSchedulerTickError()
		return
	}
	if !isLeader {
		return
	}

	started := e.now()
	if err := e.Tick(tickCtx); err != nil {
		log.Printf("scheduler: tick error: %v", err)
		observability.RecordSchedulerTickError()
	}
	observability.RecordSchedulerTick(e.now().Sub(started))
}

// Tick выполняет один проход; вынесен отдельно для вызова из тестов
func (e *Engine) Tick(ctx context.Context) error {
	schedules, err := e.scheduleRepo.ListActive(ctx)
	if err != nil {
		return err
	}
	open, err := e.standupRepo.ListInProgress(ctx)
	if err != nil {
		return err
	}

	for _, action := range Evaluate(e.now(), schedules, open) {
		switch action.Kind {
		case ActionStart:
			if _, err := e.standups.StartForDate(ctx, action.TeamID, action.Date); err != nil {
				log.Printf("scheduler: start standup for team %d failed: %v", action.TeamID, err)
				observability.RecordSchedulerTickError()
			}
		case ActionComplete:
			if _, err := e.standups.AutoComplete(ctx, action.StandupID); err != nil {
				log.Printf("scheduler: auto-complete standup %d failed: %v", action.StandupID, err)
				observability.RecordSchedulerTickError()
			}
		}
	}
	return nil
}
