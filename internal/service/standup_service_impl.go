package service

import (
	"context"
	"log"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/events"
	"github.com/bagdasarian/standup-tracker/internal/observability"
	"github.com/bagdasarian/standup-tracker/internal/repository"
)

type standupService struct {
	standupRepo    repository.StandupRepository
	responseRepo   repository.ResponseRepository
	membershipRepo repository.MembershipRepository
	membership     MembershipService
	publisher      events.Publisher
}

// NewStandupService создает новый экземпляр StandupService
func NewStandupService(
	standupRepo repository.StandupRepository,
	responseRepo repository.ResponseRepository,
	membershipRepo repository.MembershipRepository,
	membership MembershipService,
	publisher events.Publisher,
) StandupService {
	return &standupService{
		standupRepo:    standupRepo,
		responseRepo:   responseRepo,
		membershipRepo: membershipRepo,
		membership:     membership,
		publisher:      publisher,
	}
}

// StartForDate открывает стендап команды на дату. Уникальность (team, date)
// гарантирует БД, поэтому параллельные вызовы безопасны: проигравший
// дубликат перечитывает существующую запись
func (s *standupService) StartForDate(ctx context.Context, teamID int, date time.Time) (*domain.Standup, error) {
	existing, err := s.standupRepo.GetByTeamAndDate(ctx, teamID, date)
	if err == nil && existing != nil {
		return s.promoteIfPending(ctx, existing)
	}
	if err != nil && err.Error() != "standup not found" {
		return nil, err
	}

	now := time.Now()
	standup := &domain.Standup{
		TeamID:    teamID,
		Date:      date,
		Status:    domain.StatusInProgress,
		StartedAt: &now,
	}
	err = s.standupRepo.Create(ctx, standup)
	if err != nil {
		if err.Error() == "standup already exists" {
			created, getErr := s.standupRepo.GetByTeamAndDate(ctx, teamID, date)
			if getErr != nil {
				return nil, getErr
			}
			return s.promoteIfPending(ctx, created)
		}
		return nil, err
	}

	observability.RecordStandupStarted()
	s.publish(ctx, events.TypeStandupStarted, standup, "")

	return s.standupRepo.GetByID(ctx, standup.ID)
}

// promoteIfPending переводит заранее созданный pending-стендап в in_progress
func (s *standupService) promoteIfPending(ctx context.Context, standup *domain.Standup) (*domain.Standup, error) {
	if standup.Status != domain.StatusPending {
		return standup, nil
	}

	ok, err := s.standupRepo.UpdateStatusIf(ctx, standup.ID, domain.StatusPending, domain.StatusInProgress, nil)
	if err != nil {
		return nil, err
	}
	if ok {
		observability.RecordStandupStarted()
		s.publish(ctx, events.TypeStandupStarted, standup, "")
	}
	return s.standupRepo.GetByID(ctx, standup.ID)
}

// End завершает стендап; доступно lead/admin команды и администратору
func (s *standupService) End(ctx context.Context, actor domain.Actor, standupID int) (*domain.Standup, error) {
	return s.finish(ctx, &actor, standupID, domain.StatusCompleted)
}

// Cancel отменяет стендап из pending или in_progress
func (s *standupService) Cancel(ctx context.Context, actor domain.Actor, standupID int) (*domain.Standup, error) {
	return s.finish(ctx, &actor, standupID, domain.StatusCancelled)
}

// AutoComplete закрывает просроченный стендап; повторный вызов по
// уже закрытому - не ошибка
func (s *standupService) AutoComplete(ctx context.Context, standupID int) (*domain.Standup, error) {
	return s.finish(ctx, nil, standupID, domain.StatusCompleted)
}

// finish выполняет терминальный переход. Переход атомарный: при гонке
// двух завершений выигрывает ровно одно, второе получает ErrAlreadyTerminal
// (либо успех для планировщика)
func (s *standupService) finish(ctx context.Context, actor *domain.Actor, standupID int, to domain.StandupStatus) (*domain.Standup, error) {
	standup, err := s.standupRepo.GetByID(ctx, standupID)
	if err != nil {
		if err.Error() == "standup not found" {
			return nil, domain.NewNotFoundError("standup")
		}
		return nil, err
	}

	if actor != nil {
		if err := s.membership.CanManage(ctx, *actor, standup.TeamID); err != nil {
			return nil, err
		}
	}

	if standup.Status.Terminal() {
		if actor == nil {
			return standup, nil
		}
		return nil, domain.ErrAlreadyTerminal
	}

	from := standup.Status
	if to == domain.StatusCompleted && from == domain.StatusPending {
		// Завершить можно только запущенный стендап
		return nil, domain.NewValidationError("standup has not started")
	}

	now := time.Now()
	ok, err := s.standupRepo.UpdateStatusIf(ctx, standupID, from, to, &now)
	if err != nil {
		return nil, err
	}
	if !ok {
		current, getErr := s.standupRepo.GetByID(ctx, standupID)
		if getErr != nil {
			return nil, getErr
		}
		if actor == nil && current.Status.Terminal() {
			return current, nil
		}
		return nil, domain.ErrAlreadyTerminal
	}

	switch to {
	case domain.StatusCompleted:
		observability.RecordStandupCompleted()
		s.publish(ctx, events.TypeStandupCompleted, standup, "")
	case domain.StatusCancelled:
		observability.RecordStandupCancelled()
		s.publish(ctx, events.TypeStandupCancelled, standup, "")
	}

	return s.standupRepo.GetByID(ctx, standupID)
}

func (s *standupService) Get(ctx context.Context, standupID int) (*domain.Standup, error) {
	standup, err := s.standupRepo.GetByID(ctx, standupID)
	if err != nil {
		if err.Error() == "standup not found" {
			return nil, domain.NewNotFoundError("standup")
		}
		return nil, err
	}
	return standup, nil
}

func (s *standupService) List(ctx context.Context, filter repository.StandupFilter) ([]*domain.Standup, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, domain.NewValidationError("invalid status: " + string(*filter.Status))
	}
	return s.standupRepo.List(ctx, filter)
}

func (s *standupService) Responses(ctx context.Context, standupID int) ([]*domain.StandupResponse, error) {
	if _, err := s.Get(ctx, standupID); err != nil {
		return nil, err
	}
	return s.responseRepo.ListByStandupID(ctx, standupID)
}

// MissingMembers - активные участники команды, ещё не отправившие ответ
func (s *standupService) MissingMembers(ctx context.Context, standupID int) ([]*domain.TeamMember, error) {
	standup, err := s.Get(ctx, standupID)
	if err != nil {
		return nil, err
	}

	members, err := s.membershipRepo.ListActiveByTeamID(ctx, standup.TeamID)
	if err != nil {
		return nil, err
	}

	responses, err := s.responseRepo.ListByStandupID(ctx, standupID)
	if err != nil {
		return nil, err
	}

	responded := make(map[string]bool, len(responses))
	for _, r := range responses {
		responded[r.UserID] = true
	}

	var missing []*domain.TeamMember
	for _, m := range members {
		if !responded[m.UserID] {
			missing = append(missing, m)
		}
	}
	return missing, nil
}

// publish отправляет событие жизненного цикла; ошибка публикации
// не откатывает переход
func (s *standupService) publish(ctx context.Context, eventType string, standup *domain.Standup, userID string) {
	err := s.publisher.Publish(ctx, events.StandupEvent{
		Type:       eventType,
		TeamID:     standup.TeamID,
		StandupID:  standup.ID,
		Date:       standup.Date.Format("2006-01-02"),
		UserID:     userID,
		OccurredAt: time.Now(),
	})
	if err != nil {
		log.Printf("events: publish %s for standup %d failed: %v", eventType, standup.ID, err)
	}
}
