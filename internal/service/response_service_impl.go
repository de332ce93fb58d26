package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/events"
	"github.com/bagdasarian/standup-tracker/internal/observability"
	"github.com/bagdasarian/standup-tracker/internal/repository"
)

type responseService struct {
	responseRepo   repository.ResponseRepository
	standupRepo    repository.StandupRepository
	membershipRepo repository.MembershipRepository
	publisher      events.Publisher
}

// NewResponseService создает новый экземпляр ResponseService
func NewResponseService(
	responseRepo repository.ResponseRepository,
	standupRepo repository.StandupRepository,
	membershipRepo repository.MembershipRepository,
	publisher events.Publisher,
) ResponseService {
	return &responseService{
		responseRepo:   responseRepo,
		standupRepo:    standupRepo,
		membershipRepo: membershipRepo,
		publisher:      publisher,
	}
}

// Submit принимает ответ участника на стендап. Проверки идут по цепочке:
// стендап существует -> принимает ответы -> автор активный участник
// команды -> ответа ещё нет -> поля валидны. Финальную защиту от гонок
// даёт репозиторий: статус перепроверяется под блокировкой строки,
// дубликат отсекает уникальный индекс
func (s *responseService) Submit(ctx context.Context, actor domain.Actor, standupID int, input SubmitResponseInput) (*domain.StandupResponse, error) {
	standup, err := s.standupRepo.GetByID(ctx, standupID)
	if err != nil {
		if err.Error() == "standup not found" {
			return nil, domain.NewNotFoundError("standup")
		}
		return nil, err
	}

	if standup.Status != domain.StatusInProgress {
		return nil, domain.ErrNotAcceptingResponses
	}

	member, err := s.membershipRepo.GetByTeamAndUser(ctx, standup.TeamID, actor.UserID)
	if err != nil {
		if err.Error() == "membership not found" || err.Error() == "invalid user ID" {
			return nil, domain.ErrNotTeamMember
		}
		return nil, err
	}
	if !member.IsActive {
		return nil, domain.ErrNotTeamMember
	}

	existing, err := s.responseRepo.GetByStandupAndUser(ctx, standupID, actor.UserID)
	if err == nil && existing != nil {
		return nil, domain.ErrDuplicateResponse
	}
	if err != nil && err.Error() != "response not found" {
		return nil, err
	}

	if err := validateResponseInput(input); err != nil {
		return nil, err
	}

	response := &domain.StandupResponse{
		StandupID:     standupID,
		UserID:        actor.UserID,
		YesterdayWork: strings.TrimSpace(input.YesterdayWork),
		TodayWork:     strings.TrimSpace(input.TodayWork),
		Blockers:      strings.TrimSpace(input.Blockers),
		Mood:          input.Mood,
	}
	if err := s.responseRepo.Create(ctx, response); err != nil {
		switch err.Error() {
		case "response already exists":
			return nil, domain.ErrDuplicateResponse
		case "standup is not accepting responses":
			return nil, domain.ErrNotAcceptingResponses
		case "standup not found":
			return nil, domain.NewNotFoundError("standup")
		}
		return nil, err
	}

	observability.RecordResponseSubmitted()
	s.publishSubmitted(ctx, standup, actor.UserID)

	return s.responseRepo.GetByStandupAndUser(ctx, standupID, actor.UserID)
}

func (s *responseService) ListOwn(ctx context.Context, actor domain.Actor, limit int) ([]*domain.StandupResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.responseRepo.ListByUserID(ctx, actor.UserID, limit)
}

func validateResponseInput(input SubmitResponseInput) error {
	if strings.TrimSpace(input.YesterdayWork) == "" {
		return domain.NewValidationError("yesterday_work must not be empty")
	}
	if strings.TrimSpace(input.TodayWork) == "" {
		return domain.NewValidationError("today_work must not be empty")
	}
	if !input.Mood.Valid() {
		return domain.NewValidationError("invalid mood: " + string(input.Mood))
	}
	return nil
}

func (s *responseService) publishSubmitted(ctx context.Context, standup *domain.Standup, userID string) {
	err := s.publisher.Publish(ctx, events.StandupEvent{
		Type:       events.TypeResponseSubmitted,
		TeamID:     standup.TeamID,
		StandupID:  standup.ID,
		Date:       standup.Date.Format("2006-01-02"),
		UserID:     userID,
		OccurredAt: time.Now(),
	})
	if err != nil {
		log.Printf("events: publish %s for standup %d failed: %v", events.TypeResponseSubmitted, standup.ID, err)
	}
}
