package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/bagdasarian/standup-tracker/internal/domain"
	"github.com/bagdasarian/standup-tracker/internal/repository"
)

type scheduleService struct {
	scheduleRepo repository.ScheduleRepository
	teamRepo     repository.TeamRepository
}

// NewScheduleService создает новый экземпляр ScheduleService
func NewScheduleService(
	scheduleRepo repository.ScheduleRepository,
	teamRepo repository.TeamRepository,
) ScheduleService {
	return &scheduleService{
		scheduleRepo: scheduleRepo,
		teamRepo:     teamRepo,
	}
}

// CreateSchedule создает расписание команды; доступно только
// администратору, у команды может быть только одно активное расписание
func (s *scheduleService) CreateSchedule(ctx context.Context, actor domain.Actor, schedule *domain.StandupSchedule) (*domain.StandupSchedule, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.teamRepo.GetByID(ctx, schedule.TeamID); err != nil {
		if err.Error() == "team not found" {
			return nil, domain.NewNotFoundError("team")
		}
		return nil, err
	}

	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	existing, err := s.scheduleRepo.GetActiveByTeamID(ctx, schedule.TeamID)
	if err == nil && existing != nil {
		return nil, domain.ErrScheduleConflict
	}
	if err != nil && err.Error() != "schedule not found" {
		return nil, err
	}

	schedule.IsActive = true
	schedule.CreatedAt = time.Now()
	if err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}

	return s.scheduleRepo.GetByID(ctx, schedule.ID)
}

func (s *scheduleService) UpdateSchedule(ctx context.Context, actor domain.Actor, schedule *domain.StandupSchedule) (*domain.StandupSchedule, error) {
	if !actor.IsAdmin {
		return nil, domain.ErrUnauthorized
	}

	current, err := s.scheduleRepo.GetActiveByTeamID(ctx, schedule.TeamID)
	if err != nil {
		if err.Error() == "schedule not found" {
			return nil, domain.NewNotFoundError("schedule")
		}
		return nil, err
	}

	if err := validateSchedule(schedule); err != nil {
		return nil, err
	}

	schedule.ID = current.ID
	schedule.IsActive = true
	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		if err.Error() == "schedule not found" {
			return nil, domain.NewNotFoundError("schedule")
		}
		return nil, err
	}

	return s.scheduleRepo.GetByID(ctx, schedule.ID)
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, actor domain.Actor, teamID int) error {
	if !actor.IsAdmin {
		return domain.ErrUnauthorized
	}

	schedule, err := s.scheduleRepo.GetActiveByTeamID(ctx, teamID)
	if err != nil {
		if err.Error() == "schedule not found" {
			return domain.NewNotFoundError("schedule")
		}
		return err
	}

	err = s.scheduleRepo.Delete(ctx, schedule.ID)
	if err != nil && err.Error() == "schedule not found" {
		return domain.NewNotFoundError("schedule")
	}
	return err
}

func (s *scheduleService) GetTeamSchedule(ctx context.Context, teamID int) (*domain.StandupSchedule, error) {
	schedule, err := s.scheduleRepo.GetActiveByTeamID(ctx, teamID)
	if err != nil {
		if err.Error() == "schedule not found" {
			return nil, domain.NewNotFoundError("schedule")
		}
		return nil, err
	}
	return schedule, nil
}

// validateSchedule нормализует и проверяет правило повторения:
// дни недели 1-7 без дубликатов, валидный IANA-пояс, напоминание
// строго раньше окончания
func validateSchedule(schedule *domain.StandupSchedule) error {
	if len(schedule.Weekdays) == 0 {
		return domain.NewValidationError("weekdays must not be empty")
	}

	seen := make(map[int]bool)
	var weekdays []int
	for _, d := range schedule.Weekdays {
		if d < 1 || d > 7 {
			return domain.NewValidationError(fmt.Sprintf("weekday %d out of range 1-7", d))
		}
		if !seen[d] {
			seen[d] = true
			weekdays = append(weekdays, d)
		}
	}
	sort.Ints(weekdays)
	schedule.Weekdays = weekdays

	if schedule.Timezone == "" {
		return domain.NewValidationError("timezone must not be empty")
	}
	if _, err := time.LoadLocation(schedule.Timezone); err != nil {
		return domain.NewValidationError("unknown timezone: " + schedule.Timezone)
	}

	if !schedule.ReminderTime.Before(schedule.EndTime) {
		return domain.NewValidationError("reminder time must be before end time")
	}

	return nil
}
