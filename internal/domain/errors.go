package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrValidation - некорректные входные данные
	ErrValidation = &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "invalid input",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrDuplicateResponse - участник уже отправил ответ на этот стендап
	ErrDuplicateResponse = &DomainError{
		Code:    "DUPLICATE_RESPONSE",
		Message: "response already submitted for this standup",
	}

	// ErrNotAcceptingResponses - стендап не принимает ответы (не in_progress)
	ErrNotAcceptingResponses = &DomainError{
		Code:    "NOT_ACCEPTING_RESPONSES",
		Message: "standup is not accepting responses",
	}

	// ErrNotTeamMember - пользователь не активный участник команды
	ErrNotTeamMember = &DomainError{
		Code:    "NOT_TEAM_MEMBER",
		Message: "user is not an active member of the team",
	}

	// ErrUnauthorized - недостаточно прав для операции
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "permission denied",
	}

	// ErrAlreadyTerminal - стендап уже завершён или отменён
	ErrAlreadyTerminal = &DomainError{
		Code:    "ALREADY_TERMINAL",
		Message: "standup is already completed or cancelled",
	}

	// ErrScheduleConflict - у команды уже есть активное расписание
	ErrScheduleConflict = &DomainError{
		Code:    "SCHEDULE_CONFLICT",
		Message: "team already has an active schedule",
	}

	// ErrStorage - ошибка хранилища, детали в логах
	ErrStorage = &DomainError{
		Code:    "STORAGE_ERROR",
		Message: "storage failure",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION_ERROR с дополнительным контекстом
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: message,
	}
}
