package domain

import "time"

type User struct {
	ID        string
	Username  string
	IsAdmin   bool
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Actor - явный инициатор операции; роли в командах проверяются отдельно
type Actor struct {
	UserID  string
	IsAdmin bool
}
