package domain

import "time"

type Team struct {
	ID          int
	Name        string
	Description string
	IsActive    bool
	MemberCount int
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Role string

const (
	RoleMember Role = "member"
	RoleLead   Role = "lead"
	RoleAdmin  Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleMember, RoleLead, RoleAdmin:
		return true
	}
	return false
}

// CanManageTeam - true для ролей, которым разрешено управлять командой
func (r Role) CanManageTeam() bool {
	return r == RoleLead || r == RoleAdmin
}

type TeamMember struct {
	ID         int
	TeamID     int
	UserID     string
	Username   string
	Role       Role
	ChatUserID string
	IsActive   bool
	JoinedAt   time.Time
}
