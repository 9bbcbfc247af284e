package team

import (
	"time"

	"github.com/slmontgomery/bugtracking/internal/domain/user"
)

// Role is the membership role a user holds on one specific team.
// Role lookups are always scoped by the (user, team) pair; a user can be
// an admin of one team and a plain member of another.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Team is the top level tenant: a set of members and projects.
// Title and slug are write-once at creation; teams cannot be deleted.
type Team struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Slug        string    `gorm:"size:120;not null;uniqueIndex" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`

	Memberships []Membership `gorm:"foreignKey:TeamID" json:"memberships,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

// Membership joins a user to a team with a role.
type Membership struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TeamID    uint      `gorm:"not null;uniqueIndex:idx_team_user" json:"team_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_team_user" json:"user_id"`
	Role      Role      `gorm:"size:20;not null;default:'member'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Membership) TableName() string {
	return "team_memberships"
}

func (m *Membership) IsAdmin() bool {
	return m.Role == RoleAdmin
}
