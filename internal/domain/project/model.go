package project

import (
	"time"

	"github.com/slmontgomery/bugtracking/internal/domain/team"
	"github.com/slmontgomery/bugtracking/internal/domain/user"
)

// Role is the membership role a user holds on one specific project.
type Role string

const (
	RoleDeveloper Role = "developer"
	RoleManager   Role = "manager"
)

// Project is a unit of work under a team. At most one membership row per
// project holds the manager role, and ManagerID always points at that row's
// user (or is null when the project has no manager).
type Project struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TeamID      uint      `gorm:"not null;uniqueIndex:idx_project_team_slug" json:"team_id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Slug        string    `gorm:"size:120;not null;uniqueIndex:idx_project_team_slug" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	IsArchived  bool      `gorm:"not null;default:false" json:"is_archived"`
	ManagerID   *uint     `json:"manager_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Team        *team.Team   `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Manager     *user.User   `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Memberships []Membership `gorm:"foreignKey:ProjectID" json:"memberships,omitempty"`
}

func (Project) TableName() string {
	return "projects"
}

// Membership joins a user to a project with a role. Holding one requires
// holding the enclosing team membership; the removal cascade enforces this.
type Membership struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProjectID uint      `gorm:"not null;uniqueIndex:idx_project_user" json:"project_id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_project_user" json:"user_id"`
	Role      Role      `gorm:"size:20;not null;default:'developer'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User *user.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Membership) TableName() string {
	return "project_memberships"
}

func (m *Membership) IsManager() bool {
	return m.Role == RoleManager
}
