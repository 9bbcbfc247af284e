package ticket

import (
	"time"

	"github.com/slmontgomery/bugtracking/internal/domain/project"
	"github.com/slmontgomery/bugtracking/internal/domain/user"
)

// Priority of a ticket.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Ticket is a task or bug record under a project. Submitter and developer
// both reference users and are nulled, not cascaded, when the user goes
// away: the ticket itself outlives the people attached to it.
type Ticket struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ProjectID   uint      `gorm:"not null;uniqueIndex:idx_ticket_project_slug" json:"project_id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Slug        string    `gorm:"size:120;not null;uniqueIndex:idx_ticket_project_slug" json:"slug"`
	Description string    `gorm:"type:text" json:"description"`
	Priority    Priority  `gorm:"size:20;not null;default:'low'" json:"priority"`
	SubmitterID *uint     `json:"submitter_id"`
	DeveloperID *uint     `json:"developer_id"`
	Resolution  *string   `gorm:"type:text" json:"resolution"`
	IsOpen      bool      `gorm:"not null;default:true" json:"is_open"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Project   *project.Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Submitter *user.User       `gorm:"foreignKey:SubmitterID" json:"submitter,omitempty"`
	Developer *user.User       `gorm:"foreignKey:DeveloperID" json:"developer,omitempty"`
	Comments  []Comment        `gorm:"foreignKey:TicketID" json:"comments,omitempty"`
}

func (Ticket) TableName() string {
	return "tickets"
}

// Comment is attached to one ticket, listed newest first.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TicketID  uint      `gorm:"not null;index" json:"ticket_id"`
	AuthorID  *uint     `json:"author_id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`

	Author *user.User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

func (Comment) TableName() string {
	return "comments"
}
