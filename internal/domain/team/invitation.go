package team

import (
	"time"

	"github.com/google/uuid"

	"github.com/slmontgomery/bugtracking/internal/domain/user"
)

// InvitationStatus is the invitation lifecycle state. Pending resolves to
// accepted or declined exactly once; both are terminal.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
)

// Invitation is an offer of team membership sent to an email address.
// The invitee is resolved to a User only when the invitation is accepted
// or declined by an authenticated account with a matching email.
type Invitation struct {
	ID           uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	TeamID       uint             `gorm:"not null;index" json:"team_id"`
	InviterID    *uint            `json:"inviter_id"`
	InviteeEmail string           `gorm:"size:254;not null;index" json:"invitee_email"`
	InviteeID    *uint            `json:"invitee_id"`
	Message      string           `gorm:"type:text" json:"message"`
	Status       InvitationStatus `gorm:"size:20;not null;default:'pending'" json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`

	Team    *Team      `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	Inviter *user.User `gorm:"foreignKey:InviterID" json:"inviter,omitempty"`
}

func (Invitation) TableName() string {
	return "team_invitations"
}

func (i *Invitation) IsPending() bool {
	return i.Status == InvitationPending
}
