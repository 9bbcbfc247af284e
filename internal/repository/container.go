package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User              UserRepo
	Team              TeamRepo
	TeamMembership    TeamMembershipRepo
	Invitation        InvitationRepo
	Project           ProjectRepo
	ProjectMembership ProjectMembershipRepo
	Ticket            TicketRepo
	Comment           CommentRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:              NewUserRepo(db),
		Team:              NewTeamRepo(db),
		TeamMembership:    NewTeamMembershipRepo(db),
		Invitation:        NewInvitationRepo(db),
		Project:           NewProjectRepo(db),
		ProjectMembership: NewProjectMembershipRepo(db),
		Ticket:            NewTicketRepo(db),
		Comment:           NewCommentRepo(db),
		db:                db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:              r.User.WithTx(tx),
		Team:              r.Team.WithTx(tx),
		TeamMembership:    r.TeamMembership.WithTx(tx),
		Invitation:        r.Invitation.WithTx(tx),
		Project:           r.Project.WithTx(tx),
		ProjectMembership: r.ProjectMembership.WithTx(tx),
		Ticket:            r.Ticket.WithTx(tx),
		Comment:           r.Comment.WithTx(tx),
		db:                tx,
	}
}

// ExecTx runs fn against a transaction-bound copy of the container. Every
// multi-row role transition goes through here so a failure never leaves a
// partial write behind.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	if r.db == nil {
		// Mock-backed container in unit tests; run without a transaction.
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
