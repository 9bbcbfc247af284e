package application

import (
	"github.com/slmontgomery/bugtracking/internal/mailer"
	"github.com/slmontgomery/bugtracking/internal/repository"
)

// Services bundles all application services for handler wiring.
type Services struct {
	User       *UserService
	Team       *TeamService
	Project    *ProjectService
	Ticket     *TicketService
	Invitation *InvitationService
}

func NewServices(repos *repository.Repos, m mailer.Mailer) *Services {
	return &Services{
		User:       NewUserService(repos),
		Team:       NewTeamService(repos),
		Project:    NewProjectService(repos),
		Ticket:     NewTicketService(repos),
		Invitation: NewInvitationService(repos, m),
	}
}
