package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/slmontgomery/bugtracking/internal/application"
)

type Handlers struct {
	User       *UserHandler
	Team       *TeamHandler
	Project    *ProjectHandler
	Ticket     *TicketHandler
	Invitation *InvitationHandler
	Router     *gin.Engine
}

func New(svc *application.Services, router *gin.Engine) *Handlers {
	return &Handlers{
		User:       NewUserHandler(svc.User),
		Team:       NewTeamHandler(svc.Team, svc.Invitation),
		Project:    NewProjectHandler(svc.Project),
		Ticket:     NewTicketHandler(svc.Ticket),
		Invitation: NewInvitationHandler(svc.Invitation),
		Router:     router,
	}
}
