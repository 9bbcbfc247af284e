package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/slmontgomery/bugtracking/internal/api/handlers"
	"github.com/slmontgomery/bugtracking/internal/api/middleware"
	"github.com/slmontgomery/bugtracking/internal/application"
	"github.com/slmontgomery/bugtracking/internal/config/db"
	"github.com/slmontgomery/bugtracking/internal/mailer"
	"github.com/slmontgomery/bugtracking/internal/repository"
)

func RegisterRoutes(r *gin.Engine) {
	// init
	repos := repository.NewRepositories(db.DB)
	services := application.NewServices(repos, mailer.New())
	h := handlers.New(services, r)

	r.POST("/register", h.User.Register)
	r.POST("/login", h.User.Login)
	r.POST("/logout", h.User.Logout)

	auth := r.Group("/")
	auth.Use(middleware.JWTAuthMiddleware())
	{
		auth.GET("/auth/status", h.User.AuthStatus)
		auth.GET("/users", h.User.GetUsers)

		teams := auth.Group("/teams")
		{
			teams.GET("", h.Team.ListTeams)
			teams.POST("", h.Team.CreateTeam)

			one := teams.Group("/:team_slug")
			{
				one.GET("", h.Team.GetTeam)
				one.PUT("", h.Team.UpdateTeam)
				one.PATCH("", h.Team.UpdateTeam)
				one.DELETE("", h.Team.DeleteTeam)

				one.GET("/members", h.Team.GetMembers)
				one.GET("/admins", h.Team.GetAdmins)
				one.GET("/non-admins", h.Team.GetNonAdmins)

				one.POST("/promote-admin", h.Team.PromoteAdmin)
				one.POST("/step-down-as-admin", h.Team.StepDownAsAdmin)
				one.PUT("/remove-member", h.Team.RemoveMember)
				one.PUT("/leave-team", h.Team.LeaveTeam)

				one.POST("/accept-invitation", h.Team.AcceptInvitation)
				one.POST("/decline-invitation", h.Team.DeclineInvitation)

				invitations := one.Group("/invitations")
				{
					invitations.GET("", h.Invitation.ListInvitations)
					invitations.POST("", h.Invitation.CreateInvitation)
					invitations.GET("/:id", h.Invitation.GetInvitation)
					invitations.DELETE("/:id", h.Invitation.DeleteInvitation)
					invitations.PUT("/:id", h.Invitation.MethodNotAllowed)
					invitations.PATCH("/:id", h.Invitation.MethodNotAllowed)
					invitations.POST("/:id/resend-email", h.Invitation.ResendEmail)
				}

				projects := one.Group("/projects")
				{
					projects.GET("", h.Project.ListProjects)
					projects.POST("", h.Project.CreateProject)

					proj := projects.Group("/:project_slug")
					{
						proj.GET("", h.Project.GetProject)
						proj.PUT("", h.Project.UpdateProject)
						proj.PATCH("", h.Project.UpdateProject)
						proj.DELETE("", h.Project.DeleteProject)

						proj.PUT("/add-member", h.Project.AddMember)
						proj.PUT("/remove-member", h.Project.RemoveMember)
						proj.GET("/get-user-permissions", h.Project.GetUserPermissions)

						tickets := proj.Group("/tickets")
						{
							tickets.GET("", h.Ticket.ListTickets)
							tickets.POST("", h.Ticket.CreateTicket)

							tk := tickets.Group("/:ticket_slug")
							{
								tk.GET("", h.Ticket.GetTicket)
								tk.PUT("", h.Ticket.UpdateTicket)
								tk.PATCH("", h.Ticket.UpdateTicket)
								tk.DELETE("", h.Ticket.DeleteTicket)

								tk.GET("/comments", h.Ticket.ListComments)
							tk.POST("/create-comment", h.Ticket.CreateComment)
								tk.GET("/get-user-permissions", h.Ticket.GetUserPermissions)
							}
						}
					}
				}
			}
		}
	}
}
