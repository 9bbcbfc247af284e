package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slmontgomery/bugtracking/internal/application"
	"github.com/slmontgomery/bugtracking/internal/domain/ticket"
	"github.com/slmontgomery/bugtracking/pkg/response"
	"github.com/slmontgomery/bugtracking/pkg/utils"
)

type TicketHandler struct {
	svc *application.TicketService
}

func NewTicketHandler(svc *application.TicketService) *TicketHandler {
	return &TicketHandler{svc: svc}
}

// ListTickets godoc
// @Summary List tickets visible to the caller within a project
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Success 200 {array} ticket.Ticket
// @Router /teams/{team_slug}/projects/{project_slug}/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	tickets, err := h.svc.ListTickets(userID, c.Param("team_slug"), c.Param("project_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// CreateTicket godoc
// @Summary Submit a ticket to a project
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Param input body ticket.CreateTicketDTO true "Ticket info"
// @Success 201 {object} ticket.Ticket
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /teams/{team_slug}/projects/{project_slug}/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	var input ticket.CreateTicketDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Errors: bindingErrors(err)})
		return
	}

	t, err := h.svc.CreateTicket(userID, c.Param("team_slug"), c.Param("project_slug"), input)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GetTicket godoc
// @Summary Ticket detail, comments newest first
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Param ticket_slug path string true "Ticket slug"
// @Success 200 {object} ticket.Ticket
// @Failure 404 {object} response.ErrorResponse "Ticket not found."
// @Router /teams/{team_slug}/projects/{project_slug}/tickets/{ticket_slug} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	t, err := h.svc.GetTicket(userID, c.Param("team_slug"), c.Param("project_slug"), c.Param("ticket_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateTicket godoc
// @Summary Update ticket fields; developer and closing are restricted
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Param ticket_slug path string true "Ticket slug"
// @Param input body ticket.UpdateTicketDTO true "Fields to update"
// @Success 200 {object} ticket.Ticket
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /teams/{team_slug}/projects/{project_slug}/tickets/{ticket_slug} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	var input ticket.UpdateTicketDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Errors: bindingErrors(err)})
		return
	}

	t, err := h.svc.UpdateTicket(userID, c.Param("team_slug"), c.Param("project_slug"), c.Param("ticket_slug"), input)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTicket godoc
// @Summary Delete a ticket (manager or team administrator)
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Param ticket_slug path string true "Ticket slug"
// @Success 204 "No Content"
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /teams/{team_slug}/projects/{project_slug}/tickets/{ticket_slug} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	if err := h.svc.DeleteTicket(userID, c.Param("team_slug"), c.Param("project_slug"), c.Param("ticket_slug")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListComments godoc
// @Summary A ticket's comments, newest first
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Param ticket_slug path string true "Ticket slug"
// @Success 200 {array} ticket.Comment
// @Failure 404 {object} response.ErrorResponse "Ticket not found."
// @Router /teams/{team_slug}/projects/{project_slug}/tickets/{ticket_slug}/comments [get]
func (h *TicketHandler) ListComments(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	comments, err := h.svc.ListComments(userID, c.Param("team_slug"), c.Param("project_slug"), c.Param("ticket_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// CreateComment godoc
// @Summary Comment on a ticket
// @Tags tickets
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Param ticket_slug path string true "Ticket slug"
// @Param input body ticket.CreateCommentDTO true "Comment text"
// @Success 201 {object} ticket.Comment
// @Failure 400 {object} response.ErrorResponse "Comment text cannot be empty."
// @Router /teams/{team_slug}/projects/{project_slug}/tickets/{ticket_slug}/create-comment [post]
func (h *TicketHandler) CreateComment(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	var input ticket.CreateCommentDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Errors: bindingErrors(err)})
		return
	}

	comment, err := h.svc.CreateComment(userID, c.Param("team_slug"), c.Param("project_slug"), c.Param("ticket_slug"), input.Text)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// GetUserPermissions godoc
// @Summary The caller's effective permissions on the ticket
// @Tags tickets
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Param ticket_slug path string true "Ticket slug"
// @Success 200 {object} ticket.PermissionsDTO
// @Failure 404 {object} response.ErrorResponse "Ticket not found."
// @Router /teams/{team_slug}/projects/{project_slug}/tickets/{ticket_slug}/get-user-permissions [get]
func (h *TicketHandler) GetUserPermissions(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	perms, err := h.svc.GetUserPermissions(userID, c.Param("team_slug"), c.Param("project_slug"), c.Param("ticket_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, perms)
}
