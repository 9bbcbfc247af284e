package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slmontgomery/bugtracking/internal/application"
	"github.com/slmontgomery/bugtracking/internal/domain/team"
	"github.com/slmontgomery/bugtracking/pkg/response"
	"github.com/slmontgomery/bugtracking/pkg/utils"
)

type InvitationHandler struct {
	svc *application.InvitationService
}

func NewInvitationHandler(svc *application.InvitationService) *InvitationHandler {
	return &InvitationHandler{svc: svc}
}

// ListInvitations godoc
// @Summary List team invitations (administrators only)
// @Tags invitations
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Success 200 {array} team.Invitation
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /teams/{team_slug}/invitations [get]
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	invitations, err := h.svc.ListInvitations(userID, c.Param("team_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitations)
}

// CreateInvitation godoc
// @Summary Invite an email address to the team (administrators only)
// @Tags invitations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param input body team.CreateInvitationDTO true "Invitation info"
// @Success 201 {object} team.Invitation
// @Failure 400 {object} response.ErrorResponse "An invitation for this email address was created recently. Please wait before re-inviting."
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /teams/{team_slug}/invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	var input team.CreateInvitationDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Errors: bindingErrors(err)})
		return
	}

	inv, err := h.svc.CreateInvitation(userID, c.Param("team_slug"), input)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// GetInvitation godoc
// @Summary Invitation detail (administrators only)
// @Tags invitations
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param id path string true "Invitation id"
// @Success 200 {object} team.Invitation
// @Failure 404 {object} response.ErrorResponse "Invitation not found."
// @Router /teams/{team_slug}/invitations/{id} [get]
func (h *InvitationHandler) GetInvitation(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	inv, err := h.svc.GetInvitation(userID, c.Param("team_slug"), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}

// DeleteInvitation godoc
// @Summary Withdraw an invitation (administrators only)
// @Tags invitations
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param id path string true "Invitation id"
// @Success 204 "No Content"
// @Failure 404 {object} response.ErrorResponse "Invitation not found."
// @Router /teams/{team_slug}/invitations/{id} [delete]
func (h *InvitationHandler) DeleteInvitation(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	if err := h.svc.DeleteInvitation(userID, c.Param("team_slug"), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResendEmail godoc
// @Summary Re-send the invitation email (administrators only)
// @Tags invitations
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param id path string true "Invitation id"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Invitation not found."
// @Router /teams/{team_slug}/invitations/{id}/resend-email [post]
func (h *InvitationHandler) ResendEmail(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	if err := h.svc.ResendEmail(userID, c.Param("team_slug"), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "Invitation email sent"})
}

// MethodNotAllowed rejects updates to invitations; they are immutable
// once issued.
func (h *InvitationHandler) MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, response.ErrorResponse{Errors: "Invitations cannot be modified."})
}
