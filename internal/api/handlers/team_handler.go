package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slmontgomery/bugtracking/internal/application"
	"github.com/slmontgomery/bugtracking/internal/domain/team"
	"github.com/slmontgomery/bugtracking/pkg/response"
	"github.com/slmontgomery/bugtracking/pkg/utils"
)

type TeamHandler struct {
	svc *application.TeamService
	inv *application.InvitationService
}

func NewTeamHandler(svc *application.TeamService, inv *application.InvitationService) *TeamHandler {
	return &TeamHandler{svc: svc, inv: inv}
}

// ListTeams godoc
// @Summary List the teams the caller belongs to
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Success 200 {array} team.Team
// @Router /teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	teams, err := h.svc.ListTeams(userID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// CreateTeam godoc
// @Summary Create a team; the caller becomes its first administrator
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body team.CreateTeamDTO true "Team info"
// @Success 201 {object} team.Team
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	var input team.CreateTeamDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Errors: bindingErrors(err)})
		return
	}

	t, err := h.svc.CreateTeam(userID, input)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

// GetTeam godoc
// @Summary Team detail, members included
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Success 200 {object} team.Team
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Failure 404 {object} response.ErrorResponse "Team not found"
// @Router /teams/{team_slug} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	t, err := h.svc.GetTeam(userID, c.Param("team_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// UpdateTeam godoc
// @Summary Update a team description (title is write-once)
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param input body team.UpdateTeamDTO true "Fields to update"
// @Success 200 {object} team.Team
// @Failure 400 {object} response.ErrorResponse "Team title cannot be changed."
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /teams/{team_slug} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	var input team.UpdateTeamDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Errors: bindingErrors(err)})
		return
	}

	t, err := h.svc.UpdateTeam(userID, c.Param("team_slug"), input)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

// DeleteTeam godoc
// @Summary Deleting teams is not supported
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Failure 403 {object} response.ErrorResponse "Teams cannot be deleted."
// @Router /teams/{team_slug} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	if err := h.svc.DeleteTeam(userID, c.Param("team_slug")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetMembers godoc
// @Summary List team memberships
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Success 200 {array} team.MembershipView
// @Router /teams/{team_slug}/members [get]
func (h *TeamHandler) GetMembers(c *gin.Context) {
	h.writeMemberships(c, h.svc.GetMembers)
}

// GetAdmins godoc
// @Summary List team administrators
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Success 200 {array} team.MembershipView
// @Router /teams/{team_slug}/admins [get]
func (h *TeamHandler) GetAdmins(c *gin.Context) {
	h.writeMemberships(c, h.svc.GetAdmins)
}

// GetNonAdmins godoc
// @Summary List plain team members
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Success 200 {array} team.MembershipView
// @Router /teams/{team_slug}/non-admins [get]
func (h *TeamHandler) GetNonAdmins(c *gin.Context) {
	h.writeMemberships(c, h.svc.GetNonAdmins)
}

func (h *TeamHandler) writeMemberships(c *gin.Context, fetch func(uint, string) ([]team.Membership, error)) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	members, err := fetch(userID, c.Param("team_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}

	views := make([]team.MembershipView, 0, len(members))
	for i := range members {
		views = append(views, members[i].View())
	}
	c.JSON(http.StatusOK, views)
}

// PromoteAdmin godoc
// @Summary Promote a team member to administrator
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param input body team.MemberActionDTO true "Target username"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Cannot make user an admin. User is not a member of your team."
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /teams/{team_slug}/promote-admin [post]
func (h *TeamHandler) PromoteAdmin(c *gin.Context) {
	h.memberAction(c, h.svc.MakeAdmin, "User promoted to administrator")
}

// RemoveMember godoc
// @Summary Remove a member from the team
// @Tags teams
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param input body team.MemberActionDTO true "Target username"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Cannot remove the last administrator from a team."
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /teams/{team_slug}/remove-member [put]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	h.memberAction(c, h.svc.RemoveMember, "User removed from team")
}

func (h *TeamHandler) memberAction(c *gin.Context, action func(uint, string, string) error, okMsg string) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	var input team.MemberActionDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Errors: bindingErrors(err)})
		return
	}

	if err := action(userID, c.Param("team_slug"), input.User); err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: okMsg})
}

// StepDownAsAdmin godoc
// @Summary Step down from the administrator role
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Cannot step down as admin. A team must have at least one admin."
// @Router /teams/{team_slug}/step-down-as-admin [post]
func (h *TeamHandler) StepDownAsAdmin(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	if err := h.svc.StepDownAsAdmin(userID, c.Param("team_slug")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "You are no longer an administrator of this team"})
}

// LeaveTeam godoc
// @Summary Leave the team
// @Tags teams
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Cannot remove the last administrator from a team."
// @Router /teams/{team_slug}/leave-team [put]
func (h *TeamHandler) LeaveTeam(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	if err := h.svc.LeaveTeam(userID, c.Param("team_slug")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: "You have left the team"})
}

// AcceptInvitation godoc
// @Summary Accept a pending invitation and join the team
// @Tags invitations
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param invitation query string true "Invitation id"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Invitation not found."
// @Router /teams/{team_slug}/accept-invitation [post]
func (h *TeamHandler) AcceptInvitation(c *gin.Context) {
	h.resolveInvitation(c, h.inv.AcceptInvitation, "Invitation accepted")
}

// DeclineInvitation godoc
// @Summary Decline a pending invitation
// @Tags invitations
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param invitation query string true "Invitation id"
// @Success 200 {object} response.MessageResponse
// @Failure 404 {object} response.ErrorResponse "Invitation not found."
// @Router /teams/{team_slug}/decline-invitation [post]
func (h *TeamHandler) DeclineInvitation(c *gin.Context) {
	h.resolveInvitation(c, h.inv.DeclineInvitation, "Invitation declined")
}

func (h *TeamHandler) resolveInvitation(c *gin.Context, action func(uint, string, string) error, okMsg string) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	if err := action(userID, c.Param("team_slug"), c.Query("invitation")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: okMsg})
}
