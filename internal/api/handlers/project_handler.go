package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/slmontgomery/bugtracking/internal/application"
	"github.com/slmontgomery/bugtracking/internal/domain/project"
	"github.com/slmontgomery/bugtracking/pkg/response"
	"github.com/slmontgomery/bugtracking/pkg/utils"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects godoc
// @Summary List projects visible to the caller within a team
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Success 200 {array} project.Project
// @Router /teams/{team_slug}/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	projects, err := h.svc.ListProjects(userID, c.Param("team_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// CreateProject godoc
// @Summary Create a project (team administrators only)
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param input body project.CreateProjectDTO true "Project info"
// @Success 201 {object} project.Project
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /teams/{team_slug}/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	var input project.CreateProjectDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Errors: bindingErrors(err)})
		return
	}

	p, err := h.svc.CreateProject(userID, c.Param("team_slug"), input)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// GetProject godoc
// @Summary Project detail
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Success 200 {object} project.Project
// @Failure 404 {object} response.ErrorResponse "Project not found."
// @Router /teams/{team_slug}/projects/{project_slug} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	p, err := h.svc.GetProject(userID, c.Param("team_slug"), c.Param("project_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateProject godoc
// @Summary Update project fields; the manager field is admin-only
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Param input body project.UpdateProjectDTO true "Fields to update"
// @Success 200 {object} project.Project
// @Failure 403 {object} response.ErrorResponse "Only a team administrator may change the manager of a project."
// @Router /teams/{team_slug}/projects/{project_slug} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	var input project.UpdateProjectDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Errors: bindingErrors(err)})
		return
	}

	p, err := h.svc.UpdateProject(userID, c.Param("team_slug"), c.Param("project_slug"), input)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProject godoc
// @Summary Delete a project (manager or team administrator)
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Success 204 "No Content"
// @Failure 403 {object} response.ErrorResponse "Permission denied"
// @Router /teams/{team_slug}/projects/{project_slug} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	if err := h.svc.DeleteProject(userID, c.Param("team_slug"), c.Param("project_slug")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddMember godoc
// @Summary Add a team member to the project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Param input body project.MemberActionDTO true "Target username"
// @Success 200 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "User is not a member of this team."
// @Router /teams/{team_slug}/projects/{project_slug}/add-member [put]
func (h *ProjectHandler) AddMember(c *gin.Context) {
	h.memberAction(c, h.svc.AddMember, "User added to project")
}

// RemoveMember godoc
// @Summary Remove a member from the project
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Param input body project.MemberActionDTO true "Target username"
// @Success 200 {object} response.MessageResponse
// @Router /teams/{team_slug}/projects/{project_slug}/remove-member [put]
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	h.memberAction(c, h.svc.RemoveMember, "User removed from project")
}

func (h *ProjectHandler) memberAction(c *gin.Context, action func(uint, string, string, string) error, okMsg string) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	var input project.MemberActionDTO
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Errors: bindingErrors(err)})
		return
	}

	if err := action(userID, c.Param("team_slug"), c.Param("project_slug"), input.User); err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MessageResponse{Message: okMsg})
}

// GetUserPermissions godoc
// @Summary The caller's effective permissions on the project
// @Tags projects
// @Security BearerAuth
// @Produce json
// @Param team_slug path string true "Team slug"
// @Param project_slug path string true "Project slug"
// @Success 200 {object} project.PermissionsDTO
// @Failure 404 {object} response.ErrorResponse "Project not found."
// @Router /teams/{team_slug}/projects/{project_slug}/get-user-permissions [get]
func (h *ProjectHandler) GetUserPermissions(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Errors: err.Error()})
		return
	}

	perms, err := h.svc.GetUserPermissions(userID, c.Param("team_slug"), c.Param("project_slug"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	c.JSON(http.StatusOK, perms)
}
