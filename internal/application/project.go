package application

import (
	"errors"

	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/domain/apperrors"
	"github.com/slmontgomery/bugtracking/internal/domain/project"
	"github.com/slmontgomery/bugtracking/internal/repository"
	"github.com/slmontgomery/bugtracking/pkg/utils"
)

type ProjectService struct {
	Repos *repository.Repos
}

func NewProjectService(repos *repository.Repos) *ProjectService {
	return &ProjectService{Repos: repos}
}

// ListProjects applies the visibility tiers: admins see every project of
// the team, members see the projects they belong to, and everyone else
// gets an empty list rather than an error.
func (s *ProjectService) ListProjects(actorID uint, teamSlug string) ([]project.Project, error) {
	t, scope, err := resolveTeamScope(s.Repos, teamSlug, actorID)
	if err != nil {
		return nil, err
	}

	switch {
	case scope.TeamAdmin:
		return s.Repos.Project.ListProjectsByTeam(t.ID)
	case scope.TeamMember:
		return s.Repos.Project.ListProjectsByTeamMember(t.ID, actorID)
	default:
		return []project.Project{}, nil
	}
}

// CreateProject creates a project under the team; only team admins may.
// When a manager username is given, the project row and the manager's
// membership are written in the same transaction.
func (s *ProjectService) CreateProject(actorID uint, teamSlug string, input project.CreateProjectDTO) (*project.Project, error) {
	t, scope, err := resolveTeamScope(s.Repos, teamSlug, actorID)
	if err != nil {
		return nil, err
	}
	if !scope.TeamAdmin {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}

	slug, err := utils.UniqueSlug(input.Title, func(candidate string) (bool, error) {
		return s.Repos.Project.ProjectSlugExists(t.ID, candidate)
	})
	if err != nil {
		return nil, err
	}

	p := project.Project{
		TeamID: t.ID,
		Title:  input.Title,
		Slug:   slug,
	}
	if input.Description != nil {
		p.Description = *input.Description
	}

	var managerID *uint
	if input.Manager != nil && *input.Manager != "" {
		manager, err := s.Repos.User.GetUserByUsername(*input.Manager)
		if err != nil {
			return nil, notFound(err, apperrors.NewValidation(apperrors.MsgNotTeamMember))
		}
		if _, err := s.Repos.TeamMembership.GetMembership(t.ID, manager.ID); err != nil {
			return nil, notFound(err, apperrors.NewValidation(apperrors.MsgNotTeamMember))
		}
		managerID = &manager.ID
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Project.CreateProject(&p); err != nil {
			return err
		}
		if managerID == nil {
			return nil
		}
		membership := project.Membership{
			ProjectID: p.ID,
			UserID:    *managerID,
			Role:      project.RoleManager,
		}
		if err := r.ProjectMembership.CreateMembership(&membership); err != nil {
			return err
		}
		if err := r.Project.SetManager(p.ID, managerID); err != nil {
			return err
		}
		p.ManagerID = managerID
		return nil
	})
	if err != nil {
		return nil, err
	}

	created, err := s.Repos.Project.GetProjectBySlug(t.ID, p.Slug)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ProjectService) GetProject(actorID uint, teamSlug, projectSlug string) (*project.Project, error) {
	_, p, _, err := loadProjectForActor(s.Repos, teamSlug, projectSlug, actorID)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProject edits general fields (manager or admin); the manager
// reference itself may only be changed by a team admin.
func (s *ProjectService) UpdateProject(actorID uint, teamSlug, projectSlug string, input project.UpdateProjectDTO) (*project.Project, error) {
	t, p, scope, err := loadProjectForActor(s.Repos, teamSlug, projectSlug, actorID)
	if err != nil {
		return nil, err
	}
	if !Allowed(EntityProject, ActionEdit, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}

	if input.Manager != nil && !Allowed(EntityProject, ActionChangeManager, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgManagerAdminOnly)
	}

	if input.Title != nil {
		p.Title = *input.Title
	}
	if input.Description != nil {
		p.Description = *input.Description
	}
	if input.IsArchived != nil {
		p.IsArchived = *input.IsArchived
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if input.Manager != nil {
			if err := s.makeManager(r, &p, *input.Manager); err != nil {
				return err
			}
		}
		// The preloaded associations are older than the swap's membership
		// writes; saving them back would undo the reassignment.
		p.Manager = nil
		p.Memberships = nil
		return r.Project.UpdateProject(&p)
	})
	if err != nil {
		return nil, err
	}

	updated, err := s.Repos.Project.GetProjectBySlug(t.ID, p.Slug)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ProjectService) DeleteProject(actorID uint, teamSlug, projectSlug string) error {
	_, p, scope, err := loadProjectForActor(s.Repos, teamSlug, projectSlug, actorID)
	if err != nil {
		return err
	}
	if !Allowed(EntityProject, ActionDelete, scope) {
		return apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}
	return s.Repos.Project.DeleteProject(p.ID)
}

// AddMember adds a current team member to the project as a developer.
// Idempotent when the user already belongs to the project.
func (s *ProjectService) AddMember(actorID uint, teamSlug, projectSlug, targetUsername string) error {
	t, p, scope, err := loadProjectForActor(s.Repos, teamSlug, projectSlug, actorID)
	if err != nil {
		return err
	}
	if !Allowed(EntityProject, ActionManageMembers, scope) {
		return apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}

	target, err := s.Repos.User.GetUserByUsername(targetUsername)
	if err != nil {
		return notFound(err, apperrors.NewValidation(apperrors.MsgNotTeamMember))
	}
	if _, err := s.Repos.TeamMembership.GetMembership(t.ID, target.ID); err != nil {
		return notFound(err, apperrors.NewValidation(apperrors.MsgNotTeamMember))
	}

	if _, err := s.Repos.ProjectMembership.GetMembership(p.ID, target.ID); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	membership := project.Membership{
		ProjectID: p.ID,
		UserID:    target.ID,
		Role:      project.RoleDeveloper,
	}
	return s.Repos.ProjectMembership.CreateMembership(&membership)
}

// RemoveMember removes a project member and cascades within the project:
// the manager pointer and any ticket assignments held by the user are
// cleared in the same transaction as the membership delete.
func (s *ProjectService) RemoveMember(actorID uint, teamSlug, projectSlug, targetUsername string) error {
	_, p, scope, err := loadProjectForActor(s.Repos, teamSlug, projectSlug, actorID)
	if err != nil {
		return err
	}
	if !Allowed(EntityProject, ActionManageMembers, scope) {
		return apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}

	target, err := s.Repos.User.GetUserByUsername(targetUsername)
	if err != nil {
		return notFound(err, apperrors.NewNotFound(apperrors.MsgUserNotFound))
	}

	return s.Repos.ExecTx(func(r *repository.Repos) error {
		if _, err := r.ProjectMembership.GetMembership(p.ID, target.ID); err != nil {
			return notFound(err, apperrors.NewValidation("User is not a member of this project."))
		}
		if err := r.ProjectMembership.DeleteMembership(p.ID, target.ID); err != nil {
			return err
		}
		if p.ManagerID != nil && *p.ManagerID == target.ID {
			if err := r.Project.SetManager(p.ID, nil); err != nil {
				return err
			}
		}
		return r.Ticket.ClearDeveloperForUserInProject(p.ID, target.ID)
	})
}

// MakeManager reassigns the project's single manager slot to a current
// project member. Only team admins reach this operation.
func (s *ProjectService) MakeManager(actorID uint, teamSlug, projectSlug, targetUsername string) error {
	_, p, scope, err := loadProjectForActor(s.Repos, teamSlug, projectSlug, actorID)
	if err != nil {
		return err
	}
	if !Allowed(EntityProject, ActionChangeManager, scope) {
		return apperrors.NewPermission(apperrors.MsgManagerAdminOnly)
	}
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		return s.makeManager(r, &p, targetUsername)
	})
}

// makeManager demotes the previous manager's row and promotes the new one
// atomically, so a reader can never observe two managers, or none when
// one was assigned. Idempotent when the target already manages. Runs
// inside the caller's transaction and locks the project row first, which
// serializes concurrent swaps on the same project.
func (s *ProjectService) makeManager(r *repository.Repos, p *project.Project, targetUsername string) error {
	target, err := r.User.GetUserByUsername(targetUsername)
	if err != nil {
		return notFound(err, apperrors.NewValidation(apperrors.MsgNotManagerCandidate))
	}

	membership, err := r.ProjectMembership.GetMembership(p.ID, target.ID)
	if err != nil {
		return notFound(err, apperrors.NewValidation(apperrors.MsgNotManagerCandidate))
	}
	if membership.IsManager() {
		return nil
	}

	if _, err := r.Project.GetProjectForUpdate(p.ID); err != nil {
		return err
	}

	current, err := r.ProjectMembership.GetManager(p.ID)
	if err == nil {
		current.Role = project.RoleDeveloper
		if err := r.ProjectMembership.UpdateMembership(&current); err != nil {
			return err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	membership.Role = project.RoleManager
	if err := r.ProjectMembership.UpdateMembership(&membership); err != nil {
		return err
	}
	if err := r.Project.SetManager(p.ID, &target.ID); err != nil {
		return err
	}
	p.ManagerID = &target.ID
	return nil
}

// GetUserPermissions reports the actor's capabilities on the project.
// A team member who cannot see the project still gets an answer; all
// booleans false.
func (s *ProjectService) GetUserPermissions(actorID uint, teamSlug, projectSlug string) (*project.PermissionsDTO, error) {
	t, scope, err := resolveTeamScope(s.Repos, teamSlug, actorID)
	if err != nil {
		return nil, err
	}
	if !scope.TeamMember {
		return nil, apperrors.NewNotFound(apperrors.MsgProjectNotFound)
	}

	p, err := s.Repos.Project.GetProjectBySlug(t.ID, projectSlug)
	if err != nil {
		return nil, notFound(err, apperrors.NewNotFound(apperrors.MsgProjectNotFound))
	}

	scope, err = resolveProjectScope(s.Repos, &p, actorID, scope)
	if err != nil {
		return nil, err
	}

	return &project.PermissionsDTO{
		View:          Allowed(EntityProject, ActionView, scope),
		Edit:          Allowed(EntityProject, ActionEdit, scope),
		UpdateManager: Allowed(EntityProject, ActionChangeManager, scope),
		CreateTickets: Allowed(EntityProject, ActionCreateTickets, scope),
	}, nil
}
