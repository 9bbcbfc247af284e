package application

import (
	"errors"

	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/domain/apperrors"
	"github.com/slmontgomery/bugtracking/internal/domain/team"
	"github.com/slmontgomery/bugtracking/internal/repository"
	"github.com/slmontgomery/bugtracking/pkg/utils"
)

type TeamService struct {
	Repos *repository.Repos
}

func NewTeamService(repos *repository.Repos) *TeamService {
	return &TeamService{Repos: repos}
}

// ListTeams returns the teams the actor belongs to. Teams the actor is
// not a member of are simply absent; list endpoints never leak existence.
func (s *TeamService) ListTeams(actorID uint) ([]team.Team, error) {
	return s.Repos.Team.ListTeamsByUser(actorID)
}

// CreateTeam creates the team and its creator's admin membership in one
// transaction. A team never exists without at least one admin.
func (s *TeamService) CreateTeam(actorID uint, input team.CreateTeamDTO) (*team.Team, error) {
	slug, err := utils.UniqueSlug(input.Title, s.Repos.Team.TeamSlugExists)
	if err != nil {
		return nil, err
	}

	t := team.Team{
		Title: input.Title,
		Slug:  slug,
	}
	if input.Description != nil {
		t.Description = *input.Description
	}

	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if err := r.Team.CreateTeam(&t); err != nil {
			return err
		}
		membership := team.Membership{
			TeamID: t.ID,
			UserID: actorID,
			Role:   team.RoleAdmin,
		}
		return r.TeamMembership.CreateMembership(&membership)
	})
	if err != nil {
		return nil, err
	}

	created, err := s.Repos.Team.GetTeamBySlug(t.Slug)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetTeam returns the team detail. A non-member gets an explicit
// permission error here: team slugs are shared openly in invitations, so
// a 404 would hide nothing, and the original surface answers 403.
func (s *TeamService) GetTeam(actorID uint, slug string) (*team.Team, error) {
	t, scope, err := resolveTeamScope(s.Repos, slug, actorID)
	if err != nil {
		return nil, err
	}
	if !Allowed(EntityTeam, ActionView, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}
	return &t, nil
}

// UpdateTeam edits mutable fields. The title is write-once: a request
// carrying a changed title is rejected in full, no other field applied.
func (s *TeamService) UpdateTeam(actorID uint, slug string, input team.UpdateTeamDTO) (*team.Team, error) {
	t, scope, err := resolveTeamScope(s.Repos, slug, actorID)
	if err != nil {
		return nil, err
	}
	if !Allowed(EntityTeam, ActionEdit, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}

	if input.Title != nil && *input.Title != t.Title {
		return nil, apperrors.NewValidation(apperrors.MsgTitleImmutable)
	}
	if input.Description != nil {
		t.Description = *input.Description
	}

	if err := s.Repos.Team.UpdateTeam(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

// DeleteTeam always fails: teams are undeletable by policy.
func (s *TeamService) DeleteTeam(actorID uint, slug string) error {
	if _, _, err := resolveTeamScope(s.Repos, slug, actorID); err != nil {
		return err
	}
	return apperrors.NewPermission(apperrors.MsgTeamsUndeletable)
}

// GetMembers lists every membership of the team. Member-visible.
func (s *TeamService) GetMembers(actorID uint, slug string) ([]team.Membership, error) {
	t, scope, err := resolveTeamScope(s.Repos, slug, actorID)
	if err != nil {
		return nil, err
	}
	if !Allowed(EntityTeam, ActionView, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}
	return s.Repos.TeamMembership.ListMembershipsByTeam(t.ID)
}

// GetAdmins returns the memberships holding the admin role on this team
// and no other.
func (s *TeamService) GetAdmins(actorID uint, slug string) ([]team.Membership, error) {
	t, scope, err := resolveTeamScope(s.Repos, slug, actorID)
	if err != nil {
		return nil, err
	}
	if !Allowed(EntityTeam, ActionView, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}
	return s.Repos.TeamMembership.ListAdmins(t.ID)
}

// GetNonAdmins returns the plain member rows of this team.
func (s *TeamService) GetNonAdmins(actorID uint, slug string) ([]team.Membership, error) {
	members, err := s.GetMembers(actorID, slug)
	if err != nil {
		return nil, err
	}
	nonAdmins := make([]team.Membership, 0, len(members))
	for _, m := range members {
		if !m.IsAdmin() {
			nonAdmins = append(nonAdmins, m)
		}
	}
	return nonAdmins, nil
}

// MakeAdmin promotes a current member to admin. Idempotent for a target
// who is already an admin.
func (s *TeamService) MakeAdmin(actorID uint, slug, targetUsername string) error {
	t, scope, err := resolveTeamScope(s.Repos, slug, actorID)
	if err != nil {
		return err
	}
	if !Allowed(EntityTeam, ActionManageRoles, scope) {
		return apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}

	target, err := s.Repos.User.GetUserByUsername(targetUsername)
	if err != nil {
		return notFound(err, apperrors.NewValidation(apperrors.MsgNotAdminCandidate))
	}

	membership, err := s.Repos.TeamMembership.GetMembership(t.ID, target.ID)
	if err != nil {
		return notFound(err, apperrors.NewValidation(apperrors.MsgNotAdminCandidate))
	}
	if membership.IsAdmin() {
		return nil
	}

	membership.Role = team.RoleAdmin
	return s.Repos.TeamMembership.UpdateMembership(&membership)
}

// StepDownAsAdmin demotes the actor to a plain member, unless the actor
// is the team's last admin. The transaction locks the team row before
// counting, so two admins stepping down at once are serialized and
// cannot empty the team.
func (s *TeamService) StepDownAsAdmin(actorID uint, slug string) error {
	t, scope, err := resolveTeamScope(s.Repos, slug, actorID)
	if err != nil {
		return err
	}
	if !scope.TeamAdmin {
		return apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}

	return s.Repos.ExecTx(func(r *repository.Repos) error {
		if _, err := r.Team.GetTeamForUpdate(t.ID); err != nil {
			return err
		}

		count, err := r.TeamMembership.CountAdmins(t.ID)
		if err != nil {
			return err
		}
		if count <= 1 {
			return apperrors.NewValidation(apperrors.MsgLastAdmin)
		}

		membership, err := r.TeamMembership.GetMembership(t.ID, actorID)
		if err != nil {
			return err
		}
		membership.Role = team.RoleMember
		return r.TeamMembership.UpdateMembership(&membership)
	})
}

// RemoveMember removes a user from the team and cascades: project
// memberships under the team go away, manager pointers at the user are
// cleared, assigned tickets are unassigned. All in one transaction, so no
// reader ever sees a project role outliving its team membership.
func (s *TeamService) RemoveMember(actorID uint, slug, targetUsername string) error {
	t, scope, err := resolveTeamScope(s.Repos, slug, actorID)
	if err != nil {
		return err
	}
	if !Allowed(EntityTeam, ActionManageMembers, scope) {
		return apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}

	target, err := s.Repos.User.GetUserByUsername(targetUsername)
	if err != nil {
		return notFound(err, apperrors.NewNotFound(apperrors.MsgUserNotFound))
	}

	return s.removeMembership(t.ID, target.ID)
}

// LeaveTeam is self-removal with the same cascade.
func (s *TeamService) LeaveTeam(actorID uint, slug string) error {
	t, scope, err := resolveTeamScope(s.Repos, slug, actorID)
	if err != nil {
		return err
	}
	if !scope.TeamMember {
		return apperrors.NewValidation(apperrors.MsgNotTeamMember)
	}

	return s.removeMembership(t.ID, actorID)
}

func (s *TeamService) removeMembership(teamID, userID uint) error {
	return s.Repos.ExecTx(func(r *repository.Repos) error {
		// Lock the team row so the last-admin count below cannot race a
		// concurrent demotion or removal.
		if _, err := r.Team.GetTeamForUpdate(teamID); err != nil {
			return err
		}

		membership, err := r.TeamMembership.GetMembership(teamID, userID)
		if err != nil {
			return notFound(err, apperrors.NewValidation(apperrors.MsgNotTeamMember))
		}

		if membership.IsAdmin() {
			count, err := r.TeamMembership.CountAdmins(teamID)
			if err != nil {
				return err
			}
			if count <= 1 {
				return apperrors.NewValidation(apperrors.MsgRemoveLastAdmin)
			}
		}

		if err := r.ProjectMembership.DeleteMembershipsInTeam(teamID, userID); err != nil {
			return err
		}
		if err := r.Project.ClearManagerForUser(teamID, userID); err != nil {
			return err
		}
		if err := r.Ticket.ClearDeveloperForUserInTeam(teamID, userID); err != nil {
			return err
		}
		return r.TeamMembership.DeleteMembership(teamID, userID)
	})
}

// addTeamMember is the idempotent membership insert shared by invitation
// acceptance. Callers run it inside their own transaction when needed.
func addTeamMember(r *repository.Repos, teamID, userID uint) error {
	_, err := r.TeamMembership.GetMembership(teamID, userID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	membership := team.Membership{
		TeamID: teamID,
		UserID: userID,
		Role:   team.RoleMember,
	}
	return r.TeamMembership.CreateMembership(&membership)
}
