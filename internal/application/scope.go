package application

import (
	"errors"

	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/domain/apperrors"
	"github.com/slmontgomery/bugtracking/internal/domain/project"
	"github.com/slmontgomery/bugtracking/internal/domain/team"
	"github.com/slmontgomery/bugtracking/internal/domain/ticket"
	"github.com/slmontgomery/bugtracking/internal/repository"
)

// Scope resolution. Detail lookups below encode the visibility asymmetry:
// an existing team answers a non-member with a permission error, while
// nested resources (projects, tickets) answer anyone who may not view them
// with "not found" so their existence is never confirmed.

func notFound(err error, wrapped error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return wrapped
	}
	return err
}

// resolveTeamScope loads the team by slug and the actor's membership.
// A missing membership yields the zero Scope, not an error.
func resolveTeamScope(repos *repository.Repos, slug string, actorID uint) (team.Team, Scope, error) {
	t, err := repos.Team.GetTeamBySlug(slug)
	if err != nil {
		return team.Team{}, Scope{}, notFound(err, apperrors.NewNotFound(apperrors.MsgTeamNotFound))
	}

	var scope Scope
	m, err := repos.TeamMembership.GetMembership(t.ID, actorID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return team.Team{}, Scope{}, err
		}
		return t, scope, nil
	}

	scope.TeamMember = true
	scope.TeamAdmin = m.IsAdmin()
	return t, scope, nil
}

// resolveProjectScope extends a team scope with the actor's standing on
// one project of that team.
func resolveProjectScope(repos *repository.Repos, p *project.Project, actorID uint, scope Scope) (Scope, error) {
	m, err := repos.ProjectMembership.GetMembership(p.ID, actorID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return scope, err
		}
		return scope, nil
	}

	scope.ProjectMember = true
	scope.ProjectManager = m.IsManager()
	return scope, nil
}

func ticketScope(t *ticket.Ticket, actorID uint, scope Scope) Scope {
	if t.SubmitterID != nil && *t.SubmitterID == actorID {
		scope.TicketSubmitter = true
	}
	if t.DeveloperID != nil && *t.DeveloperID == actorID {
		scope.TicketDeveloper = true
	}
	return scope
}

// loadProjectForActor fetches a project detail the actor may view, or
// reports "not found" whether the project is missing or merely invisible.
func loadProjectForActor(repos *repository.Repos, teamSlug, projectSlug string, actorID uint) (team.Team, project.Project, Scope, error) {
	t, scope, err := resolveTeamScope(repos, teamSlug, actorID)
	if err != nil {
		return team.Team{}, project.Project{}, Scope{}, err
	}
	if !scope.TeamMember {
		return team.Team{}, project.Project{}, Scope{}, apperrors.NewNotFound(apperrors.MsgProjectNotFound)
	}

	p, err := repos.Project.GetProjectBySlug(t.ID, projectSlug)
	if err != nil {
		return team.Team{}, project.Project{}, Scope{}, notFound(err, apperrors.NewNotFound(apperrors.MsgProjectNotFound))
	}

	scope, err = resolveProjectScope(repos, &p, actorID, scope)
	if err != nil {
		return team.Team{}, project.Project{}, Scope{}, err
	}
	if !Allowed(EntityProject, ActionView, scope) {
		return team.Team{}, project.Project{}, Scope{}, apperrors.NewNotFound(apperrors.MsgProjectNotFound)
	}

	return t, p, scope, nil
}

// loadTicketForActor is loadProjectForActor one level down. A team member
// who cannot see the project can still reach a ticket they submitted or
// are assigned to.
func loadTicketForActor(repos *repository.Repos, teamSlug, projectSlug, ticketSlug string, actorID uint) (team.Team, project.Project, ticket.Ticket, Scope, error) {
	t, scope, err := resolveTeamScope(repos, teamSlug, actorID)
	if err != nil {
		return team.Team{}, project.Project{}, ticket.Ticket{}, Scope{}, err
	}
	if !scope.TeamMember {
		return team.Team{}, project.Project{}, ticket.Ticket{}, Scope{}, apperrors.NewNotFound(apperrors.MsgTicketNotFound)
	}

	p, err := repos.Project.GetProjectBySlug(t.ID, projectSlug)
	if err != nil {
		return team.Team{}, project.Project{}, ticket.Ticket{}, Scope{}, notFound(err, apperrors.NewNotFound(apperrors.MsgTicketNotFound))
	}

	scope, err = resolveProjectScope(repos, &p, actorID, scope)
	if err != nil {
		return team.Team{}, project.Project{}, ticket.Ticket{}, Scope{}, err
	}

	tk, err := repos.Ticket.GetTicketBySlug(p.ID, ticketSlug)
	if err != nil {
		return team.Team{}, project.Project{}, ticket.Ticket{}, Scope{}, notFound(err, apperrors.NewNotFound(apperrors.MsgTicketNotFound))
	}

	scope = ticketScope(&tk, actorID, scope)
	if !Allowed(EntityTicket, ActionView, scope) {
		return team.Team{}, project.Project{}, ticket.Ticket{}, Scope{}, apperrors.NewNotFound(apperrors.MsgTicketNotFound)
	}

	return t, p, tk, scope, nil
}
