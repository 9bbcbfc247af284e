package application

import (
	"strings"

	"github.com/slmontgomery/bugtracking/internal/domain/apperrors"
	"github.com/slmontgomery/bugtracking/internal/domain/ticket"
	"github.com/slmontgomery/bugtracking/internal/repository"
	"github.com/slmontgomery/bugtracking/pkg/utils"
)

type TicketService struct {
	Repos *repository.Repos
}

func NewTicketService(repos *repository.Repos) *TicketService {
	return &TicketService{Repos: repos}
}

// ListTickets applies the ticket visibility tiers. Team admins and
// project members see the whole project; other team members see only
// tickets they submitted or are assigned to; outsiders see nothing.
func (s *TicketService) ListTickets(actorID uint, teamSlug, projectSlug string) ([]ticket.Ticket, error) {
	t, scope, err := resolveTeamScope(s.Repos, teamSlug, actorID)
	if err != nil {
		return nil, err
	}
	if !scope.TeamMember {
		return []ticket.Ticket{}, nil
	}

	p, err := s.Repos.Project.GetProjectBySlug(t.ID, projectSlug)
	if err != nil {
		return nil, notFound(err, apperrors.NewNotFound(apperrors.MsgProjectNotFound))
	}

	scope, err = resolveProjectScope(s.Repos, &p, actorID, scope)
	if err != nil {
		return nil, err
	}

	if scope.TeamAdmin || scope.ProjectMember {
		return s.Repos.Ticket.ListTicketsByProject(p.ID)
	}
	return s.Repos.Ticket.ListTicketsForUserInProject(p.ID, actorID)
}

// CreateTicket submits a ticket. The submitter must hold ticket-creation
// rights on the project; assigning a developer at creation additionally
// requires manager or admin authority and a developer who is already a
// project member.
func (s *TicketService) CreateTicket(actorID uint, teamSlug, projectSlug string, input ticket.CreateTicketDTO) (*ticket.Ticket, error) {
	_, p, scope, err := loadProjectForActor(s.Repos, teamSlug, projectSlug, actorID)
	if err != nil {
		return nil, err
	}
	if !Allowed(EntityProject, ActionCreateTickets, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}

	var developerID *uint
	if input.Developer != nil && *input.Developer != "" {
		if !Allowed(EntityTicket, ActionChangeDeveloper, scope) {
			return nil, apperrors.NewPermission(apperrors.MsgDeveloperRoleOnly)
		}
		id, err := s.resolveDeveloper(p.ID, *input.Developer)
		if err != nil {
			return nil, err
		}
		developerID = id
	}

	slug, err := utils.UniqueSlug(input.Title, func(candidate string) (bool, error) {
		return s.Repos.Ticket.TicketSlugExists(p.ID, candidate)
	})
	if err != nil {
		return nil, err
	}

	tk := ticket.Ticket{
		ProjectID:   p.ID,
		Title:       input.Title,
		Slug:        slug,
		Priority:    ticket.PriorityLow,
		SubmitterID: &actorID,
		DeveloperID: developerID,
		IsOpen:      true,
	}
	if input.Description != nil {
		tk.Description = *input.Description
	}
	if input.Priority != nil {
		tk.Priority = *input.Priority
	}

	if err := s.Repos.Ticket.CreateTicket(&tk); err != nil {
		return nil, err
	}

	created, err := s.Repos.Ticket.GetTicketBySlug(p.ID, tk.Slug)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *TicketService) GetTicket(actorID uint, teamSlug, projectSlug, ticketSlug string) (*ticket.Ticket, error) {
	_, _, tk, _, err := loadTicketForActor(s.Repos, teamSlug, projectSlug, ticketSlug, actorID)
	if err != nil {
		return nil, err
	}
	return &tk, nil
}

// UpdateTicket edits a ticket. General fields follow the edit rule;
// the developer reference and the open/resolution pair have their own,
// stricter rules.
func (s *TicketService) UpdateTicket(actorID uint, teamSlug, projectSlug, ticketSlug string, input ticket.UpdateTicketDTO) (*ticket.Ticket, error) {
	_, p, tk, scope, err := loadTicketForActor(s.Repos, teamSlug, projectSlug, ticketSlug, actorID)
	if err != nil {
		return nil, err
	}
	if !Allowed(EntityTicket, ActionEdit, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}

	if input.Developer != nil {
		if !Allowed(EntityTicket, ActionChangeDeveloper, scope) {
			return nil, apperrors.NewPermission(apperrors.MsgDeveloperRoleOnly)
		}
		if *input.Developer == "" {
			tk.DeveloperID = nil
			tk.Developer = nil
		} else {
			id, err := s.resolveDeveloper(p.ID, *input.Developer)
			if err != nil {
				return nil, err
			}
			tk.DeveloperID = id
			tk.Developer = nil
		}
	}

	if input.IsOpen != nil || input.Resolution != nil {
		if !Allowed(EntityTicket, ActionClose, scope) {
			return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
		}
		if input.IsOpen != nil {
			tk.IsOpen = *input.IsOpen
		}
		if input.Resolution != nil {
			tk.Resolution = input.Resolution
		}
	}

	if input.Title != nil {
		tk.Title = *input.Title
	}
	if input.Description != nil {
		tk.Description = *input.Description
	}
	if input.Priority != nil {
		tk.Priority = *input.Priority
	}

	if err := s.Repos.Ticket.UpdateTicket(&tk); err != nil {
		return nil, err
	}

	updated, err := s.Repos.Ticket.GetTicketBySlug(p.ID, tk.Slug)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *TicketService) DeleteTicket(actorID uint, teamSlug, projectSlug, ticketSlug string) error {
	_, _, tk, scope, err := loadTicketForActor(s.Repos, teamSlug, projectSlug, ticketSlug, actorID)
	if err != nil {
		return err
	}
	if !Allowed(EntityTicket, ActionDelete, scope) {
		return apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}
	return s.Repos.Ticket.DeleteTicket(tk.ID)
}

// CreateComment posts to a ticket the actor can view. Text is required.
func (s *TicketService) CreateComment(actorID uint, teamSlug, projectSlug, ticketSlug, text string) (*ticket.Comment, error) {
	_, _, tk, scope, err := loadTicketForActor(s.Repos, teamSlug, projectSlug, ticketSlug, actorID)
	if err != nil {
		return nil, err
	}
	if !Allowed(EntityComment, ActionComment, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidation(apperrors.MsgEmptyComment)
	}

	comment := ticket.Comment{
		TicketID: tk.ID,
		AuthorID: &actorID,
		Text:     text,
	}
	if err := s.Repos.Comment.CreateComment(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListComments returns a ticket's comments, newest first, to anyone who
// can view the ticket itself.
func (s *TicketService) ListComments(actorID uint, teamSlug, projectSlug, ticketSlug string) ([]ticket.Comment, error) {
	_, _, tk, _, err := loadTicketForActor(s.Repos, teamSlug, projectSlug, ticketSlug, actorID)
	if err != nil {
		return nil, err
	}
	return s.Repos.Comment.ListCommentsByTicket(tk.ID)
}

// GetUserPermissions reports the actor's capabilities on the ticket; a
// team member who cannot view it gets an all-false answer.
func (s *TicketService) GetUserPermissions(actorID uint, teamSlug, projectSlug, ticketSlug string) (*ticket.PermissionsDTO, error) {
	t, scope, err := resolveTeamScope(s.Repos, teamSlug, actorID)
	if err != nil {
		return nil, err
	}
	if !scope.TeamMember {
		return nil, apperrors.NewNotFound(apperrors.MsgTicketNotFound)
	}

	p, err := s.Repos.Project.GetProjectBySlug(t.ID, projectSlug)
	if err != nil {
		return nil, notFound(err, apperrors.NewNotFound(apperrors.MsgTicketNotFound))
	}
	scope, err = resolveProjectScope(s.Repos, &p, actorID, scope)
	if err != nil {
		return nil, err
	}

	tk, err := s.Repos.Ticket.GetTicketBySlug(p.ID, ticketSlug)
	if err != nil {
		return nil, notFound(err, apperrors.NewNotFound(apperrors.MsgTicketNotFound))
	}
	scope = ticketScope(&tk, actorID, scope)

	return &ticket.PermissionsDTO{
		View:            Allowed(EntityTicket, ActionView, scope),
		Edit:            Allowed(EntityTicket, ActionEdit, scope),
		Delete:          Allowed(EntityTicket, ActionDelete, scope),
		ChangeDeveloper: Allowed(EntityTicket, ActionChangeDeveloper, scope),
		Close:           Allowed(EntityTicket, ActionClose, scope),
	}, nil
}

func (s *TicketService) resolveDeveloper(projectID uint, username string) (*uint, error) {
	developer, err := s.Repos.User.GetUserByUsername(username)
	if err != nil {
		return nil, notFound(err, apperrors.NewValidation(apperrors.MsgDeveloperNotMember))
	}
	if _, err := s.Repos.ProjectMembership.GetMembership(projectID, developer.ID); err != nil {
		return nil, notFound(err, apperrors.NewValidation(apperrors.MsgDeveloperNotMember))
	}
	return &developer.ID, nil
}
