package application

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/config"
	"github.com/slmontgomery/bugtracking/internal/domain/apperrors"
	"github.com/slmontgomery/bugtracking/internal/domain/team"
	"github.com/slmontgomery/bugtracking/internal/mailer"
	"github.com/slmontgomery/bugtracking/internal/repository"
)

type InvitationService struct {
	Repos  *repository.Repos
	Mailer mailer.Mailer
}

func NewInvitationService(repos *repository.Repos, m mailer.Mailer) *InvitationService {
	return &InvitationService{Repos: repos, Mailer: m}
}

// ListInvitations is a team-admin view of every invitation, resolved or
// pending.
func (s *InvitationService) ListInvitations(actorID uint, teamSlug string) ([]team.Invitation, error) {
	t, scope, err := resolveTeamScope(s.Repos, teamSlug, actorID)
	if err != nil {
		return nil, err
	}
	if !Allowed(EntityInvitation, ActionView, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}
	return s.Repos.Invitation.ListInvitationsByTeam(t.ID)
}

// CreateInvitation invites an email address to the team. Current members
// cannot be re-invited, and a pending invitation younger than the
// cooldown window blocks a duplicate; once the window has elapsed a
// fresh invitation row is created alongside the stale one.
func (s *InvitationService) CreateInvitation(actorID uint, teamSlug string, input team.CreateInvitationDTO) (*team.Invitation, error) {
	t, scope, err := resolveTeamScope(s.Repos, teamSlug, actorID)
	if err != nil {
		return nil, err
	}
	if !Allowed(EntityInvitation, ActionView, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}

	if existing, err := s.Repos.User.GetUserByEmail(input.InviteeEmail); err == nil {
		if _, err := s.Repos.TeamMembership.GetMembership(t.ID, existing.ID); err == nil {
			return nil, apperrors.NewValidation(apperrors.MsgAlreadyTeamMember)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	inv := team.Invitation{
		ID:           uuid.New(),
		TeamID:       t.ID,
		InviterID:    &actorID,
		InviteeEmail: input.InviteeEmail,
		Status:       team.InvitationPending,
	}
	if input.Message != nil {
		inv.Message = *input.Message
	}

	// The cooldown check and the insert share a transaction with the
	// team row locked, so two admins inviting the same address at once
	// cannot both pass the check.
	cooldown := time.Duration(config.InvitationCooldownDays) * 24 * time.Hour
	err = s.Repos.ExecTx(func(r *repository.Repos) error {
		if _, err := r.Team.GetTeamForUpdate(t.ID); err != nil {
			return err
		}
		if prior, err := r.Invitation.LatestInvitation(t.ID, input.InviteeEmail); err == nil {
			if prior.IsPending() && time.Since(prior.CreatedAt) < cooldown {
				return apperrors.NewConflict(apperrors.MsgInvitationCooldown)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return r.Invitation.CreateInvitation(&inv)
	})
	if err != nil {
		return nil, err
	}

	s.sendEmail(&inv, &t, actorID, false)

	return &inv, nil
}

// GetInvitation is team-admin only; a malformed or foreign id reads as
// missing.
func (s *InvitationService) GetInvitation(actorID uint, teamSlug, invitationID string) (*team.Invitation, error) {
	t, scope, err := resolveTeamScope(s.Repos, teamSlug, actorID)
	if err != nil {
		return nil, err
	}
	if !Allowed(EntityInvitation, ActionView, scope) {
		return nil, apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}
	inv, err := s.findTeamInvitation(t.ID, invitationID)
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InvitationService) DeleteInvitation(actorID uint, teamSlug, invitationID string) error {
	t, scope, err := resolveTeamScope(s.Repos, teamSlug, actorID)
	if err != nil {
		return err
	}
	if !Allowed(EntityInvitation, ActionDelete, scope) {
		return apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}
	inv, err := s.findTeamInvitation(t.ID, invitationID)
	if err != nil {
		return err
	}
	return s.Repos.Invitation.DeleteInvitation(inv.ID)
}

// AcceptInvitation resolves a pending invitation to accepted and joins
// the actor to the team, in one transaction. Every mismatch (wrong team,
// wrong id, wrong account) reads uniformly as "Invitation not found."
// so a probing caller learns nothing.
func (s *InvitationService) AcceptInvitation(actorID uint, teamSlug, invitationID string) error {
	return s.resolveInvitation(actorID, teamSlug, invitationID, team.InvitationAccepted)
}

// DeclineInvitation resolves to declined; no membership change.
func (s *InvitationService) DeclineInvitation(actorID uint, teamSlug, invitationID string) error {
	return s.resolveInvitation(actorID, teamSlug, invitationID, team.InvitationDeclined)
}

func (s *InvitationService) resolveInvitation(actorID uint, teamSlug, invitationID string, outcome team.InvitationStatus) error {
	invitationNotFound := apperrors.NewNotFound(apperrors.MsgInvitationNotFound)

	t, err := s.Repos.Team.GetTeamBySlug(teamSlug)
	if err != nil {
		return notFound(err, invitationNotFound)
	}

	id, err := uuid.Parse(invitationID)
	if err != nil {
		return invitationNotFound
	}

	inv, err := s.Repos.Invitation.GetInvitationByID(id)
	if err != nil {
		return notFound(err, invitationNotFound)
	}
	if inv.TeamID != t.ID || !inv.IsPending() {
		return invitationNotFound
	}

	actor, err := s.Repos.User.GetUserByID(actorID)
	if err != nil {
		return err
	}
	if !strings.EqualFold(actor.Email, inv.InviteeEmail) {
		return invitationNotFound
	}

	return s.Repos.ExecTx(func(r *repository.Repos) error {
		inv.Status = outcome
		inv.InviteeID = &actor.ID
		if err := r.Invitation.UpdateInvitation(&inv); err != nil {
			return err
		}
		if outcome == team.InvitationAccepted {
			return addTeamMember(r, t.ID, actor.ID)
		}
		return nil
	})
}

// ResendEmail re-sends the invitation email with a note that it was
// resent. State does not change.
func (s *InvitationService) ResendEmail(actorID uint, teamSlug, invitationID string) error {
	t, scope, err := resolveTeamScope(s.Repos, teamSlug, actorID)
	if err != nil {
		return err
	}
	if !Allowed(EntityInvitation, ActionView, scope) {
		return apperrors.NewPermission(apperrors.MsgPermissionDenied)
	}
	inv, err := s.findTeamInvitation(t.ID, invitationID)
	if err != nil {
		return err
	}

	inviterID := actorID
	if inv.InviterID != nil {
		inviterID = *inv.InviterID
	}
	s.sendEmail(inv, &t, inviterID, true)
	return nil
}

func (s *InvitationService) findTeamInvitation(teamID uint, invitationID string) (*team.Invitation, error) {
	invitationNotFound := apperrors.NewNotFound(apperrors.MsgInvitationNotFound)

	id, err := uuid.Parse(invitationID)
	if err != nil {
		return nil, invitationNotFound
	}
	inv, err := s.Repos.Invitation.GetInvitationByID(id)
	if err != nil {
		return nil, notFound(err, invitationNotFound)
	}
	if inv.TeamID != teamID {
		return nil, invitationNotFound
	}
	return &inv, nil
}

// sendEmail delivers best-effort: a transport failure is logged, never
// surfaced, and never rolls back the invitation itself.
func (s *InvitationService) sendEmail(inv *team.Invitation, t *team.Team, inviterID uint, resent bool) {
	inviterName := "A team administrator"
	if inviter, err := s.Repos.User.GetUserByID(inviterID); err == nil {
		inviterName = inviter.Username
	}
	if err := s.Mailer.SendInvitation(inv, t, inviterName, resent); err != nil {
		log.Printf("failed to send invitation email to %s: %v", inv.InviteeEmail, err)
	}
}
