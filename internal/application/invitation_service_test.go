package application_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/slmontgomery/bugtracking/internal/application"
	"github.com/slmontgomery/bugtracking/internal/domain/apperrors"
	"github.com/slmontgomery/bugtracking/internal/domain/team"
	"github.com/slmontgomery/bugtracking/internal/domain/user"
)

// recordingMailer captures deliveries instead of sending them.
type recordingMailer struct {
	sent   int
	resent bool
	to     string
}

func (m *recordingMailer) SendInvitation(inv *team.Invitation, t *team.Team, inviterName string, resent bool) error {
	m.sent++
	m.resent = resent
	m.to = inv.InviteeEmail
	return nil
}

func TestCreateInvitation(t *testing.T) {
	t.Run("admin invites a fresh address", func(t *testing.T) {
		repos, m := newMockRepos(t)
		mail := &recordingMailer{}
		svc := application.NewInvitationService(repos, mail)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme", Title: "Acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
		m.User.EXPECT().GetUserByEmail("new@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
		m.Team.EXPECT().GetTeamForUpdate(uint(1)).Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.Invitation.EXPECT().LatestInvitation(uint(1), "new@example.com").Return(team.Invitation{}, gorm.ErrRecordNotFound)
		m.Invitation.EXPECT().CreateInvitation(gomock.Any()).Do(func(inv *team.Invitation) {
			if inv.Status != team.InvitationPending {
				t.Fatalf("expected pending, got %q", inv.Status)
			}
			if inv.InviterID == nil || *inv.InviterID != 7 {
				t.Fatalf("inviter not recorded: %+v", inv.InviterID)
			}
		}).Return(nil)
		m.User.EXPECT().GetUserByID(uint(7)).Return(user.User{ID: 7, Username: "alice"}, nil)

		inv, err := svc.CreateInvitation(7, "acme", team.CreateInvitationDTO{InviteeEmail: "new@example.com"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.InviteeEmail != "new@example.com" {
			t.Fatalf("unexpected invitee: %q", inv.InviteeEmail)
		}
		if mail.sent != 1 || mail.resent {
			t.Fatalf("expected one fresh email, got sent=%d resent=%v", mail.sent, mail.resent)
		}
	})

	t.Run("plain members may not invite", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewInvitationService(repos, &recordingMailer{})

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(8)).Return(membership(1, 8, team.RoleMember), nil)

		_, err := svc.CreateInvitation(8, "acme", team.CreateInvitationDTO{InviteeEmail: "new@example.com"})
		if !apperrors.IsPermission(err) {
			t.Fatalf("expected permission error, got %v", err)
		}
	})

	t.Run("current members cannot be re-invited", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewInvitationService(repos, &recordingMailer{})

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
		m.User.EXPECT().GetUserByEmail("beth@example.com").Return(user.User{ID: 8, Email: "beth@example.com"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(8)).Return(membership(1, 8, team.RoleMember), nil)

		_, err := svc.CreateInvitation(7, "acme", team.CreateInvitationDTO{InviteeEmail: "beth@example.com"})
		if !apperrors.IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if err.Error() != apperrors.MsgAlreadyTeamMember {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("a recent pending invitation blocks a duplicate", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewInvitationService(repos, &recordingMailer{})

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
		m.User.EXPECT().GetUserByEmail("new@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
		m.Team.EXPECT().GetTeamForUpdate(uint(1)).Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.Invitation.EXPECT().LatestInvitation(uint(1), "new@example.com").Return(team.Invitation{
			ID:           uuid.New(),
			TeamID:       1,
			InviteeEmail: "new@example.com",
			Status:       team.InvitationPending,
			CreatedAt:    time.Now().Add(-time.Hour),
		}, nil)

		_, err := svc.CreateInvitation(7, "acme", team.CreateInvitationDTO{InviteeEmail: "new@example.com"})
		if !apperrors.IsConflict(err) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("a declined prior invitation does not block", func(t *testing.T) {
		repos, m := newMockRepos(t)
		mail := &recordingMailer{}
		svc := application.NewInvitationService(repos, mail)

		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme", Title: "Acme"}, nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
		m.User.EXPECT().GetUserByEmail("new@example.com").Return(user.User{}, gorm.ErrRecordNotFound)
		m.Team.EXPECT().GetTeamForUpdate(uint(1)).Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.Invitation.EXPECT().LatestInvitation(uint(1), "new@example.com").Return(team.Invitation{
			ID:           uuid.New(),
			TeamID:       1,
			InviteeEmail: "new@example.com",
			Status:       team.InvitationDeclined,
			CreatedAt:    time.Now().Add(-time.Hour),
		}, nil)
		m.Invitation.EXPECT().CreateInvitation(gomock.Any()).Return(nil)
		m.User.EXPECT().GetUserByID(uint(7)).Return(user.User{ID: 7, Username: "alice"}, nil)

		if _, err := svc.CreateInvitation(7, "acme", team.CreateInvitationDTO{InviteeEmail: "new@example.com"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if mail.sent != 1 {
			t.Fatalf("expected an email, got %d", mail.sent)
		}
	})
}

func TestAcceptInvitation(t *testing.T) {
	t.Run("accepting joins the team", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewInvitationService(repos, &recordingMailer{})

		id := uuid.New()
		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.Invitation.EXPECT().GetInvitationByID(id).Return(team.Invitation{
			ID: id, TeamID: 1, InviteeEmail: "beth@example.com", Status: team.InvitationPending,
		}, nil)
		m.User.EXPECT().GetUserByID(uint(8)).Return(user.User{ID: 8, Email: "Beth@Example.com"}, nil)
		m.Invitation.EXPECT().UpdateInvitation(gomock.Any()).Do(func(inv *team.Invitation) {
			if inv.Status != team.InvitationAccepted {
				t.Fatalf("expected accepted, got %q", inv.Status)
			}
			if inv.InviteeID == nil || *inv.InviteeID != 8 {
				t.Fatalf("invitee not linked: %+v", inv.InviteeID)
			}
		}).Return(nil)
		m.TeamMembership.EXPECT().GetMembership(uint(1), uint(8)).Return(team.Membership{}, gorm.ErrRecordNotFound)
		m.TeamMembership.EXPECT().CreateMembership(gomock.Any()).Do(func(ms *team.Membership) {
			if ms.TeamID != 1 || ms.UserID != 8 || ms.Role != team.RoleMember {
				t.Fatalf("unexpected membership: %+v", ms)
			}
		}).Return(nil)

		if err := svc.AcceptInvitation(8, "acme", id.String()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("declining records the outcome without joining", func(t *testing.T) {
		repos, m := newMockRepos(t)
		svc := application.NewInvitationService(repos, &recordingMailer{})

		id := uuid.New()
		m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
		m.Invitation.EXPECT().GetInvitationByID(id).Return(team.Invitation{
			ID: id, TeamID: 1, InviteeEmail: "beth@example.com", Status: team.InvitationPending,
		}, nil)
		m.User.EXPECT().GetUserByID(uint(8)).Return(user.User{ID: 8, Email: "beth@example.com"}, nil)
		m.Invitation.EXPECT().UpdateInvitation(gomock.Any()).Do(func(inv *team.Invitation) {
			if inv.Status != team.InvitationDeclined {
				t.Fatalf("expected declined, got %q", inv.Status)
			}
		}).Return(nil)

		if err := svc.DeclineInvitation(8, "acme", id.String()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("every mismatch reads the same", func(t *testing.T) {
		id := uuid.New()

		cases := []struct {
			name  string
			setup func(m repoMocks)
			idArg string
		}{
			{
				name: "malformed id",
				setup: func(m repoMocks) {
					m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
				},
				idArg: "not-a-uuid",
			},
			{
				name: "unknown id",
				setup: func(m repoMocks) {
					m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
					m.Invitation.EXPECT().GetInvitationByID(id).Return(team.Invitation{}, gorm.ErrRecordNotFound)
				},
				idArg: id.String(),
			},
			{
				name: "wrong team",
				setup: func(m repoMocks) {
					m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
					m.Invitation.EXPECT().GetInvitationByID(id).Return(team.Invitation{
						ID: id, TeamID: 2, InviteeEmail: "beth@example.com", Status: team.InvitationPending,
					}, nil)
				},
				idArg: id.String(),
			},
			{
				name: "already resolved",
				setup: func(m repoMocks) {
					m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
					m.Invitation.EXPECT().GetInvitationByID(id).Return(team.Invitation{
						ID: id, TeamID: 1, InviteeEmail: "beth@example.com", Status: team.InvitationAccepted,
					}, nil)
				},
				idArg: id.String(),
			},
			{
				name: "wrong account",
				setup: func(m repoMocks) {
					m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
					m.Invitation.EXPECT().GetInvitationByID(id).Return(team.Invitation{
						ID: id, TeamID: 1, InviteeEmail: "beth@example.com", Status: team.InvitationPending,
					}, nil)
					m.User.EXPECT().GetUserByID(uint(8)).Return(user.User{ID: 8, Email: "carol@example.com"}, nil)
				},
				idArg: id.String(),
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				repos, m := newMockRepos(t)
				svc := application.NewInvitationService(repos, &recordingMailer{})
				tc.setup(m)

				err := svc.AcceptInvitation(8, "acme", tc.idArg)
				if !apperrors.IsNotFound(err) {
					t.Fatalf("expected not found, got %v", err)
				}
				if err.Error() != apperrors.MsgInvitationNotFound {
					t.Fatalf("unexpected message: %q", err.Error())
				}
			})
		}
	})
}

func TestResendEmail(t *testing.T) {
	repos, m := newMockRepos(t)
	mail := &recordingMailer{}
	svc := application.NewInvitationService(repos, mail)

	id := uuid.New()
	inviter := uint(7)
	m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme", Title: "Acme"}, nil)
	m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
	m.Invitation.EXPECT().GetInvitationByID(id).Return(team.Invitation{
		ID: id, TeamID: 1, InviterID: &inviter, InviteeEmail: "new@example.com", Status: team.InvitationPending,
	}, nil)
	m.User.EXPECT().GetUserByID(uint(7)).Return(user.User{ID: 7, Username: "alice"}, nil)

	if err := svc.ResendEmail(7, "acme", id.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mail.sent != 1 || !mail.resent {
		t.Fatalf("expected one resent email, got sent=%d resent=%v", mail.sent, mail.resent)
	}
	if mail.to != "new@example.com" {
		t.Fatalf("unexpected recipient: %q", mail.to)
	}
}

func TestDeleteInvitation(t *testing.T) {
	repos, m := newMockRepos(t)
	svc := application.NewInvitationService(repos, &recordingMailer{})

	id := uuid.New()
	m.Team.EXPECT().GetTeamBySlug("acme").Return(team.Team{ID: 1, Slug: "acme"}, nil)
	m.TeamMembership.EXPECT().GetMembership(uint(1), uint(7)).Return(membership(1, 7, team.RoleAdmin), nil)
	m.Invitation.EXPECT().GetInvitationByID(id).Return(team.Invitation{
		ID: id, TeamID: 1, InviteeEmail: "new@example.com", Status: team.InvitationPending,
	}, nil)
	m.Invitation.EXPECT().DeleteInvitation(id).Return(nil)

	if err := svc.DeleteInvitation(7, "acme", id.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
