package application_test

import (
	"testing"

	"github.com/slmontgomery/bugtracking/internal/application"
)

func TestPolicyTable(t *testing.T) {
	admin := application.Scope{TeamMember: true, TeamAdmin: true}
	member := application.Scope{TeamMember: true}
	projectMember := application.Scope{TeamMember: true, ProjectMember: true}
	manager := application.Scope{TeamMember: true, ProjectMember: true, ProjectManager: true}
	submitter := application.Scope{TeamMember: true, TicketSubmitter: true}
	developer := application.Scope{TeamMember: true, ProjectMember: true, TicketDeveloper: true}

	cases := []struct {
		name   string
		entity application.Entity
		action application.Action
		scope  application.Scope
		want   bool
	}{
		{"members view their team", application.EntityTeam, application.ActionView, member, true},
		{"outsiders do not", application.EntityTeam, application.ActionView, application.Scope{}, false},
		{"only admins edit the team", application.EntityTeam, application.ActionEdit, member, false},
		{"admins edit the team", application.EntityTeam, application.ActionEdit, admin, true},
		{"nobody deletes a team", application.EntityTeam, application.ActionDelete, admin, false},

		{"admins see projects they never joined", application.EntityProject, application.ActionView, admin, true},
		{"team members do not", application.EntityProject, application.ActionView, member, false},
		{"managers edit their project", application.EntityProject, application.ActionEdit, manager, true},
		{"plain project members do not", application.EntityProject, application.ActionEdit, projectMember, false},
		{"manager reassignment is admin only", application.EntityProject, application.ActionChangeManager, manager, false},
		{"admins reassign the manager", application.EntityProject, application.ActionChangeManager, admin, true},
		{"project members file tickets", application.EntityProject, application.ActionCreateTickets, projectMember, true},

		{"submitters view their ticket from outside the project", application.EntityTicket, application.ActionView, submitter, true},
		{"submitters edit their ticket", application.EntityTicket, application.ActionEdit, submitter, true},
		{"submitters cannot close", application.EntityTicket, application.ActionClose, submitter, false},
		{"the assigned developer closes", application.EntityTicket, application.ActionClose, developer, true},
		{"developers do not reassign", application.EntityTicket, application.ActionChangeDeveloper, developer, false},
		{"managers reassign the developer", application.EntityTicket, application.ActionChangeDeveloper, manager, true},
		{"ticket deletion is manager or admin", application.EntityTicket, application.ActionDelete, developer, false},
		{"managers delete tickets", application.EntityTicket, application.ActionDelete, manager, true},

		{"invitations are admin only", application.EntityInvitation, application.ActionView, member, false},
		{"admins manage invitations", application.EntityInvitation, application.ActionView, admin, true},
		{"invitations are never edited", application.EntityInvitation, application.ActionEdit, admin, false},

		{"viewers comment", application.EntityComment, application.ActionComment, submitter, true},
		{"non-viewers do not", application.EntityComment, application.ActionComment, member, false},

		{"unknown pairs deny", application.EntityComment, application.ActionDelete, admin, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := application.Allowed(tc.entity, tc.action, tc.scope); got != tc.want {
				t.Fatalf("Allowed(%s, %s) = %v, want %v", tc.entity, tc.action, got, tc.want)
			}
		})
	}
}
