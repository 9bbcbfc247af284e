package application

// The authorization policy for the whole API lives in this one table.
// Handlers and services never test roles ad hoc; they resolve the actor's
// Scope against an entity and ask the table. Keeping every rule in one
// place is what prevents the model layer and the request layer from
// drifting apart on who may do what.

// Entity names a policy subject.
type Entity string

const (
	EntityTeam       Entity = "team"
	EntityProject    Entity = "project"
	EntityTicket     Entity = "ticket"
	EntityInvitation Entity = "invitation"
	EntityComment    Entity = "comment"
)

// Action names an operation on an entity.
type Action string

const (
	ActionView            Action = "view"
	ActionEdit            Action = "edit"
	ActionDelete          Action = "delete"
	ActionManageMembers   Action = "manage_members"
	ActionManageRoles     Action = "manage_roles"
	ActionChangeManager   Action = "change_manager"
	ActionChangeDeveloper Action = "change_developer"
	ActionCreateTickets   Action = "create_tickets"
	ActionClose           Action = "close"
	ActionComment         Action = "comment"
)

// Scope is the actor's resolved standing relative to one entity. Every
// field is scoped: TeamAdmin means admin of *this* entity's team, never
// of some other team the actor happens to administer.
type Scope struct {
	TeamMember      bool
	TeamAdmin       bool
	ProjectMember   bool
	ProjectManager  bool
	TicketSubmitter bool
	TicketDeveloper bool
}

type predicate func(Scope) bool

var policy = map[Entity]map[Action]predicate{
	EntityTeam: {
		ActionView:          func(s Scope) bool { return s.TeamMember },
		ActionEdit:          func(s Scope) bool { return s.TeamAdmin },
		ActionDelete:        func(Scope) bool { return false },
		ActionManageMembers: func(s Scope) bool { return s.TeamAdmin },
		ActionManageRoles:   func(s Scope) bool { return s.TeamAdmin },
	},
	EntityProject: {
		ActionView:          func(s Scope) bool { return s.ProjectMember || s.TeamAdmin },
		ActionEdit:          func(s Scope) bool { return s.ProjectManager || s.TeamAdmin },
		ActionDelete:        func(s Scope) bool { return s.ProjectManager || s.TeamAdmin },
		ActionChangeManager: func(s Scope) bool { return s.TeamAdmin },
		ActionManageMembers: func(s Scope) bool { return s.ProjectManager || s.TeamAdmin },
		ActionCreateTickets: func(s Scope) bool { return s.ProjectMember || s.TeamAdmin },
	},
	EntityTicket: {
		ActionView: func(s Scope) bool {
			return s.ProjectMember || s.TeamAdmin || s.TicketSubmitter || s.TicketDeveloper
		},
		ActionEdit: func(s Scope) bool {
			return s.TicketDeveloper || s.ProjectManager || s.TeamAdmin || s.TicketSubmitter
		},
		ActionDelete:          func(s Scope) bool { return s.ProjectManager || s.TeamAdmin },
		ActionChangeDeveloper: func(s Scope) bool { return s.ProjectManager || s.TeamAdmin },
		ActionClose: func(s Scope) bool {
			return s.TicketDeveloper || s.ProjectManager || s.TeamAdmin
		},
	},
	EntityInvitation: {
		ActionView:   func(s Scope) bool { return s.TeamAdmin },
		ActionEdit:   func(Scope) bool { return false },
		ActionDelete: func(s Scope) bool { return s.TeamAdmin },
	},
	EntityComment: {
		// Commenting requires view on the parent ticket.
		ActionComment: func(s Scope) bool {
			return s.ProjectMember || s.TeamAdmin || s.TicketSubmitter || s.TicketDeveloper
		},
	},
}

// Allowed consults the policy table. Unknown (entity, action) pairs deny.
func Allowed(e Entity, a Action, s Scope) bool {
	actions, ok := policy[e]
	if !ok {
		return false
	}
	pred, ok := actions[a]
	if !ok {
		return false
	}
	return pred(s)
}
