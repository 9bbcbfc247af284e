package team

// CreateTeamDTO carries the only request in which a team title is writable.
type CreateTeamDTO struct {
	Title       string  `json:"title" form:"title" binding:"required,min=1,max=100" example:"Acme"`
	Description *string `json:"description,omitempty" form:"description" example:"The Acme corporation"`
}

// UpdateTeamDTO deliberately has no writable title: the title is write-once.
// Title is still bound so an attempted change can be rejected outright
// instead of silently ignored.
type UpdateTeamDTO struct {
	Title       *string `json:"title,omitempty" form:"title"`
	Description *string `json:"description,omitempty" form:"description"`
}

// MemberActionDTO names the target user of a membership action.
type MemberActionDTO struct {
	User string `json:"user" form:"user" binding:"required" example:"johndoe"`
}

type CreateInvitationDTO struct {
	InviteeEmail string  `json:"invitee_email" form:"invitee_email" binding:"required,email" example:"new@example.com"`
	Message      *string `json:"message,omitempty" form:"message" example:"Come join our team!"`
}

// MembershipView is the membership representation embedded in team payloads.
type MembershipView struct {
	User     string `json:"user" example:"johndoe"`
	Role     Role   `json:"role" example:"admin"`
	RoleName string `json:"role_name" example:"Administrator"`
}

func (m *Membership) View() MembershipView {
	v := MembershipView{Role: m.Role}
	if m.User != nil {
		v.User = m.User.Username
	}
	switch m.Role {
	case RoleAdmin:
		v.RoleName = "Administrator"
	default:
		v.RoleName = "Member"
	}
	return v
}
