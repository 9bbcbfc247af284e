package project

// CreateProjectDTO creates a project; Manager, when present, is a username
// resolved server side to a user who must already belong to the team.
type CreateProjectDTO struct {
	Title       string  `json:"title" form:"title" binding:"required,min=1,max=100" example:"Website rewrite"`
	Description *string `json:"description,omitempty" form:"description" example:"Rebuild the marketing site"`
	Manager     *string `json:"manager,omitempty" form:"manager" example:"johndoe"`
}

// UpdateProjectDTO updates general fields; Manager is restricted to team
// admins by the policy layer.
type UpdateProjectDTO struct {
	Title       *string `json:"title,omitempty" form:"title"`
	Description *string `json:"description,omitempty" form:"description"`
	IsArchived  *bool   `json:"is_archived,omitempty" form:"is_archived"`
	Manager     *string `json:"manager,omitempty" form:"manager"`
}

// MemberActionDTO names the target user of add-member / remove-member.
type MemberActionDTO struct {
	User string `json:"user" form:"user" binding:"required" example:"johndoe"`
}

// PermissionsDTO is the payload of get-user-permissions for a project.
type PermissionsDTO struct {
	View          bool `json:"view"`
	Edit          bool `json:"edit"`
	UpdateManager bool `json:"update_manager"`
	CreateTickets bool `json:"create_tickets"`
}

// MembershipView is the membership representation embedded in project payloads.
type MembershipView struct {
	User     string `json:"user" example:"johndoe"`
	Role     Role   `json:"role" example:"manager"`
	RoleName string `json:"role_name" example:"Manager"`
}

func (m *Membership) View() MembershipView {
	v := MembershipView{Role: m.Role}
	if m.User != nil {
		v.User = m.User.Username
	}
	switch m.Role {
	case RoleManager:
		v.RoleName = "Manager"
	default:
		v.RoleName = "Developer"
	}
	return v
}
