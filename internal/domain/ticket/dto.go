package ticket

// CreateTicketDTO creates a ticket. Developer, when present, is a username
// resolved server side; supplying it requires manager or admin authority.
type CreateTicketDTO struct {
	Title       string    `json:"title" form:"title" binding:"required,min=1,max=100" example:"Login page 500s"`
	Description *string   `json:"description,omitempty" form:"description" example:"Stack trace attached"`
	Priority    *Priority `json:"priority,omitempty" form:"priority" binding:"omitempty,oneof=low high urgent" example:"high"`
	Developer   *string   `json:"developer,omitempty" form:"developer" example:"johndoe"`
}

type UpdateTicketDTO struct {
	Title       *string   `json:"title,omitempty" form:"title"`
	Description *string   `json:"description,omitempty" form:"description"`
	Priority    *Priority `json:"priority,omitempty" form:"priority" binding:"omitempty,oneof=low high urgent"`
	Developer   *string   `json:"developer,omitempty" form:"developer"`
	Resolution  *string   `json:"resolution,omitempty" form:"resolution"`
	IsOpen      *bool     `json:"is_open,omitempty" form:"is_open"`
}

type CreateCommentDTO struct {
	Text string `json:"text" form:"text" example:"Reproduced on staging"`
}

// PermissionsDTO is the payload of get-user-permissions for a ticket.
type PermissionsDTO struct {
	View            bool `json:"view"`
	Edit            bool `json:"edit"`
	Delete          bool `json:"delete"`
	ChangeDeveloper bool `json:"change_developer"`
	Close           bool `json:"close"`
}
