package user

type RegisterDTO struct {
	Username string `json:"username" form:"username" binding:"required,min=3,max=150" example:"johndoe"`
	Email    string `json:"email" form:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" form:"password" binding:"required,min=8" example:"password123"`
}

type LoginDTO struct {
	Username string `json:"username" form:"username" binding:"required" example:"johndoe"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}

// Public is the user representation exposed to other members.
type Public struct {
	ID       uint   `json:"id" example:"123"`
	Username string `json:"username" example:"johndoe"`
	Email    string `json:"email" example:"user@example.com"`
}

func (u *User) Public() Public {
	return Public{ID: u.ID, Username: u.Username, Email: u.Email}
}
