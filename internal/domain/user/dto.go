package user

type RegisterInput struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileInput struct {
	Name  *string `json:"name" binding:"omitempty,min=2,max=100"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type ChangePasswordInput struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type UserDTO struct {
	UID            uint   `json:"u_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	IsVerified     bool   `json:"is_verified"`
	FinancialScore *int   `json:"financial_score,omitempty"`
	CreatedAt      string `json:"created_at"`
}

func ToDTO(u *User) UserDTO {
	return UserDTO{
		UID:            u.UID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		IsVerified:     u.IsVerified,
		FinancialScore: u.FinancialScore,
		CreatedAt:      u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
