package user

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an applicant or admin account. FinancialScore is the running
// 0-100 reputation number updated by credit evaluations; nil means the
// user has never been evaluated.
type User struct {
	UID            uint      `gorm:"primaryKey;column:u_id" json:"u_id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Email          string    `gorm:"size:100;not null;unique" json:"email"`
	Password       string    `gorm:"size:255;not null" json:"-"`
	Role           string    `gorm:"size:20;default:'user';not null" json:"role"`
	IsVerified     bool      `gorm:"default:true" json:"is_verified"`
	FinancialScore *int      `gorm:"column:financial_score" json:"financial_score,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}
