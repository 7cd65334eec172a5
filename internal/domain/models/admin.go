package models

import "time"

// Admin roles
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super-admin"
)

// Admin represents a dashboard administrator account
type Admin struct {
	BaseModel
	Name        string     `gorm:"type:varchar(100);not null" json:"name"`
	Email       string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"` // stored lowercase
	Password    string     `gorm:"type:varchar(100);not null" json:"-"`                 // bcrypt hash, not exposed in JSON
	Role        string     `gorm:"type:varchar(20);default:'admin'" json:"role"`        // Role: admin, super-admin
	LastLoginAt *time.Time `json:"last_login_at"`
}
