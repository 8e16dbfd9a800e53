package user

import (
	"time"
)

// User is the identity record shared by customers, employees and admins.
// Role is immutable after registration and drives route access.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName     string `gorm:"type:varchar(255);not null" json:"full_name"`
	Username     string `gorm:"type:varchar(255);not null;unique" json:"username"`
	Email        string `gorm:"type:varchar(255);not null;unique" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(20);not null" json:"role"`
	Status       string `gorm:"type:varchar(20);not null;default:active" json:"status"`

	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"deleted_at,omitempty"`
}
