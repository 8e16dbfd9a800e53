package employee

import (
	"time"

	"github.com/MohdFer/cargo-management/models/user"
)

// Employee is the role-extension row for users with the employee role,
// one-to-one with User via UserID.
type Employee struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID uint      `gorm:"not null;unique" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	Department  string `gorm:"type:varchar(100)" json:"department"`
	Designation string `gorm:"type:varchar(100)" json:"designation"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
