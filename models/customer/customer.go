package customer

import (
	"time"

	"github.com/MohdFer/cargo-management/models/user"
)

// Customer is the role-extension row for users with the customer role,
// one-to-one with User via UserID.
type Customer struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	UserID uint      `gorm:"not null;unique" json:"user_id"`
	User   user.User `gorm:"foreignKey:UserID" json:"user"`

	Phone   string `gorm:"type:varchar(20)" json:"phone"`
	Address string `gorm:"type:text" json:"address"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
