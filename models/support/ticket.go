package support

import (
	"time"

	"github.com/MohdFer/cargo-management/models/customer"
)

// Ticket is a customer support request.
type Ticket struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	TicketNumber string `gorm:"type:varchar(20);not null;unique" json:"ticket_number"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	Subject     string `gorm:"type:varchar(255);not null" json:"subject"`
	Description string `gorm:"type:text" json:"description"`
	Status      string `gorm:"type:varchar(20);not null;default:open" json:"status"`
	Category    string `gorm:"type:varchar(50);not null" json:"category"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Ticket model.
func (Ticket) TableName() string {
	return "support_tickets"
}
