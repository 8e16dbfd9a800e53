package cargo

import (
	"time"

	"github.com/MohdFer/cargo-management/models/customer"
)

// Booking represents one cargo shipment owned by a customer. TrackingID is
// the human-facing identifier, distinct from the primary key.
type Booking struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	TrackingID string `gorm:"type:varchar(20);not null;unique" json:"tracking_id"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	SenderName       string `gorm:"type:varchar(255);not null" json:"sender_name"`
	SenderAddress    string `gorm:"type:text;not null" json:"sender_address"`
	SenderPhone      string `gorm:"type:varchar(20)" json:"sender_phone"`
	RecipientName    string `gorm:"type:varchar(255);not null" json:"recipient_name"`
	RecipientAddress string `gorm:"type:text;not null" json:"recipient_address"`
	RecipientPhone   string `gorm:"type:varchar(20)" json:"recipient_phone"`

	CargoDescription string  `gorm:"type:text" json:"cargo_description"`
	Weight           float64 `gorm:"not null" json:"weight"`
	DeclaredValue    float64 `gorm:"not null" json:"declared_value"`
	TotalAmount      float64 `gorm:"not null" json:"total_amount"`

	Status               Status    `gorm:"type:varchar(50);not null" json:"status"`
	BookingDate          time.Time `gorm:"autoCreateTime;index" json:"booking_date"`
	ExpectedDeliveryDate time.Time `json:"expected_delivery_date"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name for the Booking model.
func (Booking) TableName() string {
	return "cargo_bookings"
}
