package invoice

import (
	"time"

	"github.com/MohdFer/cargo-management/models/cargo"
	"github.com/MohdFer/cargo-management/models/customer"
)

// Invoice is the billing record derived from a booking amount. TaxAmount is
// always 18% of the subtotal and TotalAmount 118% of it.
type Invoice struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	InvoiceNumber string `gorm:"type:varchar(20);not null;unique" json:"invoice_number"`

	BookingID uint          `gorm:"not null;index" json:"booking_id"`
	Booking   cargo.Booking `gorm:"foreignKey:BookingID" json:"booking"`

	CustomerID uint              `gorm:"not null;index" json:"customer_id"`
	Customer   customer.Customer `gorm:"foreignKey:CustomerID" json:"customer"`

	Subtotal      float64 `gorm:"not null" json:"subtotal"`
	TaxAmount     float64 `gorm:"not null" json:"tax_amount"`
	TotalAmount   float64 `gorm:"not null" json:"total_amount"`
	PaymentStatus string  `gorm:"type:varchar(20);not null;default:unpaid" json:"payment_status"`

	IssueDate time.Time `gorm:"autoCreateTime" json:"issue_date"`
}
