package invoice

import (
	"errors"
	"fmt"

	cargoModel "github.com/MohdFer/cargo-management/models/cargo"
	invoiceModel "github.com/MohdFer/cargo-management/models/invoice"
	"github.com/MohdFer/cargo-management/utils"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

// TaxRate is the flat tax applied to every invoice subtotal.
const TaxRate = 0.18

// Service derives invoices from booking amounts.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateInvoice computes the fixed-rate tax over the given amount and
// stores the invoice against the booking's owning customer.
func (s *Service) CreateInvoice(bookingID uint, amount float64) (*invoiceModel.Invoice, error) {
	var b cargoModel.Booking
	err := s.db.First(&b, bookingID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	inv := invoiceModel.Invoice{
		InvoiceNumber: utils.GenerateInvoiceNumber(),
		BookingID:     b.ID,
		CustomerID:    b.CustomerID,
		Subtotal:      amount,
		TaxAmount:     amount * TaxRate,
		TotalAmount:   amount * (1 + TaxRate),
		PaymentStatus: "unpaid",
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&inv).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create invoice: %w", err)
	}
	return &inv, nil
}

// ListForCustomer returns the invoices of the customer behind the given
// user together with the booking's recipient details, newest first.
func (s *Service) ListForCustomer(userID uint) ([]invoiceModel.Invoice, error) {
	var invoices []invoiceModel.Invoice
	err := s.db.Preload("Booking").
		Joins("JOIN customers ON customers.id = invoices.customer_id").
		Where("customers.user_id = ?", userID).
		Order("invoices.issue_date DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return invoices, nil
}
