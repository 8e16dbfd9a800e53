package support

import (
	"errors"
	"fmt"

	customerModel "github.com/MohdFer/cargo-management/models/customer"
	supportModel "github.com/MohdFer/cargo-management/models/support"
	"github.com/MohdFer/cargo-management/utils"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("customer profile not found")

// DefaultCategory is assigned to every ticket; there is no categorization
// flow beyond it.
const DefaultCategory = "general_inquiry"

// Service owns customer support tickets.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// CreateTicket opens a ticket for the customer behind the given user.
func (s *Service) CreateTicket(userID uint, subject, description string) (*supportModel.Ticket, error) {
	var cust customerModel.Customer
	err := s.db.Where("user_id = ?", userID).First(&cust).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	ticket := supportModel.Ticket{
		TicketNumber: utils.GenerateTicketNumber(),
		CustomerID:   cust.ID,
		Subject:      subject,
		Description:  description,
		Status:       "open",
		Category:     DefaultCategory,
	}
	if err := s.db.Create(&ticket).Error; err != nil {
		return nil, fmt.Errorf("failed to create ticket: %w", err)
	}
	return &ticket, nil
}

// ListForCustomer returns the tickets of the customer behind the given
// user, newest first.
func (s *Service) ListForCustomer(userID uint) ([]supportModel.Ticket, error) {
	var tickets []supportModel.Ticket
	err := s.db.Joins("JOIN customers ON customers.id = support_tickets.customer_id").
		Where("customers.user_id = ?", userID).
		Order("support_tickets.created_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return tickets, nil
}
