package report

import (
	"fmt"
	"strings"

	"github.com/MohdFer/cargo-management/constants"
	cargoModel "github.com/MohdFer/cargo-management/models/cargo"
	userModel "github.com/MohdFer/cargo-management/models/user"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

// Counts is the admin dashboard summary. The three counts are independent
// point-in-time reads, not a consistent snapshot.
type Counts struct {
	Customers     int64 `json:"customers"`
	Employees     int64 `json:"employees"`
	Bookings      int64 `json:"bookings"`
	BookingsMonth int64 `json:"bookings_this_month"`
}

// Service produces admin aggregates and the bookings CSV export.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// AggregateCounts returns the dashboard counters.
func (s *Service) AggregateCounts() (*Counts, error) {
	var c Counts

	err := s.db.Model(&userModel.User{}).
		Where("role = ?", constants.RoleCustomer).
		Count(&c.Customers).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	err = s.db.Model(&userModel.User{}).
		Where("role = ?", constants.RoleEmployee).
		Count(&c.Employees).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Model(&cargoModel.Booking{}).Count(&c.Bookings).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	err = s.db.Model(&cargoModel.Booking{}).
		Where("booking_date >= ?", now.BeginningOfMonth()).
		Count(&c.BookingsMonth).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &c, nil
}

// CSVHeader is the fixed first line of the bookings export.
const CSVHeader = "booking_id,tracking_id,sender,recipient,status,booking_date,username"

// ExportBookingsCSV renders one line per booking, newest first. Fields are
// joined with bare commas; free text is not quoted or escaped, matching
// what the report's consumers already parse.
func (s *Service) ExportBookingsCSV() (string, error) {
	var bookings []cargoModel.Booking
	err := s.db.Preload("Customer.User").
		Order("booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return "", fmt.Errorf("database error: %w", err)
	}

	lines := []string{CSVHeader}
	for _, b := range bookings {
		lines = append(lines, strings.Join([]string{
			fmt.Sprintf("%d", b.ID),
			b.TrackingID,
			b.SenderName,
			b.RecipientName,
			b.Status.String(),
			b.BookingDate.Format("2006-01-02 15:04:05"),
			b.Customer.User.Username,
		}, ","))
	}

	return strings.Join(lines, "\n"), nil
}
