package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	cargoModel "github.com/MohdFer/cargo-management/models/cargo"
	customerModel "github.com/MohdFer/cargo-management/models/customer"
	cargoTypes "github.com/MohdFer/cargo-management/types/cargo"
	"github.com/MohdFer/cargo-management/utils"

	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

var (
	ErrProfileNotFound = errors.New("customer profile not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidStatus   = errors.New("unknown booking status")
)

// Expected delivery is quoted five days from the booking day.
const deliveryLeadDays = 5

// trackingIDAttempts bounds the retry loop on a tracking-id collision.
const trackingIDAttempts = 3

// Service owns the booking workflow and its append-only tracking ledger.
type Service struct {
	db *gorm.DB

	// trackingID allocates candidate tracking ids. Overridable in tests to
	// force collisions.
	trackingID func() string
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, trackingID: utils.GenerateTrackingID}
}

// CreateBooking resolves the customer behind the session user, then inserts
// the booking and its initial tracking event in one transaction.
func (s *Service) CreateBooking(userID uint, req cargoTypes.BookingCreateRequest) (*cargoModel.Booking, error) {
	var cust customerModel.Customer
	err := s.db.Where("user_id = ?", userID).First(&cust).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	var created *cargoModel.Booking
	for attempt := 0; attempt < trackingIDAttempts; attempt++ {
		b := cargoModel.Booking{
			TrackingID:           s.trackingID(),
			CustomerID:           cust.ID,
			SenderName:           req.SenderName,
			SenderAddress:        req.SenderAddress,
			SenderPhone:          req.SenderPhone,
			RecipientName:        req.RecipientName,
			RecipientAddress:     req.RecipientAddress,
			RecipientPhone:       req.RecipientPhone,
			CargoDescription:     req.CargoDescription,
			Weight:               req.Weight,
			DeclaredValue:        req.CargoValue,
			TotalAmount:          req.CargoValue,
			Status:               cargoModel.StatusPending,
			BookingDate:          time.Now(),
			ExpectedDeliveryDate: now.BeginningOfDay().AddDate(0, 0, deliveryLeadDays),
		}

		err = s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&b).Error; err != nil {
				return err
			}

			update := cargoModel.TrackingUpdate{
				BookingID: b.ID,
				Status:    cargoModel.StatusPending,
				Location:  "Shipment Booked",
				Notes:     "Shipment created by customer",
			}
			return tx.Create(&update).Error
		})
		if err == nil {
			created = &b
			break
		}
		if !isDuplicateKey(err) {
			return nil, fmt.Errorf("failed to save booking: %w", err)
		}
		// Tracking-id collision: retry with a fresh identifier.
	}
	if created == nil {
		return nil, fmt.Errorf("failed to allocate a unique tracking id: %w", err)
	}

	return created, nil
}

// UpdateStatus changes the booking status and appends the matching tracking
// event in the same transaction. Prior history is never touched.
func (s *Service) UpdateStatus(bookingID uint, status cargoModel.Status, location, notes string) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}

	var b cargoModel.Booking
	if err := s.db.First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&b).Update("status", status).Error; err != nil {
			return err
		}

		update := cargoModel.TrackingUpdate{
			BookingID: b.ID,
			Status:    status,
			Location:  location,
			Notes:     notes,
		}
		return tx.Create(&update).Error
	})
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// GetBooking returns a booking by id.
func (s *Service) GetBooking(bookingID uint) (*cargoModel.Booking, error) {
	var b cargoModel.Booking
	if err := s.db.First(&b, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &b, nil
}

// TrackingHistory returns a booking's tracking events, newest first.
func (s *Service) TrackingHistory(bookingID uint) ([]cargoModel.TrackingUpdate, error) {
	var updates []cargoModel.TrackingUpdate
	err := s.db.Where("booking_id = ?", bookingID).
		Order("created_at DESC").
		Find(&updates).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return updates, nil
}

// ListForCustomer returns the bookings owned by the customer behind the
// given user, newest first.
func (s *Service) ListForCustomer(userID uint) ([]cargoModel.Booking, error) {
	var bookings []cargoModel.Booking
	err := s.db.Joins("JOIN customers ON customers.id = cargo_bookings.customer_id").
		Where("customers.user_id = ?", userID).
		Order("cargo_bookings.booking_date DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return bookings, nil
}

// ListRecent returns the newest bookings up to the given limit. A limit of
// zero means no limit.
func (s *Service) ListRecent(limit int) ([]cargoModel.Booking, error) {
	q := s.db.Preload("Customer.User").Order("booking_date DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var bookings []cargoModel.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return bookings, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Drivers that predate gorm's translated errors surface the constraint
	// name in the message.
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
