package booking

import (
	"errors"
	"regexp"
	"testing"
	"time"

	cargoModel "github.com/MohdFer/cargo-management/models/cargo"
	customerModel "github.com/MohdFer/cargo-management/models/customer"
	userModel "github.com/MohdFer/cargo-management/models/user"
	cargoTypes "github.com/MohdFer/cargo-management/types/cargo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&userModel.User{},
		&customerModel.Customer{},
		&cargoModel.Booking{},
		&cargoModel.TrackingUpdate{},
	)
	require.NoError(t, err)

	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, username string) (userModel.User, customerModel.Customer) {
	u := userModel.User{
		FullName:     "Test " + username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         "customer",
		Status:       "active",
	}
	require.NoError(t, db.Create(&u).Error)

	cust := customerModel.Customer{UserID: u.ID}
	require.NoError(t, db.Create(&cust).Error)

	return u, cust
}

func bookingRequest() cargoTypes.BookingCreateRequest {
	return cargoTypes.BookingCreateRequest{
		SenderName:       "Sender One",
		SenderAddress:    "1 Origin Street",
		SenderPhone:      "01700000001",
		RecipientName:    "Recipient One",
		RecipientAddress: "2 Destination Road",
		RecipientPhone:   "01700000002",
		CargoDescription: "Electronics",
		Weight:           12.5,
		CargoValue:       2500,
	}
}

func TestService_CreateBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	u, cust := seedCustomer(t, db, "alice")

	t.Run("creates booking with initial tracking event", func(t *testing.T) {
		b, err := svc.CreateBooking(u.ID, bookingRequest())
		require.NoError(t, err)

		assert.Equal(t, cust.ID, b.CustomerID)
		assert.Equal(t, cargoModel.StatusPending, b.Status)
		assert.Equal(t, 2500.0, b.DeclaredValue)
		assert.Equal(t, 2500.0, b.TotalAmount)
		assert.Regexp(t, regexp.MustCompile(`^TRK\d{8}$`), b.TrackingID)

		expected := time.Now().AddDate(0, 0, deliveryLeadDays)
		assert.WithinDuration(t, expected, b.ExpectedDeliveryDate, 24*time.Hour)

		var bookings []cargoModel.Booking
		require.NoError(t, db.Find(&bookings).Error)
		require.Len(t, bookings, 1)

		var updates []cargoModel.TrackingUpdate
		require.NoError(t, db.Where("booking_id = ?", b.ID).Find(&updates).Error)
		require.Len(t, updates, 1)
		assert.Equal(t, cargoModel.StatusPending, updates[0].Status)
		assert.Equal(t, "Shipment Booked", updates[0].Location)
		assert.Equal(t, "Shipment created by customer", updates[0].Notes)
	})

	t.Run("missing customer profile fails", func(t *testing.T) {
		_, err := svc.CreateBooking(9999, bookingRequest())
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("booking rolls back when tracking insert fails", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewService(db)
		u, _ := seedCustomer(t, db, "bob")

		// Force the second insert of the transaction to fail.
		require.NoError(t, db.Migrator().DropTable(&cargoModel.TrackingUpdate{}))

		_, err := svc.CreateBooking(u.ID, bookingRequest())
		require.Error(t, err)

		var count int64
		require.NoError(t, db.Model(&cargoModel.Booking{}).Count(&count).Error)
		assert.Equal(t, int64(0), count)
	})
}

func TestService_TrackingIDCollision(t *testing.T) {
	t.Run("retries with a fresh id on collision", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewService(db)
		u, _ := seedCustomer(t, db, "alice")

		taken, err := svc.CreateBooking(u.ID, bookingRequest())
		require.NoError(t, err)

		// First candidate collides with the existing booking, second is free.
		ids := []string{taken.TrackingID, "TRK99999999"}
		svc.trackingID = func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		}

		b, err := svc.CreateBooking(u.ID, bookingRequest())
		require.NoError(t, err)
		assert.Equal(t, "TRK99999999", b.TrackingID)

		var count int64
		require.NoError(t, db.Model(&cargoModel.Booking{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("gives up after exhausting all attempts", func(t *testing.T) {
		db := setupTestDB(t)
		svc := NewService(db)
		u, _ := seedCustomer(t, db, "bob")

		taken, err := svc.CreateBooking(u.ID, bookingRequest())
		require.NoError(t, err)

		calls := 0
		svc.trackingID = func() string {
			calls++
			return taken.TrackingID
		}

		_, err = svc.CreateBooking(u.ID, bookingRequest())
		require.Error(t, err)
		assert.ErrorContains(t, err, "failed to allocate a unique tracking id")
		assert.Equal(t, trackingIDAttempts, calls)

		// Only the original booking survives.
		var count int64
		require.NoError(t, db.Model(&cargoModel.Booking{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestIsDuplicateKey(t *testing.T) {
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(errors.New(`duplicate key value violates unique constraint "idx_cargo_bookings_tracking_id"`)))
	assert.True(t, isDuplicateKey(errors.New("UNIQUE constraint failed: cargo_bookings.tracking_id")))
	assert.False(t, isDuplicateKey(errors.New("connection refused")))
	assert.False(t, isDuplicateKey(gorm.ErrRecordNotFound))
}

func TestService_UpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	u, _ := seedCustomer(t, db, "alice")

	b, err := svc.CreateBooking(u.ID, bookingRequest())
	require.NoError(t, err)

	t.Run("appends event and changes booking status", func(t *testing.T) {
		err := svc.UpdateStatus(b.ID, cargoModel.StatusInTransit, "Hub A", "Departed origin facility")
		require.NoError(t, err)

		fresh, err := svc.GetBooking(b.ID)
		require.NoError(t, err)
		assert.Equal(t, cargoModel.StatusInTransit, fresh.Status)

		updates, err := svc.TrackingHistory(b.ID)
		require.NoError(t, err)
		require.Len(t, updates, 2)
		assert.Equal(t, cargoModel.StatusInTransit, updates[0].Status)
		assert.Equal(t, "Hub A", updates[0].Location)
		// Prior history stays intact.
		assert.Equal(t, cargoModel.StatusPending, updates[1].Status)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		err := svc.UpdateStatus(b.ID, cargoModel.Status("teleported"), "Hub B", "")
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("missing booking fails", func(t *testing.T) {
		err := svc.UpdateStatus(9999, cargoModel.StatusDelivered, "Hub B", "")
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_Listings(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	u1, _ := seedCustomer(t, db, "alice")
	u2, _ := seedCustomer(t, db, "bob")

	first, err := svc.CreateBooking(u1.ID, bookingRequest())
	require.NoError(t, err)
	second, err := svc.CreateBooking(u1.ID, bookingRequest())
	require.NoError(t, err)
	_, err = svc.CreateBooking(u2.ID, bookingRequest())
	require.NoError(t, err)

	// Separate the booking dates so the ordering is deterministic.
	require.NoError(t, db.Model(&cargoModel.Booking{}).Where("id = ?", first.ID).
		Update("booking_date", time.Now().Add(-time.Hour)).Error)

	t.Run("customer listing is scoped and newest first", func(t *testing.T) {
		bookings, err := svc.ListForCustomer(u1.ID)
		require.NoError(t, err)
		require.Len(t, bookings, 2)
		assert.Equal(t, second.ID, bookings[0].ID)
		assert.Equal(t, first.ID, bookings[1].ID)
	})

	t.Run("recent listing honors the limit", func(t *testing.T) {
		bookings, err := svc.ListRecent(2)
		require.NoError(t, err)
		assert.Len(t, bookings, 2)

		all, err := svc.ListRecent(0)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}
