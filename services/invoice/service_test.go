package invoice

import (
	"testing"
	"time"

	cargoModel "github.com/MohdFer/cargo-management/models/cargo"
	customerModel "github.com/MohdFer/cargo-management/models/customer"
	invoiceModel "github.com/MohdFer/cargo-management/models/invoice"
	userModel "github.com/MohdFer/cargo-management/models/user"

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
		&invoiceModel.Invoice{},
	)
	require.NoError(t, err)

	return db
}

func seedBooking(t *testing.T, db *gorm.DB, username string) (userModel.User, cargoModel.Booking) {
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

	b := cargoModel.Booking{
		TrackingID:       "TRK" + username,
		CustomerID:       cust.ID,
		SenderName:       "Sender",
		SenderAddress:    "1 Origin Street",
		RecipientName:    "Recipient",
		RecipientAddress: "2 Destination Road",
		Weight:           5,
		DeclaredValue:    100,
		TotalAmount:      100,
		Status:           cargoModel.StatusPending,
		BookingDate:      time.Now(),
	}
	require.NoError(t, db.Create(&b).Error)

	return u, b
}

func TestService_CreateInvoice(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	_, b := seedBooking(t, db, "alice")

	t.Run("computes fixed-rate tax", func(t *testing.T) {
		inv, err := svc.CreateInvoice(b.ID, 100)
		require.NoError(t, err)

		assert.Equal(t, 100.0, inv.Subtotal)
		assert.InDelta(t, 18.0, inv.TaxAmount, 1e-9)
		assert.InDelta(t, 118.0, inv.TotalAmount, 1e-9)
		assert.Equal(t, "unpaid", inv.PaymentStatus)
		assert.Equal(t, b.CustomerID, inv.CustomerID)
		assert.Len(t, inv.InvoiceNumber, 9)
		assert.Equal(t, "INV", inv.InvoiceNumber[:3])
	})

	t.Run("missing booking fails", func(t *testing.T) {
		_, err := svc.CreateInvoice(9999, 100)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestService_ListForCustomer(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)
	u, b := seedBooking(t, db, "alice")
	other, otherBooking := seedBooking(t, db, "bob")

	_, err := svc.CreateInvoice(b.ID, 100)
	require.NoError(t, err)
	_, err = svc.CreateInvoice(otherBooking.ID, 50)
	require.NoError(t, err)

	invoices, err := svc.ListForCustomer(u.ID)
	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, b.ID, invoices[0].BookingID)
	assert.Equal(t, "Recipient", invoices[0].Booking.RecipientName)

	otherInvoices, err := svc.ListForCustomer(other.ID)
	require.NoError(t, err)
	require.Len(t, otherInvoices, 1)
	assert.Equal(t, 50.0, otherInvoices[0].Subtotal)
}
