package database

import (
	"fmt"
	"os"

	"github.com/MohdFer/cargo-management/logger"
	"github.com/MohdFer/cargo-management/models/cargo"
	"github.com/MohdFer/cargo-management/models/customer"
	"github.com/MohdFer/cargo-management/models/employee"
	"github.com/MohdFer/cargo-management/models/invoice"
	"github.com/MohdFer/cargo-management/models/log"
	"github.com/MohdFer/cargo-management/models/support"
	"github.com/MohdFer/cargo-management/models/user"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection with auto migration and indexing
func InitDB() (*gorm.DB, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	dbUser := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, dbUser, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	if err := createIndexes(); err != nil {
		logger.Error("Failed to create indexes", err)
		return nil, err
	}
	logger.Success("All indexes created successfully")

	return DB, nil
}

// autoMigrate runs auto migration for all models in dependency order
func autoMigrate() error {
	// Stage 1: core identity models
	stage1Models := []interface{}{
		&user.User{},
		&customer.Customer{},
		&employee.Employee{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models owned by customers
	stage2Models := []interface{}{
		&cargo.Booking{},
		&cargo.TrackingUpdate{},
		&invoice.Invoice{},
		&support.Ticket{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: remaining models
	remainingModels := []interface{}{
		&log.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}

// createIndexes creates additional indexes for better performance
func createIndexes() error {
	// User indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)").Error; err != nil {
		return fmt.Errorf("failed to create user username index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)").Error; err != nil {
		return fmt.Errorf("failed to create user email index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_users_role ON users(role)").Error; err != nil {
		return fmt.Errorf("failed to create user role index: %w", err)
	}

	// Booking indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_cargo_bookings_tracking_id ON cargo_bookings(tracking_id)").Error; err != nil {
		return fmt.Errorf("failed to create booking tracking_id index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_cargo_bookings_status ON cargo_bookings(status)").Error; err != nil {
		return fmt.Errorf("failed to create booking status index: %w", err)
	}
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_cargo_bookings_booking_date ON cargo_bookings(booking_date)").Error; err != nil {
		return fmt.Errorf("failed to create booking booking_date index: %w", err)
	}

	// Tracking update indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_tracking_updates_created_at ON tracking_updates(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create tracking_update created_at index: %w", err)
	}

	// Invoice indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_invoices_issue_date ON invoices(issue_date)").Error; err != nil {
		return fmt.Errorf("failed to create invoice issue_date index: %w", err)
	}

	// Log indexes
	if err := DB.Exec("CREATE INDEX IF NOT EXISTS idx_logs_created_at ON logs(created_at)").Error; err != nil {
		return fmt.Errorf("failed to create log created_at index: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}
