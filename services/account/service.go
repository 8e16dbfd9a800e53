package account

import (
	"errors"
	"fmt"

	"github.com/MohdFer/cargo-management/constants"
	customerModel "github.com/MohdFer/cargo-management/models/customer"
	employeeModel "github.com/MohdFer/cargo-management/models/employee"
	userModel "github.com/MohdFer/cargo-management/models/user"
	"github.com/MohdFer/cargo-management/utils"

	"gorm.io/gorm"
)

var (
	ErrDuplicateIdentity  = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials or role")
	ErrPasswordMismatch   = errors.New("new passwords do not match")
	ErrUserNotFound       = errors.New("user not found")
)

// Service owns user identity: registration, credential checks and the
// admin-facing customer/employee management operations.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates a User plus the matching role-extension row in one
// transaction. The default role is customer.
func (s *Service) Register(fullname, username, email, password, role string) (*userModel.User, error) {
	if role == "" {
		role = constants.RoleCustomer
	}

	// Duplicate check mirrors the unique constraints so the caller gets a
	// taxonomy error instead of a bare constraint violation.
	var existing userModel.User
	err := s.db.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateIdentity
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("database error: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := userModel.User{
		FullName:     fullname,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Status:       constants.UserStatusDefault,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&newUser).Error; err != nil {
			return err
		}

		switch role {
		case constants.RoleCustomer:
			return tx.Create(&customerModel.Customer{UserID: newUser.ID}).Error
		case constants.RoleEmployee:
			return tx.Create(&employeeModel.Employee{UserID: newUser.ID}).Error
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	return &newUser, nil
}

// Authenticate looks a user up by (username, role) and verifies the
// password. A wrong role fails exactly like a wrong password.
func (s *Service) Authenticate(username, password, role string) (*userModel.User, error) {
	var u userModel.User
	err := s.db.Where("username = ? AND role = ?", username, role).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !utils.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// ChangePassword verifies the current password and stores the new hash.
func (s *Service) ChangePassword(userID uint, current, newPassword, confirm string) error {
	var u userModel.User
	if err := s.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if !utils.CheckPassword(u.PasswordHash, current) {
		return ErrInvalidCredentials
	}
	if newPassword != confirm {
		return ErrPasswordMismatch
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.db.Model(&u).Update("password_hash", hash).Error
}

// GetProfile returns the user row together with its customer extension row
// when one exists.
func (s *Service) GetProfile(userID uint) (*userModel.User, *customerModel.Customer, error) {
	var u userModel.User
	if err := s.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("database error: %w", err)
	}

	var cust customerModel.Customer
	err := s.db.Where("user_id = ?", userID).First(&cust).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &u, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("database error: %w", err)
	}
	return &u, &cust, nil
}

// GetUser returns a single user row by id.
func (s *Service) GetUser(userID uint) (*userModel.User, error) {
	var u userModel.User
	if err := s.db.First(&u, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &u, nil
}

// ListCustomers returns every customer-role user with its extension row.
func (s *Service) ListCustomers() ([]customerModel.Customer, error) {
	var customers []customerModel.Customer
	err := s.db.Preload("User").
		Joins("JOIN users ON users.id = customers.user_id").
		Where("users.role = ?", constants.RoleCustomer).
		Find(&customers).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return customers, nil
}

// ListEmployees returns every employee-role user with its extension row.
func (s *Service) ListEmployees() ([]employeeModel.Employee, error) {
	var employees []employeeModel.Employee
	err := s.db.Preload("User").
		Joins("JOIN users ON users.id = employees.user_id").
		Where("users.role = ?", constants.RoleEmployee).
		Find(&employees).Error
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	return employees, nil
}

// EditUser updates the editable identity fields of a user.
func (s *Service) EditUser(userID uint, fullname, email, status string) error {
	res := s.db.Model(&userModel.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"full_name": fullname,
		"email":     email,
		"status":    status,
	})
	if res.Error != nil {
		return fmt.Errorf("database error: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetUserStatus writes the given status. Repeated calls with the same
// status are idempotent.
func (s *Service) SetUserStatus(userID uint, status string) error {
	res := s.db.Model(&userModel.User{}).Where("id = ?", userID).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("database error: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// Update reports zero rows for both a missing user and an unchanged
		// status; distinguish the two so repeated suspends stay idempotent.
		var count int64
		if err := s.db.Model(&userModel.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if count == 0 {
			return ErrUserNotFound
		}
	}
	return nil
}
