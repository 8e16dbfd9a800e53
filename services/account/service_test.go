package account

import (
	"testing"

	"github.com/MohdFer/cargo-management/constants"
	customerModel "github.com/MohdFer/cargo-management/models/customer"
	employeeModel "github.com/MohdFer/cargo-management/models/employee"
	userModel "github.com/MohdFer/cargo-management/models/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&userModel.User{}, &customerModel.Customer{}, &employeeModel.Employee{})
	require.NoError(t, err)

	return db
}

func TestService_Register(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	t.Run("customer registration creates user and extension row", func(t *testing.T) {
		u, err := svc.Register("Alice Doe", "alice", "alice@example.com", "secret123", constants.RoleCustomer)
		require.NoError(t, err)
		assert.Equal(t, constants.RoleCustomer, u.Role)
		assert.Equal(t, constants.UserStatusDefault, u.Status)
		assert.NotEqual(t, "secret123", u.PasswordHash)

		var cust customerModel.Customer
		err = db.Where("user_id = ?", u.ID).First(&cust).Error
		require.NoError(t, err)
	})

	t.Run("employee registration creates employee row", func(t *testing.T) {
		u, err := svc.Register("Bob Roe", "bob", "bob@example.com", "secret123", constants.RoleEmployee)
		require.NoError(t, err)

		var emp employeeModel.Employee
		err = db.Where("user_id = ?", u.ID).First(&emp).Error
		require.NoError(t, err)
	})

	t.Run("empty role defaults to customer", func(t *testing.T) {
		u, err := svc.Register("Carol Poe", "carol", "carol@example.com", "secret123", "")
		require.NoError(t, err)
		assert.Equal(t, constants.RoleCustomer, u.Role)
	})

	t.Run("duplicate username fails and creates no rows", func(t *testing.T) {
		var usersBefore, customersBefore int64
		require.NoError(t, db.Model(&userModel.User{}).Count(&usersBefore).Error)
		require.NoError(t, db.Model(&customerModel.Customer{}).Count(&customersBefore).Error)

		_, err := svc.Register("Alice Clone", "alice", "other@example.com", "secret123", constants.RoleCustomer)
		assert.ErrorIs(t, err, ErrDuplicateIdentity)

		var usersAfter, customersAfter int64
		require.NoError(t, db.Model(&userModel.User{}).Count(&usersAfter).Error)
		require.NoError(t, db.Model(&customerModel.Customer{}).Count(&customersAfter).Error)
		assert.Equal(t, usersBefore, usersAfter)
		assert.Equal(t, customersBefore, customersAfter)
	})

	t.Run("duplicate email fails", func(t *testing.T) {
		_, err := svc.Register("Another Alice", "alice2", "alice@example.com", "secret123", constants.RoleCustomer)
		assert.ErrorIs(t, err, ErrDuplicateIdentity)
	})
}

func TestService_Authenticate(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, err := svc.Register("Alice Doe", "alice", "alice@example.com", "secret123", constants.RoleCustomer)
	require.NoError(t, err)

	t.Run("correct credentials and role succeed", func(t *testing.T) {
		u, err := svc.Authenticate("alice", "secret123", constants.RoleCustomer)
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
	})

	t.Run("wrong password fails", func(t *testing.T) {
		_, err := svc.Authenticate("alice", "wrong", constants.RoleCustomer)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("correct password but wrong role fails", func(t *testing.T) {
		_, err := svc.Authenticate("alice", "secret123", constants.RoleEmployee)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown user fails", func(t *testing.T) {
		_, err := svc.Authenticate("nobody", "secret123", constants.RoleCustomer)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_ChangePassword(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	u, err := svc.Register("Alice Doe", "alice", "alice@example.com", "secret123", constants.RoleCustomer)
	require.NoError(t, err)

	t.Run("wrong current password fails", func(t *testing.T) {
		err := svc.ChangePassword(u.ID, "wrong", "newpass123", "newpass123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("mismatched confirmation fails", func(t *testing.T) {
		err := svc.ChangePassword(u.ID, "secret123", "newpass123", "different")
		assert.ErrorIs(t, err, ErrPasswordMismatch)
	})

	t.Run("unknown user fails", func(t *testing.T) {
		err := svc.ChangePassword(9999, "secret123", "newpass123", "newpass123")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("valid change allows login with new password", func(t *testing.T) {
		err := svc.ChangePassword(u.ID, "secret123", "newpass123", "newpass123")
		require.NoError(t, err)

		_, err = svc.Authenticate("alice", "secret123", constants.RoleCustomer)
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Authenticate("alice", "newpass123", constants.RoleCustomer)
		assert.NoError(t, err)
	})
}

func TestService_SetUserStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	u, err := svc.Register("Alice Doe", "alice", "alice@example.com", "secret123", constants.RoleCustomer)
	require.NoError(t, err)

	status := func() string {
		var fresh userModel.User
		require.NoError(t, db.First(&fresh, u.ID).Error)
		return fresh.Status
	}

	t.Run("suspend then activate toggles status", func(t *testing.T) {
		require.NoError(t, svc.SetUserStatus(u.ID, constants.UserStatusSuspended))
		assert.Equal(t, constants.UserStatusSuspended, status())

		require.NoError(t, svc.SetUserStatus(u.ID, constants.UserStatusActive))
		assert.Equal(t, constants.UserStatusActive, status())
	})

	t.Run("repeated suspends are idempotent", func(t *testing.T) {
		require.NoError(t, svc.SetUserStatus(u.ID, constants.UserStatusSuspended))
		require.NoError(t, svc.SetUserStatus(u.ID, constants.UserStatusSuspended))
		assert.Equal(t, constants.UserStatusSuspended, status())
	})

	t.Run("unknown user fails", func(t *testing.T) {
		err := svc.SetUserStatus(9999, constants.UserStatusActive)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_Listings(t *testing.T) {
	db := setupTestDB(t)
	svc := NewService(db)

	_, err := svc.Register("Alice Doe", "alice", "alice@example.com", "secret123", constants.RoleCustomer)
	require.NoError(t, err)
	_, err = svc.Register("Bob Roe", "bob", "bob@example.com", "secret123", constants.RoleEmployee)
	require.NoError(t, err)
	_, err = svc.Register("Root", "root", "root@example.com", "secret123", constants.RoleAdmin)
	require.NoError(t, err)

	customers, err := svc.ListCustomers()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "alice", customers[0].User.Username)

	employees, err := svc.ListEmployees()
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "bob", employees[0].User.Username)
}
