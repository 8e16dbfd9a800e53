package types

import (
	"fmt"

	"github.com/MohdFer/cargo-management/constants"
)

type RegisterRequest struct {
	FullName string `json:"fullname" form:"fullname" validate:"required,min=1,max=255"`
	Username string `json:"username" form:"username" validate:"required,min=1,max=255"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,min=6"`
	Role     string `json:"role" form:"role" validate:"omitempty,oneof=customer employee admin"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
	Role     string `json:"role" form:"userType" validate:"required,oneof=customer employee admin"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" form:"current-password" validate:"required"`
	NewPassword     string `json:"new_password" form:"new-password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" form:"confirm-password" validate:"required"`
}

type CustomerEditRequest struct {
	FullName string `json:"fullname" form:"fullname" validate:"required,min=1,max=255"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Status   string `json:"status" form:"status" validate:"required"`
}

func (r RegisterRequest) Validate() error {
	if r.FullName == "" {
		return fmt.Errorf("fullname is required")
	}
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if r.Role != "" && !constants.ValidRole(r.Role) {
		return fmt.Errorf("role must be one of customer, employee or admin")
	}
	return nil
}

func (r LoginRequest) Validate() error {
	if r.Username == "" {
		return fmt.Errorf("username is required")
	}
	if r.Password == "" {
		return fmt.Errorf("password is required")
	}
	if !constants.ValidRole(r.Role) {
		return fmt.Errorf("role must be one of customer, employee or admin")
	}
	return nil
}

func (r ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" {
		return fmt.Errorf("current password is required")
	}
	if r.NewPassword == "" {
		return fmt.Errorf("new password is required")
	}
	if r.ConfirmPassword == "" {
		return fmt.Errorf("confirm password is required")
	}
	return nil
}

func (r CustomerEditRequest) Validate() error {
	if r.FullName == "" {
		return fmt.Errorf("fullname is required")
	}
	if r.Email == "" {
		return fmt.Errorf("email is required")
	}
	if r.Status == "" {
		return fmt.Errorf("status is required")
	}
	return nil
}
