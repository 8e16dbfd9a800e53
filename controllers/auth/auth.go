package auth

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/MohdFer/cargo-management/logger"
	"github.com/MohdFer/cargo-management/middleware"
	accountService "github.com/MohdFer/cargo-management/services/account"
	"github.com/MohdFer/cargo-management/types"
	"github.com/MohdFer/cargo-management/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Accounts *accountService.Service
	Logger   *logger.AsyncLogger
}

func NewAuthController(accounts *accountService.Service, asyncLogger *logger.AsyncLogger) *AuthController {
	return &AuthController{Accounts: accounts, Logger: asyncLogger}
}

// Helper function to set secure cookies based on environment
func (h *AuthController) setSecureCookie(c *fiber.Ctx, name, value string, maxAge int) {
	isProduction := os.Getenv("APP_ENV") == "production"

	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   isProduction,
		SameSite: "Strict",
		MaxAge:   maxAge,
		Path:     "/",
	})
}

// SignupForm describes the registration payload for form-building clients.
func (h *AuthController) SignupForm(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Submit fullname, username, email, password and optional role",
		Status:  fiber.StatusOK,
	})
}

// Signup registers a new account with the default customer role.
func (h *AuthController) Signup(c *fiber.Ctx) error {
	var req types.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error("Invalid signup request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	newUser, err := h.Accounts.Register(req.FullName, req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, accountService.ErrDuplicateIdentity) {
			return c.Status(fiber.StatusConflict).JSON(types.ApiResponse{
				Message: "Username already exists or email already registered",
				Status:  fiber.StatusConflict,
			})
		}
		logger.Error("Failed to register user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to register user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.Logger.Log(logEntry)

	logger.Success("User registered successfully. Username: " + newUser.Username)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Registration successful. Please login.",
		Status:  fiber.StatusCreated,
		Data:    newUser,
	})
}

// LoginForm describes the login payload for form-building clients.
func (h *AuthController) LoginForm(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Submit username, password and userType",
		Status:  fiber.StatusOK,
	})
}

// Login verifies credentials against the (username, role) pair and
// establishes the session cookie.
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Error parsing request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: fmt.Sprintf("Error parsing request body: %v", err),
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		logger.Error("Invalid login request", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	u, err := h.Accounts.Authenticate(req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, accountService.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Message: "Invalid credentials or role",
				Status:  fiber.StatusUnauthorized,
			})
		}
		logger.Error("Failed to login user", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to login user",
			Status:  fiber.StatusInternalServerError,
		})
	}

	token, err := middleware.SignSession(u.ID, u.Username, u.Role)
	if err != nil {
		logger.Error("Failed to sign session token", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to establish session",
			Status:  fiber.StatusInternalServerError,
		})
	}

	h.setSecureCookie(c, "access", token, 8*60*60) // 8 hours

	logEntry := utils.CreateSanitizedLogEntry(c)
	h.Logger.Log(logEntry)

	currentTime := time.Now().Format("2006-01-02 03:04:05 PM")
	logger.Success("User logged in successfully. Username: " + u.Username + " at " + currentTime)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logged in successfully",
		Status:  fiber.StatusOK,
		Token:   token,
		Data: fiber.Map{
			"user_id":  u.ID,
			"username": u.Username,
			"role":     u.Role,
		},
	})
}

// Logout clears the session cookie.
func (h *AuthController) Logout(c *fiber.Ctx) error {
	h.setSecureCookie(c, "access", "", -1) // Expire immediately

	logger.Success("Logout successful")
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Logged out",
		Status:  fiber.StatusOK,
	})
}
