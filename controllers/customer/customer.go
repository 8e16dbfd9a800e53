package customer

import (
	"errors"
	"fmt"

	"github.com/MohdFer/cargo-management/logger"
	"github.com/MohdFer/cargo-management/middleware"
	accountService "github.com/MohdFer/cargo-management/services/account"
	bookingService "github.com/MohdFer/cargo-management/services/booking"
	invoiceService "github.com/MohdFer/cargo-management/services/invoice"
	supportService "github.com/MohdFer/cargo-management/services/support"
	"github.com/MohdFer/cargo-management/types"
	cargoTypes "github.com/MohdFer/cargo-management/types/cargo"
	"github.com/MohdFer/cargo-management/utils"

	"github.com/gofiber/fiber/v2"
)

// CustomerController handles the customer-facing routes.
type CustomerController struct {
	Accounts *accountService.Service
	Bookings *bookingService.Service
	Invoices *invoiceService.Service
	Support  *supportService.Service
	Logger   *logger.AsyncLogger
}

func NewCustomerController(
	accounts *accountService.Service,
	bookings *bookingService.Service,
	invoices *invoiceService.Service,
	support *supportService.Service,
	asyncLogger *logger.AsyncLogger,
) *CustomerController {
	return &CustomerController{
		Accounts: accounts,
		Bookings: bookings,
		Invoices: invoices,
		Support:  support,
		Logger:   asyncLogger,
	}
}

// Dashboard lists the customer's shipments, newest first.
func (cc *CustomerController) Dashboard(c *fiber.Ctx) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid session",
			Status:  fiber.StatusUnauthorized,
		})
	}

	shipments, err := cc.Bookings.ListForCustomer(claims.UserID)
	if err != nil {
		logger.Error("Failed to load customer shipments", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Shipments loaded",
		Status:  fiber.StatusOK,
		Data:    shipments,
	})
}

// BookCargoForm describes the booking payload for form-building clients.
func (cc *CustomerController) BookCargoForm(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Submit sender, recipient, cargo description, weight and cargo_value",
		Status:  fiber.StatusOK,
	})
}

// BookCargo creates a booking plus its initial tracking event.
func (cc *CustomerController) BookCargo(c *fiber.Ctx) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid session",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req cargoTypes.BookingCreateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	b, err := cc.Bookings.CreateBooking(claims.UserID, req)
	if err != nil {
		if errors.Is(err, bookingService.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Customer profile not found!",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to book cargo", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Error booking cargo",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	cc.Logger.Log(logEntry)

	logger.Success(fmt.Sprintf("Cargo booked successfully. Tracking ID: %s", b.TrackingID))
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: fmt.Sprintf("Cargo booked successfully! Tracking ID: %s", b.TrackingID),
		Status:  fiber.StatusCreated,
		Data:    b,
	})
}

// ViewInvoices lists the customer's invoices, newest first.
func (cc *CustomerController) ViewInvoices(c *fiber.Ctx) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid session",
			Status:  fiber.StatusUnauthorized,
		})
	}

	invoices, err := cc.Invoices.ListForCustomer(claims.UserID)
	if err != nil {
		logger.Error("Failed to load invoices", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Invoices loaded",
		Status:  fiber.StatusOK,
		Data:    invoices,
	})
}

// SupportTickets lists the customer's support tickets.
func (cc *CustomerController) SupportTickets(c *fiber.Ctx) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid session",
			Status:  fiber.StatusUnauthorized,
		})
	}

	tickets, err := cc.Support.ListForCustomer(claims.UserID)
	if err != nil {
		logger.Error("Failed to load support tickets", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Support tickets loaded",
		Status:  fiber.StatusOK,
		Data:    tickets,
	})
}

// CreateSupportTicket opens a new support ticket.
func (cc *CustomerController) CreateSupportTicket(c *fiber.Ctx) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid session",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req cargoTypes.SupportTicketRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	ticket, err := cc.Support.CreateTicket(claims.UserID, req.Subject, req.Description)
	if err != nil {
		if errors.Is(err, supportService.ErrProfileNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Customer not found.",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to create support ticket", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Error creating ticket",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("Support ticket created: " + ticket.TicketNumber)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Support ticket created",
		Status:  fiber.StatusCreated,
		Data:    ticket,
	})
}

// Profile returns the user row joined with its customer extension.
func (cc *CustomerController) Profile(c *fiber.Ctx) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid session",
			Status:  fiber.StatusUnauthorized,
		})
	}

	u, cust, err := cc.Accounts.GetProfile(claims.UserID)
	if err != nil {
		logger.Error("Failed to load profile", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Profile loaded",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"user":     u,
			"customer": cust,
		},
	})
}

// ChangePassword verifies the current password and stores the new one.
func (cc *CustomerController) ChangePassword(c *fiber.Ctx) error {
	claims, ok := middleware.SessionFromContext(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
			Message: "Invalid session",
			Status:  fiber.StatusUnauthorized,
		})
	}

	var req types.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse request body", err)
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid request body",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: err.Error(),
			Status:  fiber.StatusBadRequest,
		})
	}

	err := cc.Accounts.ChangePassword(claims.UserID, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		switch {
		case errors.Is(err, accountService.ErrInvalidCredentials):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Current password is incorrect",
				Status:  fiber.StatusBadRequest,
			})
		case errors.Is(err, accountService.ErrPasswordMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "New passwords do not match",
				Status:  fiber.StatusBadRequest,
			})
		case errors.Is(err, accountService.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "User not found!",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to change password", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to change password",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success("Password updated for user: " + claims.Username)
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Password updated successfully!",
		Status:  fiber.StatusOK,
	})
}
