package employee

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MohdFer/cargo-management/logger"
	cargoModel "github.com/MohdFer/cargo-management/models/cargo"
	bookingService "github.com/MohdFer/cargo-management/services/booking"
	"github.com/MohdFer/cargo-management/types"
	cargoTypes "github.com/MohdFer/cargo-management/types/cargo"
	"github.com/MohdFer/cargo-management/utils"

	"github.com/gofiber/fiber/v2"
)

// Employees see the most recent bookings on their dashboard.
const dashboardLimit = 50

// EmployeeController handles the employee-facing routes.
type EmployeeController struct {
	Bookings *bookingService.Service
	Logger   *logger.AsyncLogger
}

func NewEmployeeController(bookings *bookingService.Service, asyncLogger *logger.AsyncLogger) *EmployeeController {
	return &EmployeeController{Bookings: bookings, Logger: asyncLogger}
}

// Dashboard lists the latest bookings.
func (ec *EmployeeController) Dashboard(c *fiber.Ctx) error {
	bookings, err := ec.Bookings.ListRecent(dashboardLimit)
	if err != nil {
		logger.Error("Failed to load bookings", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Bookings loaded",
		Status:  fiber.StatusOK,
		Data:    bookings,
	})
}

// ShowStatus returns a booking with its tracking history, newest event
// first.
func (ec *EmployeeController) ShowStatus(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("bookingId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	b, err := ec.Bookings.GetBooking(uint(bookingID))
	if err != nil {
		if errors.Is(err, bookingService.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load booking", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	updates, err := ec.Bookings.TrackingHistory(b.ID)
	if err != nil {
		logger.Error("Failed to load tracking history", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Booking loaded",
		Status:  fiber.StatusOK,
		Data: fiber.Map{
			"booking": b,
			"updates": updates,
		},
	})
}

// UpdateStatus changes a booking's status and appends the tracking event.
func (ec *EmployeeController) UpdateStatus(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("bookingId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req cargoTypes.StatusUpdateRequest
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

	err = ec.Bookings.UpdateStatus(uint(bookingID), cargoModel.Status(req.Status), req.Location, req.Notes)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrBookingNotFound):
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found",
				Status:  fiber.StatusNotFound,
			})
		case errors.Is(err, bookingService.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
				Message: "Unknown booking status",
				Status:  fiber.StatusBadRequest,
			})
		}
		logger.Error("Failed to update status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	ec.Logger.Log(logEntry)

	logger.Success(fmt.Sprintf("Status updated for booking ID: %d", bookingID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Status updated",
		Status:  fiber.StatusOK,
	})
}
