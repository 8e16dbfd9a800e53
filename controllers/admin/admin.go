package admin

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/MohdFer/cargo-management/constants"
	"github.com/MohdFer/cargo-management/logger"
	accountService "github.com/MohdFer/cargo-management/services/account"
	bookingService "github.com/MohdFer/cargo-management/services/booking"
	invoiceService "github.com/MohdFer/cargo-management/services/invoice"
	reportService "github.com/MohdFer/cargo-management/services/report"
	"github.com/MohdFer/cargo-management/types"
	cargoTypes "github.com/MohdFer/cargo-management/types/cargo"
	"github.com/MohdFer/cargo-management/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminController handles the admin-facing routes.
type AdminController struct {
	Accounts *accountService.Service
	Bookings *bookingService.Service
	Invoices *invoiceService.Service
	Reports  *reportService.Service
	Logger   *logger.AsyncLogger
}

func NewAdminController(
	accounts *accountService.Service,
	bookings *bookingService.Service,
	invoices *invoiceService.Service,
	reports *reportService.Service,
	asyncLogger *logger.AsyncLogger,
) *AdminController {
	return &AdminController{
		Accounts: accounts,
		Bookings: bookings,
		Invoices: invoices,
		Reports:  reports,
		Logger:   asyncLogger,
	}
}

// Dashboard returns the aggregate counters.
func (ac *AdminController) Dashboard(c *fiber.Ctx) error {
	counts, err := ac.Reports.AggregateCounts()
	if err != nil {
		logger.Error("Failed to load dashboard counts", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Dashboard loaded",
		Status:  fiber.StatusOK,
		Data:    counts,
	})
}

// ManageCustomers lists every customer account.
func (ac *AdminController) ManageCustomers(c *fiber.Ctx) error {
	customers, err := ac.Accounts.ListCustomers()
	if err != nil {
		logger.Error("Failed to load customers", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Customers loaded",
		Status:  fiber.StatusOK,
		Data:    customers,
	})
}

// ViewCustomer returns a single customer user.
func (ac *AdminController) ViewCustomer(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid customer id",
			Status:  fiber.StatusBadRequest,
		})
	}

	u, err := ac.Accounts.GetUser(uint(userID))
	if err != nil {
		if errors.Is(err, accountService.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Customer not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to load customer", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Customer loaded",
		Status:  fiber.StatusOK,
		Data:    u,
	})
}

// EditCustomerForm returns the current editable fields.
func (ac *AdminController) EditCustomerForm(c *fiber.Ctx) error {
	return ac.ViewCustomer(c)
}

// EditCustomer updates a customer's identity fields.
func (ac *AdminController) EditCustomer(c *fiber.Ctx) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid customer id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req types.CustomerEditRequest
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

	if err := ac.Accounts.EditUser(uint(userID), req.FullName, req.Email, req.Status); err != nil {
		if errors.Is(err, accountService.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Customer not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to update customer", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to update customer",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Customer %d updated", userID))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Customer updated successfully!",
		Status:  fiber.StatusOK,
	})
}

// ActivateCustomer sets the account status to Active.
func (ac *AdminController) ActivateCustomer(c *fiber.Ctx) error {
	return ac.setStatus(c, constants.UserStatusActive, "Customer activated")
}

// SuspendCustomer sets the account status to Suspended.
func (ac *AdminController) SuspendCustomer(c *fiber.Ctx) error {
	return ac.setStatus(c, constants.UserStatusSuspended, "Customer suspended")
}

func (ac *AdminController) setStatus(c *fiber.Ctx, status, message string) error {
	userID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid customer id",
			Status:  fiber.StatusBadRequest,
		})
	}

	if err := ac.Accounts.SetUserStatus(uint(userID), status); err != nil {
		if errors.Is(err, accountService.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Customer not found",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to set customer status", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Failed to set customer status",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logger.Success(fmt.Sprintf("Customer %d status set to %s", userID, status))
	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: message,
		Status:  fiber.StatusOK,
	})
}

// ManageEmployees lists every employee account.
func (ac *AdminController) ManageEmployees(c *fiber.Ctx) error {
	employees, err := ac.Accounts.ListEmployees()
	if err != nil {
		logger.Error("Failed to load employees", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Employees loaded",
		Status:  fiber.StatusOK,
		Data:    employees,
	})
}

// ManageCargo lists every booking with its owning user, newest first.
func (ac *AdminController) ManageCargo(c *fiber.Ctx) error {
	bookings, err := ac.Bookings.ListRecent(0)
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

// CreateInvoice derives an invoice from a booking amount.
func (ac *AdminController) CreateInvoice(c *fiber.Ctx) error {
	bookingID, err := strconv.ParseUint(c.Params("bookingId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ApiResponse{
			Message: "Invalid booking id",
			Status:  fiber.StatusBadRequest,
		})
	}

	var req cargoTypes.InvoiceCreateRequest
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

	inv, err := ac.Invoices.CreateInvoice(uint(bookingID), req.Amount)
	if err != nil {
		if errors.Is(err, invoiceService.ErrBookingNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ApiResponse{
				Message: "Booking not found.",
				Status:  fiber.StatusNotFound,
			})
		}
		logger.Error("Failed to create invoice", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Error creating invoice",
			Status:  fiber.StatusInternalServerError,
		})
	}

	logEntry := utils.CreateSanitizedLogEntry(c)
	ac.Logger.Log(logEntry)

	logger.Success("Invoice created: " + inv.InvoiceNumber)
	return c.Status(fiber.StatusCreated).JSON(types.ApiResponse{
		Message: "Invoice created",
		Status:  fiber.StatusCreated,
		Data:    inv,
	})
}

// TrackShipments returns the tracking history for the requested booking.
// GET without a booking id just describes the expected payload.
func (ac *AdminController) TrackShipments(c *fiber.Ctx) error {
	var req cargoTypes.TrackShipmentRequest
	if c.Method() == fiber.MethodPost {
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
	} else {
		id, _ := strconv.ParseUint(c.Query("booking_id"), 10, 64)
		req.BookingID = uint(id)
	}

	if req.BookingID == 0 {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Message: "Submit booking_id to view tracking history",
			Status:  fiber.StatusOK,
		})
	}

	updates, err := ac.Bookings.TrackingHistory(req.BookingID)
	if err != nil {
		logger.Error("Failed to load tracking history", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Message: "Tracking history loaded",
		Status:  fiber.StatusOK,
		Data:    updates,
	})
}

// GenerateReports streams the bookings CSV export.
func (ac *AdminController) GenerateReports(c *fiber.Ctx) error {
	csv, err := ac.Reports.ExportBookingsCSV()
	if err != nil {
		logger.Error("Failed to generate report", err)
		return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
			Message: "Database error",
			Status:  fiber.StatusInternalServerError,
		})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename=bookings_report.csv`)
	return c.Status(fiber.StatusOK).SendString(csv)
}
