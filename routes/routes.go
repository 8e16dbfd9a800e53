package routes

import (
	"github.com/MohdFer/cargo-management/constants"
	adminController "github.com/MohdFer/cargo-management/controllers/admin"
	authController "github.com/MohdFer/cargo-management/controllers/auth"
	customerController "github.com/MohdFer/cargo-management/controllers/customer"
	employeeController "github.com/MohdFer/cargo-management/controllers/employee"
	"github.com/MohdFer/cargo-management/logger"
	"github.com/MohdFer/cargo-management/middleware"
	accountService "github.com/MohdFer/cargo-management/services/account"
	bookingService "github.com/MohdFer/cargo-management/services/booking"
	invoiceService "github.com/MohdFer/cargo-management/services/invoice"
	reportService "github.com/MohdFer/cargo-management/services/report"
	supportService "github.com/MohdFer/cargo-management/services/support"
	"github.com/MohdFer/cargo-management/types"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)

	accounts := accountService.NewService(db)
	bookings := bookingService.NewService(db)
	invoices := invoiceService.NewService(db)
	support := supportService.NewService(db)
	reports := reportService.NewService(db)

	auth := authController.NewAuthController(accounts, asyncLogger)
	customer := customerController.NewCustomerController(accounts, bookings, invoices, support, asyncLogger)
	employee := employeeController.NewEmployeeController(bookings, asyncLogger)
	admin := adminController.NewAdminController(accounts, bookings, invoices, reports, asyncLogger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	// Index route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
			Message: "Cargo management service",
			Status:  fiber.StatusOK,
		})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	app.Get("/signup", auth.SignupForm)
	app.Post("/signup", auth.Signup)
	app.Get("/login", auth.LoginForm)
	app.Post("/login", auth.Login)
	app.Get("/logout", auth.Logout)

	/*=============================================================================
	| Customer Routes
	===============================================================================*/
	customerGroup := app.Group("/customer", middleware.RequireRole(constants.RoleCustomer))
	customerGroup.Get("/dashboard", customer.Dashboard)
	customerGroup.Get("/book_cargo", customer.BookCargoForm)
	customerGroup.Post("/book_cargo", customer.BookCargo)
	customerGroup.Get("/view_invoices", customer.ViewInvoices)
	customerGroup.Get("/support", customer.SupportTickets)
	customerGroup.Post("/support", customer.CreateSupportTicket)
	customerGroup.Get("/profile", customer.Profile)
	customerGroup.Post("/change_password", customer.ChangePassword)

	/*=============================================================================
	| Employee Routes
	===============================================================================*/
	employeeGroup := app.Group("/employee", middleware.RequireRole(constants.RoleEmployee))
	employeeGroup.Get("/dashboard", employee.Dashboard)
	employeeGroup.Get("/update_status/:bookingId", employee.ShowStatus)
	employeeGroup.Post("/update_status/:bookingId", employee.UpdateStatus)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	adminGroup := app.Group("/admin", middleware.RequireRole(constants.RoleAdmin))
	adminGroup.Get("/dashboard", admin.Dashboard)
	adminGroup.Get("/manage_customers", admin.ManageCustomers)
	adminGroup.Get("/customers/:id/edit", admin.EditCustomerForm)
	adminGroup.Post("/customers/:id/edit", admin.EditCustomer)
	adminGroup.Get("/customers/:id/view", admin.ViewCustomer)
	adminGroup.Get("/customers/:id/activate", admin.ActivateCustomer)
	adminGroup.Get("/customers/:id/suspend", admin.SuspendCustomer)
	adminGroup.Get("/manage_employees", admin.ManageEmployees)
	adminGroup.Get("/manage_cargo", admin.ManageCargo)
	adminGroup.Post("/create_invoice/:bookingId", admin.CreateInvoice)
	adminGroup.Get("/track_shipments", admin.TrackShipments)
	adminGroup.Post("/track_shipments", admin.TrackShipments)
	adminGroup.Get("/generate_reports", admin.GenerateReports)
}
