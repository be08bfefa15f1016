package main

import (
	"log"
	"strings"

	"agrofarm-backend/internal/admin"
	"agrofarm-backend/internal/animal"
	"agrofarm-backend/internal/audit"
	"agrofarm-backend/internal/auth"
	"agrofarm-backend/internal/config"
	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/employee"
	"agrofarm-backend/internal/expense"
	"agrofarm-backend/internal/healthlog"
	"agrofarm-backend/internal/ledger"
	"agrofarm-backend/internal/lifecycle"
	"agrofarm-backend/internal/logger"
	"agrofarm-backend/internal/models"
	"agrofarm-backend/internal/sales"
	"agrofarm-backend/internal/scheduler"
	"agrofarm-backend/internal/shop"
	"agrofarm-backend/internal/tasks"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	if _, err := logger.Init(); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.L.Sync()

	cfg := config.Load()
	database.Init(cfg)
	ledger.Init(cfg)
	healthlog.Init(cfg)
	lifecycle.Init(cfg)

	backups := scheduler.New(cfg)
	backups.Start()
	defer backups.Stop()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			logger.L.Errorw("unexpected error", "path", c.Path(), "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler())
	api.Post("/auth/register-admin", auth.RegisterAdminHandler())
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Shop & cart
	protected.Get("/shop/products", shop.ListProductsHandler())
	protected.Get("/cart", shop.GetCartHandler())
	protected.Post("/cart/add", shop.AddToCartHandler())
	protected.Post("/cart/increase", shop.IncreaseCartHandler())
	protected.Post("/cart/decrease", shop.DecreaseCartHandler())
	protected.Post("/cart/remove", shop.RemoveFromCartHandler())
	protected.Post("/cart/checkout", shop.CheckoutHandler())
	protected.Get("/cart/invoice/:orderId", shop.InvoicePDFHandler())

	// Admin routes
	adminRoutes := protected.Group("/admin")
	adminRoutes.Use(auth.RequireRole(models.RoleAdmin))

	adminRoutes.Get("/dashboard", admin.DashboardHandler())

	// Animal records
	protected.Get("/animals", animal.ListAnimalsHandler())
	protected.Get("/animals/:id", animal.GetAnimalHandler())
	adminRoutes.Post("/animals", animal.CreateAnimalHandler())
	adminRoutes.Put("/animals/:id", animal.UpdateAnimalHandler())
	adminRoutes.Delete("/animals/:id", animal.DeleteAnimalHandler())

	// Employees & task assignment
	protected.Get("/employees", employee.ListEmployeesHandler())
	protected.Get("/employees/:code", employee.GetEmployeeHandler())
	adminRoutes.Post("/employees", employee.CreateEmployeeHandler())
	adminRoutes.Put("/employees/:code", employee.UpdateEmployeeHandler())
	adminRoutes.Delete("/employees/:code", employee.DeleteEmployeeHandler())

	protected.Get("/tasks/available", tasks.AvailableTasksHandler())
	protected.Get("/tasks/for-animal", tasks.TasksForAnimalHandler())
	adminRoutes.Get("/task-management", tasks.TaskManagementListHandler())
	adminRoutes.Post("/task-management/:code/mark-done", tasks.MarkDoneHandler())

	// Stock management
	adminRoutes.Get("/stock", admin.ListStockHandler())
	adminRoutes.Put("/stock", admin.SetStockHandler())

	// Sales analytics & reports
	adminRoutes.Get("/sales/analytics", sales.AnalyticsHandler())
	adminRoutes.Get("/sales/monthly-pdf", sales.MonthlyPDFHandler())
	adminRoutes.Get("/sales/monthly-xlsx", sales.MonthlyXLSXHandler())

	// Expense reports
	adminRoutes.Get("/expenses", expense.ReportHandler())
	adminRoutes.Get("/expenses/monthly-pdf", expense.MonthlyPDFHandler())

	// Health tracker & dashboard
	adminRoutes.Get("/health-tracker", healthlog.TrackerHandler())
	adminRoutes.Post("/health-tracker", healthlog.SaveTrackerHandler())
	adminRoutes.Get("/health-dashboard", healthlog.DashboardHandler())

	// Animal lifecycle statuses
	adminRoutes.Get("/lifecycle", lifecycle.ListHandler())
	adminRoutes.Post("/lifecycle", lifecycle.SaveHandler())

	// User management
	adminRoutes.Get("/users", admin.ListUsersHandler())
	adminRoutes.Get("/users/:id", admin.GetUserHandler())
	adminRoutes.Put("/users/:id", admin.UpdateUserHandler())
	adminRoutes.Delete("/users/:id", admin.DeleteUserHandler())

	// Audit trail
	adminRoutes.Get("/audit-logs", audit.ListAuditLogsHandler())

	logger.L.Infow("server starting", "port", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		logger.L.Fatalf("server stopped: %v", err)
	}
}
