package routes

import (
	"kampus-admin/internal/adapters/http/handlers"
	"kampus-admin/internal/adapters/http/middleware"
	"kampus-admin/internal/adapters/persistence/repositories"
	"kampus-admin/internal/config"
	"kampus-admin/internal/core/domain"
	"kampus-admin/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	codeRepo := repositories.NewCodeRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	customerService := services.NewCustomerService(customerRepo, codeRepo)
	codeService := services.NewCodeService(codeRepo)
	statsService := services.NewStatsService(customerRepo, codeRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	customerHandler := handlers.NewCustomerHandler(customerService)
	codeHandler := handlers.NewCodeHandler(codeService)
	statsHandler := handlers.NewStatsHandler(statsService)
	dashboardHandler := handlers.NewDashboardHandler()

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Auth routes (public, stricter rate limit)
	authRoutes := apiV1.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Dashboard route (any authenticated user)
	dashboardRoutes := apiV1.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/", dashboardHandler.GetOverview)

	// User management routes (manage access capability)
	userRoutes := apiV1.Group("/users")
	userRoutes.Use(middleware.AuthMiddleware(cfg))
	userRoutes.Use(middleware.RequirePermission(domain.CapManageAccess))
	setupUserRoutes(userRoutes, userHandler)

	// Customer routes (manage customers capability)
	customerRoutes := apiV1.Group("/customers")
	customerRoutes.Use(middleware.AuthMiddleware(cfg))
	customerRoutes.Use(middleware.RequirePermission(domain.CapManageCustomers))
	setupCustomerRoutes(customerRoutes, customerHandler)

	// Collaboration code routes (manage collaboration codes capability)
	codeRoutes := apiV1.Group("/collaboration-codes")
	codeRoutes.Use(middleware.AuthMiddleware(cfg))
	codeRoutes.Use(middleware.RequirePermission(domain.CapManageCodes))
	setupCodeRoutes(codeRoutes, codeHandler)

	// Financial stats routes (manage financial capability)
	financialRoutes := apiV1.Group("/financial")
	financialRoutes.Use(middleware.AuthMiddleware(cfg))
	financialRoutes.Use(middleware.RequirePermission(domain.CapManageFinancial))
	financialRoutes.Get("/stats", statsHandler.GetFinancialStats)
	financialRoutes.Get("/customer-revenue", statsHandler.GetCustomerRevenue)

	// Collaboration stats (view collaboration stats capability, separate
	// from managing the codes themselves)
	apiV1.Get("/collaboration-stats",
		middleware.AuthMiddleware(cfg),
		middleware.RequirePermission(domain.CapViewCollabStats),
		statsHandler.GetCollaborationStats)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes (5 req/min/IP against brute force)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", handler.RefreshToken)
	router.Post("/logout", handler.Logout)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Post("/logout-all", middleware.AuthMiddleware(cfg), handler.LogoutAll)
}

// setupUserRoutes configures user management routes.
// The delete-users capability is checked in the service, on top of the
// manage-access gate on the group.
func setupUserRoutes(router fiber.Router, handler *handlers.UserHandler) {
	router.Get("/", handler.ListUsers)
	router.Get("/:id", handler.GetUser)
	router.Post("/", handler.CreateUser)
	router.Patch("/:id", handler.UpdateUser)
	router.Delete("/:id", handler.DeleteUser)
}

// setupCustomerRoutes configures customer management routes
func setupCustomerRoutes(router fiber.Router, handler *handlers.CustomerHandler) {
	router.Get("/", handler.ListCustomers)
	router.Get("/:id", handler.GetCustomer)
	router.Post("/", handler.CreateCustomer)
	router.Delete("/:id", handler.DeleteCustomer)
}

// setupCodeRoutes configures collaboration code routes
func setupCodeRoutes(router fiber.Router, handler *handlers.CodeHandler) {
	router.Get("/", handler.ListCodes)
	router.Post("/", handler.CreateCode)
	router.Patch("/:id", handler.ToggleCode)
	router.Delete("/:id", handler.DeleteCode)
}

