package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rasoipos/rasoi-api/internal/config"
	domainRepo "github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/handler"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/middleware"
	"github.com/rasoipos/rasoi-api/pkg/authz"
	"github.com/rasoipos/rasoi-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Order     *handler.OrderHandler
	Kitchen   *handler.KitchenHandler
	Invoice   *handler.InvoiceHandler
	Inventory *handler.InventoryHandler
	Menu      *handler.MenuHandler
	Settings  *handler.SettingsHandler
	Customer  *handler.CustomerHandler
	Audit     *handler.AuditHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-tenant rate limiter
		rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Mutations replay safely behind Idempotency-Key
		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/login/pin", h.Auth.LoginPIN)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	registerOrderRoutes(protected, h)
	registerKitchenRoutes(protected, h)
	registerInvoiceRoutes(protected, h)
	registerMenuRoutes(protected, h)
	registerInventoryRoutes(protected, h)
	registerCustomerRoutes(protected, h)
	registerSettingsRoutes(protected, h)

	protected.GET("/audit/:entity/:id", h.Audit.History)
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers) {
	orders := protected.Group("/orders")
	{
		orders.GET("", h.Order.List)
		orders.POST("", h.Order.Open)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.POST("/:id/lines", h.Order.AddLine)
		orders.DELETE("/:id/lines/:line_id", h.Order.RemoveLine)
		orders.POST("/:id/lines/:line_id/discount", h.Order.Discount)
		orders.POST("/:id/void", h.Order.Void)
		orders.POST("/:id/payments", h.Order.Pay)
		orders.GET("/:id/payments", h.Order.Payments)
		orders.GET("/:id/bill", h.Invoice.Bill)
		orders.POST("/:id/bill/print", h.Order.PrintBill)
		orders.POST("/:id/invoice", h.Invoice.Issue)
		orders.GET("/:id/tickets", h.Kitchen.ListByOrder)
	}
}

func registerKitchenRoutes(protected *gin.RouterGroup, h *Handlers) {
	tickets := protected.Group("/kitchen/tickets")
	{
		tickets.GET("/:id", h.Kitchen.Get)
		tickets.PUT("/:id/status", h.Kitchen.UpdateStatus)
		tickets.POST("/:id/reprint", h.Kitchen.Reprint)
		tickets.POST("/:id/cancel", h.Kitchen.Cancel)
	}

	stations := protected.Group("/kitchen/stations")
	{
		stations.GET("", h.Kitchen.ListStations)
		stations.POST("", h.Kitchen.CreateStation)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("/:id", h.Invoice.Get)
		invoices.POST("/:id/reprint", h.Invoice.Reprint)
	}
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/menu/categories")
	{
		categories.GET("", h.Menu.ListCategories)
		categories.POST("", h.Menu.CreateCategory)
	}

	items := protected.Group("/menu/items")
	{
		items.GET("", h.Menu.ListItems)
		items.POST("", h.Menu.CreateItem)
		items.GET("/:id", h.Menu.GetItem)
		items.PUT("/:id/stock-out", h.Menu.SetStockOut)
		items.PUT("/:id/recipe", h.Inventory.UpsertRecipe)
	}

	modifierGroups := protected.Group("/menu/modifier-groups")
	{
		modifierGroups.GET("", h.Menu.ListModifierGroups)
		modifierGroups.POST("", h.Menu.CreateModifierGroup)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	{
		inventory.GET("/ingredients", h.Inventory.ListIngredients)
		inventory.POST("/ingredients", h.Inventory.CreateIngredient)
		inventory.POST("/purchases", h.Inventory.ReceivePurchase)
		inventory.POST("/wastage",
			middleware.RequirePermission(authz.PermManagerApprove),
			h.Inventory.RecordWastage)
		inventory.GET("/stock", h.Inventory.StockLevels)
		inventory.GET("/stock/low", h.Inventory.LowStock)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
	}

	tables := protected.Group("/tables")
	{
		tables.GET("", h.Customer.ListTables)
		tables.POST("", h.Customer.CreateTable)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", h.Settings.Update)
	}

	printers := protected.Group("/printers")
	{
		printers.GET("", h.Settings.ListPrinters)
		printers.POST("", h.Settings.CreatePrinter)
		printers.POST("/:id/drawer", h.Settings.OpenDrawer)
	}
}
