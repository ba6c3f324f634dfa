package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rasoipos/rasoi-api/internal/application/service"
	"github.com/rasoipos/rasoi-api/internal/config"
	"github.com/rasoipos/rasoi-api/internal/infrastructure/database"
	"github.com/rasoipos/rasoi-api/internal/infrastructure/repository"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/handler"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/routes"
	"github.com/rasoipos/rasoi-api/pkg/printagent"
	"github.com/rasoipos/rasoi-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	tableRepo := repository.NewDiningTableRepository(db)
	categoryRepo := repository.NewMenuCategoryRepository(db)
	itemRepo := repository.NewMenuItemRepository(db)
	modifierRepo := repository.NewModifierRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	lineRepo := repository.NewOrderLineRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	ticketRepo := repository.NewKitchenTicketRepository(db)
	stationRepo := repository.NewKitchenStationRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	stockMoveRepo := repository.NewStockMoveRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	printerRepo := repository.NewPrinterRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	txRunner := repository.NewTxRunner(db)

	// Print jobs go out through a single post-commit queue
	printClient := printagent.NewClient(cfg.Print.AgentTimeout)
	dispatcher := printagent.NewDispatcher(printClient, cfg.Print.QueueSize)

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	authService := service.NewAuthService(userRepo, jwtManager)
	billingService := service.NewBillingService(orderRepo, lineRepo, settingsRepo)
	kitchenService := service.NewKitchenService(ticketRepo, stationRepo, dispatcher, auditService)
	orderService := service.NewOrderService(
		txRunner, orderRepo, lineRepo, paymentRepo, itemRepo, modifierRepo,
		recipeRepo, stockMoveRepo, branchRepo, customerRepo, settingsRepo,
		printerRepo, billingService, kitchenService, auditService, dispatcher,
	)
	invoiceService := service.NewInvoiceService(
		txRunner, invoiceRepo, orderRepo, branchRepo, settingsRepo, printerRepo,
		billingService, dispatcher, auditService,
	)
	inventoryService := service.NewInventoryService(
		txRunner, ingredientRepo, recipeRepo, stockMoveRepo, purchaseRepo, itemRepo,
	)
	menuService := service.NewMenuService(categoryRepo, itemRepo, modifierRepo, stationRepo)
	settingsService := service.NewSettingsService(settingsRepo, printerRepo, dispatcher, auditService)
	customerService := service.NewCustomerService(customerRepo, tableRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Order:     handler.NewOrderHandler(orderService),
		Kitchen:   handler.NewKitchenHandler(kitchenService),
		Invoice:   handler.NewInvoiceHandler(invoiceService, billingService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Menu:      handler.NewMenuHandler(menuService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Customer:  handler.NewCustomerHandler(customerService),
		Audit:     handler.NewAuditHandler(auditService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-janitorCtx.Done():
				return
			case <-ticker.C:
				if err := idempotencyRepo.DeleteExpired(janitorCtx); err != nil {
					log.Printf("idempotency cleanup: %v", err)
				}
			}
		}
	}()

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Drain the print queue before exiting so queued bills and KOTs are
	// not lost on deploys
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	dispatcher.Close()
}
