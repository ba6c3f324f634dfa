package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rasoipos/rasoi-api/internal/config"
	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/pkg/authz"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// Surface unique constraint violations as gorm.ErrDuplicatedKey
		// so callers can retry invoice and ticket numbering.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Identity entities
		&entity.Tenant{},
		&entity.Branch{},
		&entity.User{},
		&entity.Role{},
		&entity.Permission{},
		&entity.Customer{},
		&entity.DiningTable{},

		// Menu entities
		&entity.MenuCategory{},
		&entity.MenuItem{},
		&entity.ItemVariant{},
		&entity.ModifierGroup{},
		&entity.Modifier{},

		// Order and billing entities
		&entity.Order{},
		&entity.OrderLine{},
		&entity.OrderLineModifier{},
		&entity.OrderLineIngredient{},
		&entity.Payment{},
		&entity.Invoice{},

		// Kitchen entities
		&entity.KitchenStation{},
		&entity.KitchenTicket{},
		&entity.KitchenTicketItem{},

		// Inventory entities
		&entity.Ingredient{},
		&entity.RecipeBOM{},
		&entity.StockMove{},
		&entity.Purchase{},
		&entity.PurchaseLine{},

		// System entities
		&entity.RestaurantSettings{},
		&entity.Printer{},
		&entity.AuditLog{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with default permissions, roles and an
// optional admin user configured via environment variables.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	descriptions := map[string]string{
		authz.PermDiscount:       "Apply order or line level discounts",
		authz.PermVoid:           "Void orders and order lines",
		authz.PermReprint:        "Reprint bills, invoices and kitchen tickets",
		authz.PermSettingsEdit:   "Edit restaurant settings",
		authz.PermManagerApprove: "Approve manager-gated actions",
		authz.PermShiftClose:     "Close cashier shifts",
	}

	for _, code := range authz.AllPermissions() {
		var existing entity.Permission
		if err := db.Where("code = ?", code).First(&existing).Error; err != nil {
			perm := entity.Permission{Code: code, Description: descriptions[code]}
			if err := db.Create(&perm).Error; err != nil {
				log.Printf("Warning: failed to create permission %s: %v", code, err)
			}
		}
	}

	// Reload permissions with IDs
	var allPermissions []entity.Permission
	db.Find(&allPermissions)

	// ADMIN bypasses permission checks but still carries the full set so
	// tokens list every capability explicitly.
	var adminRole entity.Role
	if err := db.Where("code = ?", authz.AdminRole).First(&adminRole).Error; err != nil {
		adminRole = entity.Role{
			Code:        authz.AdminRole,
			Permissions: allPermissions,
		}
		if err := db.Create(&adminRole).Error; err != nil {
			log.Printf("Warning: failed to create admin role: %v", err)
		}
	}

	managerPermissions := []string{
		authz.PermDiscount,
		authz.PermVoid,
		authz.PermReprint,
		authz.PermManagerApprove,
		authz.PermShiftClose,
	}
	seedRole(db, "MANAGER", managerPermissions, allPermissions)

	cashierPermissions := []string{
		authz.PermReprint,
		authz.PermShiftClose,
	}
	seedRole(db, "CASHIER", cashierPermissions, allPermissions)

	seedRole(db, "WAITER", nil, allPermissions)
	seedRole(db, "KITCHEN", nil, allPermissions)

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				var role entity.Role
				if err := db.Where("code = ?", authz.AdminRole).First(&role).Error; err == nil {
					if adminName == "" {
						adminName = "Admin"
					}
					adminUser := entity.User{
						ID:       uuid.New(),
						Name:     adminName,
						Email:    adminEmail,
						PassHash: string(hashedPassword),
						Active:   true,
						Roles:    []entity.Role{role},
					}
					if err := db.Create(&adminUser).Error; err != nil {
						log.Printf("Warning: failed to create admin user: %v", err)
					} else {
						log.Printf("Admin user created: %s", adminEmail)
					}
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}

func seedRole(db *gorm.DB, code string, permCodes []string, all []entity.Permission) {
	var perms []entity.Permission
	for _, name := range permCodes {
		for _, p := range all {
			if p.Code == name {
				perms = append(perms, p)
				break
			}
		}
	}

	var role entity.Role
	if err := db.Where("code = ?", code).First(&role).Error; err != nil {
		role = entity.Role{Code: code, Permissions: perms}
		if err := db.Create(&role).Error; err != nil {
			log.Printf("Warning: failed to create %s role: %v", code, err)
		}
	}
}
