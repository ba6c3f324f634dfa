package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	domainRepo "github.com/rasoipos/rasoi-api/internal/domain/repository"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetByBranch(ctx context.Context, branchID uuid.UUID) (*entity.RestaurantSettings, error) {
	var settings entity.RestaurantSettings
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		First(&settings, "branch_id = ?", branchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &settings, err
}

func (r *settingsRepository) Upsert(ctx context.Context, settings *entity.RestaurantSettings) error {
	if settings.ID == uuid.Nil {
		return conn(ctx, r.db).Create(settings).Error
	}
	return conn(ctx, r.db).Save(settings).Error
}

type printerRepository struct {
	db *gorm.DB
}

// NewPrinterRepository creates a new printer repository
func NewPrinterRepository(db *gorm.DB) domainRepo.PrinterRepository {
	return &printerRepository{db: db}
}

func (r *printerRepository) Create(ctx context.Context, printer *entity.Printer) error {
	return conn(ctx, r.db).Create(printer).Error
}

func (r *printerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Printer, error) {
	var printer entity.Printer
	err := conn(ctx, r.db).First(&printer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &printer, err
}

func (r *printerRepository) List(ctx context.Context, branchID uuid.UUID) ([]entity.Printer, error) {
	var printers []entity.Printer
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		Where("branch_id = ?", branchID).
		Order("name ASC").
		Find(&printers).Error
	return printers, err
}
