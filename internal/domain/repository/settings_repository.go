package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
)

// SettingsRepository defines data access for per-branch restaurant settings.
type SettingsRepository interface {
	GetByBranch(ctx context.Context, branchID uuid.UUID) (*entity.RestaurantSettings, error)
	Upsert(ctx context.Context, settings *entity.RestaurantSettings) error
}

// PrinterRepository defines data access for printers.
type PrinterRepository interface {
	Create(ctx context.Context, printer *entity.Printer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Printer, error)
	List(ctx context.Context, branchID uuid.UUID) ([]entity.Printer, error)
}
