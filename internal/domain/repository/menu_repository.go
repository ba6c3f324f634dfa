package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
)

// MenuCategoryRepository defines data access for menu categories.
type MenuCategoryRepository interface {
	Create(ctx context.Context, category *entity.MenuCategory) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuCategory, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]entity.MenuCategory, error)
}

// MenuItemRepository defines data access for menu items.
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetWithVariants(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	List(ctx context.Context, tenantID uuid.UUID, categoryID *uuid.UUID) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	SetStockOut(ctx context.Context, id uuid.UUID, stockOut bool) error
}

// ModifierRepository defines data access for modifier groups and their
// modifiers. Order lines snapshot modifiers by ID.
type ModifierRepository interface {
	CreateGroup(ctx context.Context, group *entity.ModifierGroup) error
	ListGroups(ctx context.Context, tenantID uuid.UUID) ([]entity.ModifierGroup, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Modifier, error)
}
