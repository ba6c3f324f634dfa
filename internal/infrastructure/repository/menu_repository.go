package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	domainRepo "github.com/rasoipos/rasoi-api/internal/domain/repository"
)

type menuCategoryRepository struct {
	db *gorm.DB
}

// NewMenuCategoryRepository creates a new menu category repository
func NewMenuCategoryRepository(db *gorm.DB) domainRepo.MenuCategoryRepository {
	return &menuCategoryRepository{db: db}
}

func (r *menuCategoryRepository) Create(ctx context.Context, category *entity.MenuCategory) error {
	return conn(ctx, r.db).Create(category).Error
}

func (r *menuCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuCategory, error) {
	var category entity.MenuCategory
	err := conn(ctx, r.db).Scopes(TenantScope(ctx)).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *menuCategoryRepository) List(ctx context.Context, tenantID uuid.UUID) ([]entity.MenuCategory, error) {
	var categories []entity.MenuCategory
	err := conn(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Order("position ASC, name ASC").
		Find(&categories).Error
	return categories, err
}

type menuItemRepository struct {
	db *gorm.DB
}

// NewMenuItemRepository creates a new menu item repository
func NewMenuItemRepository(db *gorm.DB) domainRepo.MenuItemRepository {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) Create(ctx context.Context, item *entity.MenuItem) error {
	return conn(ctx, r.db).Create(item).Error
}

func (r *menuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := conn(ctx, r.db).Scopes(TenantScope(ctx)).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuItemRepository) GetWithVariants(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	var item entity.MenuItem
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		Preload("Variants").
		First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *menuItemRepository) List(ctx context.Context, tenantID uuid.UUID, categoryID *uuid.UUID) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	query := conn(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Preload("Variants")
	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	err := query.Order("name ASC").Find(&items).Error
	return items, err
}

func (r *menuItemRepository) Update(ctx context.Context, item *entity.MenuItem) error {
	return conn(ctx, r.db).Save(item).Error
}

func (r *menuItemRepository) SetStockOut(ctx context.Context, id uuid.UUID, stockOut bool) error {
	return conn(ctx, r.db).Model(&entity.MenuItem{}).
		Where("id = ?", id).
		Update("stock_out", stockOut).Error
}

type modifierRepository struct {
	db *gorm.DB
}

// NewModifierRepository creates a new modifier repository
func NewModifierRepository(db *gorm.DB) domainRepo.ModifierRepository {
	return &modifierRepository{db: db}
}

func (r *modifierRepository) CreateGroup(ctx context.Context, group *entity.ModifierGroup) error {
	return conn(ctx, r.db).Create(group).Error
}

func (r *modifierRepository) ListGroups(ctx context.Context, tenantID uuid.UUID) ([]entity.ModifierGroup, error) {
	var groups []entity.ModifierGroup
	err := conn(ctx, r.db).
		Where("tenant_id = ?", tenantID).
		Preload("Modifiers").
		Order("name ASC").
		Find(&groups).Error
	return groups, err
}

func (r *modifierRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Modifier, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var modifiers []entity.Modifier
	err := conn(ctx, r.db).
		Where("id IN ?", ids).
		Find(&modifiers).Error
	return modifiers, err
}
