package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
	"github.com/rasoipos/rasoi-api/pkg/money"
)

// MenuService maintains the sellable catalog.
type MenuService struct {
	categoryRepo repository.MenuCategoryRepository
	itemRepo     repository.MenuItemRepository
	modifierRepo repository.ModifierRepository
	stationRepo  repository.KitchenStationRepository
}

// NewMenuService creates a new menu service
func NewMenuService(
	categoryRepo repository.MenuCategoryRepository,
	itemRepo repository.MenuItemRepository,
	modifierRepo repository.ModifierRepository,
	stationRepo repository.KitchenStationRepository,
) *MenuService {
	return &MenuService{
		categoryRepo: categoryRepo,
		itemRepo:     itemRepo,
		modifierRepo: modifierRepo,
		stationRepo:  stationRepo,
	}
}

// CreateCategoryInput represents the create category input
type CreateCategoryInput struct {
	Name     string
	Position int
}

// CreateCategory adds a menu category.
func (s *MenuService) CreateCategory(ctx context.Context, actor *Actor, input *CreateCategoryInput) (*entity.MenuCategory, error) {
	if input.Name == "" {
		return nil, apperror.NewInvalidArgumentError("Category name is required")
	}
	category := &entity.MenuCategory{
		TenantID: actor.TenantID,
		BranchID: actor.BranchID,
		Name:     input.Name,
		Position: input.Position,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// ListCategories lists the tenant's categories in board order.
func (s *MenuService) ListCategories(ctx context.Context, actor *Actor) ([]entity.MenuCategory, error) {
	return s.categoryRepo.List(ctx, actor.TenantID)
}

// CreateItemInput represents the create item input
type CreateItemInput struct {
	CategoryID       uuid.UUID
	Name             string
	Description      string
	SKU              string
	HSN              string
	TaxInclusive     bool
	GSTRate          decimal.Decimal
	KitchenStationID *uuid.UUID
	Variants         []ItemVariantInput
}

// ItemVariantInput is one size/portion offered for an item.
type ItemVariantInput struct {
	Label     string
	MRP       decimal.Decimal
	BasePrice decimal.Decimal
	IsDefault bool
}

// CreateItem adds a sellable item.
func (s *MenuService) CreateItem(ctx context.Context, actor *Actor, input *CreateItemInput) (*entity.MenuItem, error) {
	if input.Name == "" {
		return nil, apperror.NewInvalidArgumentError("Item name is required")
	}
	if input.GSTRate.IsNegative() {
		return nil, apperror.NewInvalidArgumentError("GST rate must not be negative")
	}
	category, err := s.categoryRepo.GetByID(ctx, input.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Menu category")
	}
	if input.KitchenStationID != nil {
		station, err := s.stationRepo.GetByID(ctx, *input.KitchenStationID)
		if err != nil {
			return nil, err
		}
		if station == nil {
			return nil, apperror.NewNotFoundError("Kitchen station")
		}
	}

	item := &entity.MenuItem{
		TenantID:         actor.TenantID,
		CategoryID:       input.CategoryID,
		Name:             input.Name,
		Description:      input.Description,
		SKU:              input.SKU,
		HSN:              input.HSN,
		IsActive:         true,
		TaxInclusive:     input.TaxInclusive,
		GSTRate:          money.Round2(input.GSTRate),
		KitchenStationID: input.KitchenStationID,
	}
	for _, v := range input.Variants {
		if v.Label == "" {
			return nil, apperror.NewInvalidArgumentError("Variant label is required")
		}
		if v.BasePrice.IsNegative() {
			return nil, apperror.NewInvalidArgumentError("Variant price must not be negative")
		}
		item.Variants = append(item.Variants, entity.ItemVariant{
			Label:     v.Label,
			MRP:       money.Round2(v.MRP),
			BasePrice: money.Round2(v.BasePrice),
			IsDefault: v.IsDefault,
		})
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetItem returns an item with its variants.
func (s *MenuService) GetItem(ctx context.Context, itemID uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.itemRepo.GetWithVariants(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListItems lists items, optionally filtered by category.
func (s *MenuService) ListItems(ctx context.Context, actor *Actor, categoryID *uuid.UUID) ([]entity.MenuItem, error) {
	return s.itemRepo.List(ctx, actor.TenantID, categoryID)
}

// SetStockOut flips the item's stock-out flag. Stock-out items are refused
// during order composition.
func (s *MenuService) SetStockOut(ctx context.Context, itemID uuid.UUID, stockOut bool) error {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	return s.itemRepo.SetStockOut(ctx, itemID, stockOut)
}

// CreateModifierGroupInput represents a modifier group and its options
type CreateModifierGroupInput struct {
	Name      string
	MinSel    int
	MaxSel    int
	Required  bool
	Modifiers []ModifierInput
}

// ModifierInput is one selectable option with its price delta.
type ModifierInput struct {
	Name       string
	PriceDelta decimal.Decimal
}

// CreateModifierGroup adds a modifier group with its options in one write.
func (s *MenuService) CreateModifierGroup(ctx context.Context, actor *Actor, input *CreateModifierGroupInput) (*entity.ModifierGroup, error) {
	if input.Name == "" {
		return nil, apperror.NewInvalidArgumentError("Group name is required")
	}
	if input.MaxSel > 0 && input.MaxSel < input.MinSel {
		return nil, apperror.NewInvalidArgumentError("max_sel must not be below min_sel")
	}
	group := &entity.ModifierGroup{
		TenantID: actor.TenantID,
		Name:     input.Name,
		MinSel:   input.MinSel,
		MaxSel:   input.MaxSel,
		Required: input.Required,
	}
	for _, m := range input.Modifiers {
		if m.Name == "" {
			return nil, apperror.NewInvalidArgumentError("Modifier name is required")
		}
		group.Modifiers = append(group.Modifiers, entity.Modifier{
			Name:       m.Name,
			PriceDelta: money.Round2(m.PriceDelta),
		})
	}
	if err := s.modifierRepo.CreateGroup(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

// ListModifierGroups lists the tenant's modifier groups with their options.
func (s *MenuService) ListModifierGroups(ctx context.Context, actor *Actor) ([]entity.ModifierGroup, error) {
	return s.modifierRepo.ListGroups(ctx, actor.TenantID)
}
