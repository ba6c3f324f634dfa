package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
	"github.com/rasoipos/rasoi-api/pkg/money"
)

// RecipeComponent pairs an ingredient with the quantity consumed per unit
// sold, as snapshotted on the order line.
type RecipeComponent struct {
	IngredientID uuid.UUID
	QtyPerUnit   decimal.Decimal
}

// SaleMoves translates a sold line into negative SALE ledger entries, one
// per recipe component, quantities at 3dp.
func SaleMoves(orderID, lineID uuid.UUID, qty decimal.Decimal, components []RecipeComponent) []entity.StockMove {
	moves := make([]entity.StockMove, 0, len(components))
	for _, c := range components {
		oid, lid := orderID, lineID
		moves = append(moves, entity.StockMove{
			IngredientID: c.IngredientID,
			Type:         enum.StockSale,
			QtyChange:    money.Round3(c.QtyPerUnit.Mul(qty)).Neg(),
			RefOrderID:   &oid,
			RefLineID:    &lid,
		})
	}
	return moves
}

// ReversalMoves produces the compensating ADJUST entries for a removed
// line: the exact positive mirror of what SaleMoves deducted.
func ReversalMoves(orderID, lineID uuid.UUID, qty decimal.Decimal, components []RecipeComponent, reason string) []entity.StockMove {
	moves := make([]entity.StockMove, 0, len(components))
	for _, c := range components {
		oid, lid := orderID, lineID
		moves = append(moves, entity.StockMove{
			IngredientID: c.IngredientID,
			Type:         enum.StockAdjust,
			QtyChange:    money.Round3(c.QtyPerUnit.Mul(qty)),
			Reason:       reason,
			RefOrderID:   &oid,
			RefLineID:    &lid,
		})
	}
	return moves
}

// InventoryService covers ingredients, recipes, goods receipts, wastage and
// the ledger-derived stock reports.
type InventoryService struct {
	txr            repository.TxRunner
	ingredientRepo repository.IngredientRepository
	recipeRepo     repository.RecipeRepository
	stockMoveRepo  repository.StockMoveRepository
	purchaseRepo   repository.PurchaseRepository
	menuItemRepo   repository.MenuItemRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	txr repository.TxRunner,
	ingredientRepo repository.IngredientRepository,
	recipeRepo repository.RecipeRepository,
	stockMoveRepo repository.StockMoveRepository,
	purchaseRepo repository.PurchaseRepository,
	menuItemRepo repository.MenuItemRepository,
) *InventoryService {
	return &InventoryService{
		txr:            txr,
		ingredientRepo: ingredientRepo,
		recipeRepo:     recipeRepo,
		stockMoveRepo:  stockMoveRepo,
		purchaseRepo:   purchaseRepo,
		menuItemRepo:   menuItemRepo,
	}
}

// CreateIngredientInput represents the create ingredient input
type CreateIngredientInput struct {
	Name     string
	UOM      string
	MinLevel decimal.Decimal
}

// CreateIngredient registers a new raw material.
func (s *InventoryService) CreateIngredient(ctx context.Context, actor *Actor, input *CreateIngredientInput) (*entity.Ingredient, error) {
	if input.Name == "" || input.UOM == "" {
		return nil, apperror.NewInvalidArgumentError("Name and UOM are required")
	}
	ingredient := &entity.Ingredient{
		TenantID: actor.TenantID,
		Name:     input.Name,
		UOM:      input.UOM,
		MinLevel: money.Round3(input.MinLevel),
	}
	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// ListIngredients lists the tenant's ingredients.
func (s *InventoryService) ListIngredients(ctx context.Context, actor *Actor) ([]entity.Ingredient, error) {
	return s.ingredientRepo.List(ctx, actor.TenantID)
}

// PurchaseLineInput represents one received ingredient on a goods receipt
type PurchaseLineInput struct {
	IngredientID uuid.UUID
	Qty          decimal.Decimal
	UnitCost     decimal.Decimal
}

// ReceivePurchaseInput represents the goods receipt input
type ReceivePurchaseInput struct {
	Supplier string
	Note     string
	Lines    []PurchaseLineInput
}

// ReceivePurchase records a goods receipt and the matching positive
// PURCHASE ledger entries in one transaction.
func (s *InventoryService) ReceivePurchase(ctx context.Context, actor *Actor, input *ReceivePurchaseInput) (*entity.Purchase, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewInvalidArgumentError("Purchase requires at least one line")
	}
	for _, l := range input.Lines {
		if !l.Qty.IsPositive() {
			return nil, apperror.NewInvalidArgumentError("Purchase quantities must be positive")
		}
	}

	purchase := &entity.Purchase{
		TenantID: actor.TenantID,
		Supplier: input.Supplier,
		Note:     input.Note,
	}

	err := s.txr.InTx(ctx, func(ctx context.Context) error {

		if err := s.purchaseRepo.Create(ctx, purchase); err != nil {
			return err
		}

		lines := make([]entity.PurchaseLine, 0, len(input.Lines))
		moves := make([]entity.StockMove, 0, len(input.Lines))
		for _, l := range input.Lines {
			ingredient, err := s.ingredientRepo.GetByID(ctx, l.IngredientID)
			if err != nil {
				return err
			}
			if ingredient == nil {
				return apperror.NewNotFoundError("Ingredient")
			}
			pid := purchase.ID
			lines = append(lines, entity.PurchaseLine{
				PurchaseID:   purchase.ID,
				IngredientID: l.IngredientID,
				Qty:          money.Round3(l.Qty),
				UnitCost:     money.Round2(l.UnitCost),
			})
			moves = append(moves, entity.StockMove{
				IngredientID:  l.IngredientID,
				Type:          enum.StockPurchase,
				QtyChange:     money.Round3(l.Qty),
				RefPurchaseID: &pid,
			})
		}

		if err := s.purchaseRepo.CreateLines(ctx, lines); err != nil {
			return err
		}
		return s.stockMoveRepo.CreateBatch(ctx, moves)
	})
	if err != nil {
		return nil, err
	}
	return s.purchaseRepo.GetByID(ctx, purchase.ID)
}

// RecordWastage appends a negative WASTAGE entry with a mandatory reason.
func (s *InventoryService) RecordWastage(ctx context.Context, actor *Actor, ingredientID uuid.UUID, qty decimal.Decimal, reason string) error {
	if !qty.IsPositive() {
		return apperror.NewInvalidArgumentError("Wastage quantity must be positive")
	}
	if reason == "" {
		return apperror.NewInvalidArgumentError("Wastage reason is required")
	}
	ingredient, err := s.ingredientRepo.GetByID(ctx, ingredientID)
	if err != nil {
		return err
	}
	if ingredient == nil {
		return apperror.NewNotFoundError("Ingredient")
	}
	return s.stockMoveRepo.CreateBatch(ctx, []entity.StockMove{{
		IngredientID: ingredientID,
		Type:         enum.StockWastage,
		QtyChange:    money.Round3(qty).Neg(),
		Reason:       reason,
	}})
}

// RecipeLineInput represents one component of an item recipe
type RecipeLineInput struct {
	IngredientID uuid.UUID
	Qty          decimal.Decimal
}

// UpsertRecipe replaces an item's bill of materials. Existing order lines
// keep the snapshot they were sold under.
func (s *InventoryService) UpsertRecipe(ctx context.Context, itemID uuid.UUID, lines []RecipeLineInput) error {
	item, err := s.menuItemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}
	boms := make([]entity.RecipeBOM, 0, len(lines))
	for _, l := range lines {
		if !l.Qty.IsPositive() {
			return apperror.NewInvalidArgumentError("Recipe quantities must be positive")
		}
		ingredient, err := s.ingredientRepo.GetByID(ctx, l.IngredientID)
		if err != nil {
			return err
		}
		if ingredient == nil {
			return apperror.NewNotFoundError("Ingredient")
		}
		boms = append(boms, entity.RecipeBOM{
			ItemID:       itemID,
			IngredientID: l.IngredientID,
			Qty:          money.Round3(l.Qty),
		})
	}
	return s.recipeRepo.ReplaceForItem(ctx, itemID, boms)
}

// StockLevels reports the running ledger sum for every ingredient.
func (s *InventoryService) StockLevels(ctx context.Context, actor *Actor) ([]repository.StockLevel, error) {
	return s.stockMoveRepo.Levels(ctx, actor.TenantID)
}

// LowStock reports ingredients whose ledger sum is at or below min_level.
func (s *InventoryService) LowStock(ctx context.Context, actor *Actor) ([]repository.StockLevel, error) {
	levels, err := s.stockMoveRepo.Levels(ctx, actor.TenantID)
	if err != nil {
		return nil, err
	}
	low := make([]repository.StockLevel, 0)
	for _, l := range levels {
		if l.Qty.LessThanOrEqual(l.MinLevel) {
			low = append(low, l)
		}
	}
	return low, nil
}
