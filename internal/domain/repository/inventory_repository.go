package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
)

// StockLevel is the running ledger sum for an ingredient.
type StockLevel struct {
	IngredientID uuid.UUID       `json:"ingredient_id"`
	Name         string          `json:"name"`
	UOM          string          `json:"uom"`
	Qty          decimal.Decimal `json:"qty"`
	MinLevel     decimal.Decimal `json:"min_level"`
}

// IngredientRepository defines data access for ingredients.
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error)
	List(ctx context.Context, tenantID uuid.UUID) ([]entity.Ingredient, error)
}

// RecipeRepository defines data access for item bills of materials.
type RecipeRepository interface {
	GetByItemID(ctx context.Context, itemID uuid.UUID) ([]entity.RecipeBOM, error)
	ReplaceForItem(ctx context.Context, itemID uuid.UUID, lines []entity.RecipeBOM) error
}

// StockMoveRepository defines append access to the stock ledger.
// Moves are never updated or deleted.
type StockMoveRepository interface {
	CreateBatch(ctx context.Context, moves []entity.StockMove) error
	SumForIngredient(ctx context.Context, ingredientID uuid.UUID) (decimal.Decimal, error)
	SumByLineRef(ctx context.Context, lineID uuid.UUID) (map[uuid.UUID]decimal.Decimal, error)
	Levels(ctx context.Context, tenantID uuid.UUID) ([]StockLevel, error)
}

// PurchaseRepository defines data access for goods receipts.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	CreateLines(ctx context.Context, lines []entity.PurchaseLine) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Purchase, error)
}
