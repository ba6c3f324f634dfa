package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateIngredientRequest represents a new raw material
type CreateIngredientRequest struct {
	Name     string          `json:"name" binding:"required,min=2,max=255"`
	UOM      string          `json:"uom" binding:"required,max=20"`
	MinLevel decimal.Decimal `json:"min_level"`
}

// PurchaseLineRequest is one received line on a goods receipt
type PurchaseLineRequest struct {
	IngredientID uuid.UUID       `json:"ingredient_id" binding:"required"`
	Qty          decimal.Decimal `json:"qty" binding:"required"`
	UnitCost     decimal.Decimal `json:"unit_cost" binding:"required"`
}

// ReceivePurchaseRequest represents a goods receipt
type ReceivePurchaseRequest struct {
	Supplier string                `json:"supplier" binding:"max=255"`
	Note     string                `json:"note" binding:"max=500"`
	Lines    []PurchaseLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// WastageRequest records a spoilage write-off with its reason
type WastageRequest struct {
	IngredientID uuid.UUID       `json:"ingredient_id" binding:"required"`
	Qty          decimal.Decimal `json:"qty" binding:"required"`
	Reason       string          `json:"reason" binding:"required,max=500"`
}

// RecipeLineRequest is one ingredient in an item's bill of materials
type RecipeLineRequest struct {
	IngredientID uuid.UUID       `json:"ingredient_id" binding:"required"`
	Qty          decimal.Decimal `json:"qty" binding:"required"`
}

// UpsertRecipeRequest replaces an item's bill of materials
type UpsertRecipeRequest struct {
	Lines []RecipeLineRequest `json:"lines" binding:"required,dive"`
}
