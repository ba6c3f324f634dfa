package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest represents a new menu category
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Position int    `json:"position"`
}

// CreateItemRequest represents a new sellable menu item
type CreateItemRequest struct {
	CategoryID       uuid.UUID       `json:"category_id" binding:"required"`
	Name             string          `json:"name" binding:"required,min=2,max=255"`
	Description      string          `json:"description" binding:"max=1000"`
	SKU              string          `json:"sku" binding:"max=50"`
	HSN              string          `json:"hsn" binding:"max=10"`
	TaxInclusive     bool            `json:"tax_inclusive"`
	GSTRate          decimal.Decimal `json:"gst_rate"`
	KitchenStationID *uuid.UUID      `json:"kitchen_station_id"`
	Variants         []ItemVariantRequest `json:"variants" binding:"dive"`
}

// ItemVariantRequest is one size/portion offered for an item
type ItemVariantRequest struct {
	Label     string          `json:"label" binding:"required,max=80"`
	MRP       decimal.Decimal `json:"mrp"`
	BasePrice decimal.Decimal `json:"base_price" binding:"required"`
	IsDefault bool            `json:"is_default"`
}

// CreateModifierGroupRequest represents a modifier group with its options
type CreateModifierGroupRequest struct {
	Name      string            `json:"name" binding:"required,min=2,max=120"`
	MinSel    int               `json:"min_sel" binding:"omitempty,min=0"`
	MaxSel    int               `json:"max_sel" binding:"omitempty,min=0"`
	Required  bool              `json:"required"`
	Modifiers []ModifierRequest `json:"modifiers" binding:"dive"`
}

// ModifierRequest is one selectable option with its price delta
type ModifierRequest struct {
	Name       string          `json:"name" binding:"required,max=120"`
	PriceDelta decimal.Decimal `json:"price_delta"`
}

// StockOutRequest toggles the 86 flag on an item
type StockOutRequest struct {
	StockOut *bool `json:"stock_out" binding:"required"`
}
