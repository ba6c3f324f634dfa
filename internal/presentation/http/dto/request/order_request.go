package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpenOrderRequest represents a new order
type OpenOrderRequest struct {
	Channel    string     `json:"channel" binding:"required"`
	Provider   string     `json:"provider"`
	TableID    *uuid.UUID `json:"table_id"`
	CustomerID *uuid.UUID `json:"customer_id"`
	Pax        int        `json:"pax" binding:"omitempty,min=1"`
	Note       string     `json:"note" binding:"max=500"`
}

// AddLineRequest represents a line added to an open order. UnitPrice is
// the price the terminal displayed at sale time; modifier deltas are
// added server-side.
type AddLineRequest struct {
	ItemID      uuid.UUID       `json:"item_id" binding:"required"`
	VariantID   *uuid.UUID      `json:"variant_id"`
	Qty         decimal.Decimal `json:"qty" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	Discount    decimal.Decimal `json:"discount"`
	ModifierIDs []uuid.UUID     `json:"modifier_ids"`
	Note        string          `json:"note" binding:"max=500"`
}

// RemoveLineRequest carries the mandatory removal reason
type RemoveLineRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// DiscountRequest represents a per-line discount with its reason
type DiscountRequest struct {
	Discount decimal.Decimal `json:"discount" binding:"required"`
	Reason   string          `json:"reason" binding:"required,max=500"`
}

// VoidOrderRequest carries the mandatory void reason
type VoidOrderRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

// PayRequest represents a payment against an order
type PayRequest struct {
	Mode   string          `json:"mode" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	RefNo  string          `json:"ref_no" binding:"max=100"`
}

// UpdateOrderStatusRequest represents a non-terminal status move
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
