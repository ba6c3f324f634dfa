package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/enum"
)

// Ingredient is a raw material tracked in the stock ledger.
type Ingredient struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name      string          `gorm:"size:160;not null" json:"name"`
	UOM       string          `gorm:"size:20;not null" json:"uom"`
	MinLevel  decimal.Decimal `gorm:"type:numeric(12,3);default:0" json:"min_level"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (Ingredient) TableName() string {
	return "ingredients"
}

// RecipeBOM maps a menu item to an ingredient quantity consumed per unit
// sold. Composite primary key, no surrogate id.
type RecipeBOM struct {
	ItemID       uuid.UUID       `gorm:"type:uuid;primaryKey" json:"item_id"`
	IngredientID uuid.UUID       `gorm:"type:uuid;primaryKey" json:"ingredient_id"`
	Qty          decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"qty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (RecipeBOM) TableName() string {
	return "recipe_boms"
}

// StockMove is one entry in the append-only stock ledger. Current stock is
// always the running sum of QtyChange for an ingredient; moves are never
// mutated or deleted.
type StockMove struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	IngredientID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	Type          enum.StockMoveType `gorm:"size:10;not null" json:"type"`
	QtyChange     decimal.Decimal    `gorm:"type:numeric(12,3);not null" json:"qty_change"`
	Reason        string             `gorm:"type:text" json:"reason,omitempty"`
	RefOrderID    *uuid.UUID         `gorm:"type:uuid;index" json:"ref_order_id,omitempty"`
	RefLineID     *uuid.UUID         `gorm:"type:uuid;index" json:"ref_line_id,omitempty"`
	RefPurchaseID *uuid.UUID         `gorm:"type:uuid" json:"ref_purchase_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func (m *StockMove) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (StockMove) TableName() string {
	return "stock_moves"
}

// Purchase is a goods receipt from a supplier.
type Purchase struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Supplier  string         `gorm:"size:160" json:"supplier,omitempty"`
	Note      string         `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Lines []PurchaseLine `gorm:"foreignKey:PurchaseID" json:"lines,omitempty"`
}

func (p *Purchase) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Purchase) TableName() string {
	return "purchases"
}

// PurchaseLine is one received ingredient on a purchase.
type PurchaseLine struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_id"`
	IngredientID uuid.UUID       `gorm:"type:uuid;not null" json:"ingredient_id"`
	Qty          decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"qty"`
	UnitCost     decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_cost"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (l *PurchaseLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (PurchaseLine) TableName() string {
	return "purchase_lines"
}
