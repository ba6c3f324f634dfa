package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/enum"
)

// Order is the aggregate root of the sales flow. OrderNo is assigned at
// creation and never mutated; ClosedAt is set iff status is CLOSED or VOID.
type Order struct {
	ID             uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	TenantID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID       uuid.UUID           `gorm:"type:uuid;not null;index" json:"branch_id"`
	OrderNo        int64               `gorm:"not null" json:"order_no"`
	Channel        enum.OrderChannel   `gorm:"size:10;not null" json:"channel"`
	Provider       enum.OnlineProvider `gorm:"size:10" json:"provider,omitempty"`
	Status         enum.OrderStatus    `gorm:"size:10;default:OPEN;index" json:"status"`
	TableID        *uuid.UUID          `gorm:"type:uuid" json:"table_id,omitempty"`
	CustomerID     *uuid.UUID          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	OpenedByUserID *uuid.UUID          `gorm:"type:uuid" json:"opened_by_user_id,omitempty"`
	ClosedByUserID *uuid.UUID          `gorm:"type:uuid" json:"closed_by_user_id,omitempty"`
	Pax            int                 `json:"pax,omitempty"`
	SourceDeviceID string              `gorm:"size:36" json:"source_device_id,omitempty"`
	Note           string              `gorm:"type:text" json:"note,omitempty"`
	VoidReason     string              `gorm:"type:text" json:"void_reason,omitempty"`
	OpenedAt       *time.Time          `json:"opened_at,omitempty"`
	ClosedAt       *time.Time          `json:"closed_at,omitempty"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	DeletedAt      gorm.DeletedAt      `gorm:"index" json:"-"`

	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Lines    []OrderLine `gorm:"foreignKey:OrderID" json:"lines,omitempty"`
	Payments []Payment   `gorm:"foreignKey:OrderID" json:"payments,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (Order) TableName() string {
	return "orders"
}

// OrderLine is one composed line of an order. GSTRate is snapshotted from
// the menu item at add time. TaxableValue + CGST + SGST + IGST reconstructs
// the post-discount line base within 0.01.
type OrderLine struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	ItemID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id"`
	VariantID      *uuid.UUID      `gorm:"type:uuid" json:"variant_id,omitempty"`
	Qty            decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"qty"`
	UnitPrice      decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	LineDiscount   decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"line_discount"`
	DiscountReason string          `gorm:"type:text" json:"discount_reason,omitempty"`
	GSTRate        decimal.Decimal `gorm:"type:numeric(5,2);default:5.00" json:"gst_rate"`
	TaxableValue   decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"taxable_value"`
	CGST           decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"cgst"`
	SGST           decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"sgst"`
	IGST           decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"igst"`
	VoidReason     string          `gorm:"type:text" json:"void_reason,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	Order       Order                 `gorm:"foreignKey:OrderID" json:"-"`
	Item        MenuItem              `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	Modifiers   []OrderLineModifier   `gorm:"foreignKey:OrderLineID" json:"modifiers,omitempty"`
	Ingredients []OrderLineIngredient `gorm:"foreignKey:OrderLineID" json:"-"`
}

func (l *OrderLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

func (OrderLine) TableName() string {
	return "order_lines"
}

// Base is qty*unit_price - line_discount, the figure taxes are derived from.
func (l *OrderLine) Base() decimal.Decimal {
	return l.Qty.Mul(l.UnitPrice).Sub(l.LineDiscount)
}

// OrderLineModifier is a modifier selection with its price delta snapshot.
type OrderLineModifier struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderLineID uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_line_id"`
	ModifierID  uuid.UUID       `gorm:"type:uuid;not null" json:"modifier_id"`
	Qty         decimal.Decimal `gorm:"type:numeric(12,3);default:1" json:"qty"`
	PriceDelta  decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"price_delta"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (m *OrderLineModifier) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (OrderLineModifier) TableName() string {
	return "order_line_modifiers"
}

// OrderLineIngredient snapshots the recipe at add time (quantity per unit
// sold), so cancelling the line reverses exactly what was deducted even if
// the recipe changed in between.
type OrderLineIngredient struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderLineID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_line_id"`
	IngredientID uuid.UUID       `gorm:"type:uuid;not null" json:"ingredient_id"`
	QtyPerUnit   decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"qty_per_unit"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (i *OrderLineIngredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (OrderLineIngredient) TableName() string {
	return "order_line_ingredients"
}
