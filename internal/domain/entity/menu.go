package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuCategory orders items on the menu board.
type MenuCategory struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID  uuid.UUID      `gorm:"type:uuid;index" json:"branch_id"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	Position  int            `gorm:"default:0" json:"position"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *MenuCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (MenuCategory) TableName() string {
	return "menu_categories"
}

// MenuItem is a sellable item. GSTRate and TaxInclusive are snapshotted
// onto order lines at add time, not live-joined afterwards.
type MenuItem struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CategoryID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"category_id"`
	Name             string         `gorm:"size:160;not null" json:"name"`
	Description      string         `gorm:"type:text" json:"description,omitempty"`
	SKU              string         `gorm:"size:60" json:"sku,omitempty"`
	HSN              string         `gorm:"size:16" json:"hsn,omitempty"`
	IsActive         bool           `gorm:"default:true" json:"is_active"`
	StockOut         bool           `gorm:"default:false" json:"stock_out"`
	TaxInclusive     bool           `gorm:"default:true" json:"tax_inclusive"`
	GSTRate          decimal.Decimal `gorm:"type:numeric(5,2);default:5.00" json:"gst_rate"`
	KitchenStationID *uuid.UUID     `gorm:"type:uuid;index" json:"kitchen_station_id,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Category MenuCategory  `gorm:"foreignKey:CategoryID" json:"-"`
	Variants []ItemVariant `gorm:"foreignKey:ItemID" json:"variants,omitempty"`
}

func (i *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (MenuItem) TableName() string {
	return "menu_items"
}

// ItemVariant is a sellable size/portion of an item.
type ItemVariant struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"item_id"`
	Label     string          `gorm:"size:80;not null" json:"label"`
	MRP       decimal.Decimal `gorm:"type:numeric(10,2)" json:"mrp"`
	BasePrice decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"base_price"`
	IsDefault bool            `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (v *ItemVariant) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

func (ItemVariant) TableName() string {
	return "item_variants"
}

// ModifierGroup bundles selectable modifiers (toppings, spice level).
type ModifierGroup struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	MinSel    int            `gorm:"default:0" json:"min_sel"`
	MaxSel    int            `json:"max_sel,omitempty"`
	Required  bool           `gorm:"default:false" json:"required"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Modifiers []Modifier `gorm:"foreignKey:GroupID" json:"modifiers,omitempty"`
}

func (g *ModifierGroup) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

func (ModifierGroup) TableName() string {
	return "modifier_groups"
}

// Modifier is a single selectable option with a price delta.
type Modifier struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	GroupID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"group_id"`
	Name       string          `gorm:"size:120;not null" json:"name"`
	PriceDelta decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"price_delta"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (m *Modifier) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (Modifier) TableName() string {
	return "modifiers"
}
