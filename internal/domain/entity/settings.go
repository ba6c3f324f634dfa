package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/enum"
)

// RestaurantSettings is per-branch billing configuration: GST defaults,
// service/packing charges and the billing printer.
type RestaurantSettings struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TenantID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"branch_id"`
	Name                string          `gorm:"size:200;not null" json:"name"`
	Address             string          `gorm:"type:text" json:"address,omitempty"`
	Phone               string          `gorm:"size:20" json:"phone,omitempty"`
	GSTIN               string          `gorm:"size:32" json:"gstin,omitempty"`
	FSSAI               string          `gorm:"size:32" json:"fssai,omitempty"`
	PrintFSSAIOnInvoice bool            `gorm:"default:false" json:"print_fssai_on_invoice"`
	GSTInclusiveDefault bool            `gorm:"default:true" json:"gst_inclusive_default"`
	ServiceChargeMode   enum.ChargeMode `gorm:"size:10;default:NONE" json:"service_charge_mode"`
	ServiceChargeValue  decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"service_charge_value"`
	PackingChargeMode   enum.ChargeMode `gorm:"size:10;default:NONE" json:"packing_charge_mode"`
	PackingChargeValue  decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"packing_charge_value"`
	BillingPrinterID    *uuid.UUID      `gorm:"type:uuid" json:"billing_printer_id,omitempty"`
	InvoiceFooter       string          `gorm:"size:200;default:Thank you!" json:"invoice_footer"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	DeletedAt           gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (s *RestaurantSettings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (RestaurantSettings) TableName() string {
	return "restaurant_settings"
}

// Printer is a configured output device reachable through an edge agent
// webhook. The core never talks to hardware directly.
type Printer struct {
	ID                uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TenantID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID          uuid.UUID        `gorm:"type:uuid;not null;index" json:"branch_id"`
	Name              string           `gorm:"size:120;not null" json:"name"`
	Type              enum.PrinterType `gorm:"size:10;not null" json:"type"`
	ConnectionURL     string           `gorm:"size:300" json:"connection_url,omitempty"`
	IsDefault         bool             `gorm:"default:false" json:"is_default"`
	CashDrawerEnabled bool             `gorm:"default:false" json:"cash_drawer_enabled"`
	CashDrawerCode    string           `gorm:"size:30" json:"cash_drawer_code,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	DeletedAt         gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (p *Printer) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Printer) TableName() string {
	return "printers"
}

// KitchenStation is a preparation station KOTs are routed to.
type KitchenStation struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BranchID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	Name      string         `gorm:"size:120;not null" json:"name"`
	PrinterID *uuid.UUID     `gorm:"type:uuid" json:"printer_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Printer *Printer `gorm:"foreignKey:PrinterID" json:"-"`
}

func (s *KitchenStation) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (KitchenStation) TableName() string {
	return "kitchen_stations"
}
