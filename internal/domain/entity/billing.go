package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/enum"
)

// Payment is an immutable tender record against an order. Split tenders
// produce multiple rows; rows are never updated or deleted.
type Payment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	Mode      enum.PayMode    `gorm:"size:10;not null" json:"mode"`
	Amount    decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"amount"`
	RefNo     string          `gorm:"size:120" json:"ref_no,omitempty"`
	PaidAt    *time.Time      `json:"paid_at,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (Payment) TableName() string {
	return "payments"
}

// Invoice is one-to-one with a closed order. InvoiceNo is unique,
// date-prefixed and never changes once issued.
type Invoice struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	InvoiceNo     string          `gorm:"size:60;uniqueIndex;not null" json:"invoice_no"`
	InvoiceDt     *time.Time      `json:"invoice_dt,omitempty"`
	PlaceOfSupply string          `gorm:"size:60" json:"place_of_supply,omitempty"`
	RoundOff      decimal.Decimal `gorm:"type:numeric(10,2);default:0" json:"round_off"`
	ReprintCount  int             `gorm:"default:0" json:"reprint_count"`
	CashierUserID *uuid.UUID      `gorm:"type:uuid" json:"cashier_user_id,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (Invoice) TableName() string {
	return "invoices"
}
