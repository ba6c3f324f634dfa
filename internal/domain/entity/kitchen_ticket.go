package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/enum"
)

// KitchenTicket routes order lines to a preparation station. At most one
// non-cancelled ticket exists per (order, station); the partial unique
// index backs the find-or-create under concurrent line additions.
type KitchenTicket struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_ticket_order_station,unique,where:status <> 'CANCELLED' AND deleted_at IS NULL" json:"order_id"`
	TicketNo      int64          `gorm:"not null" json:"ticket_no"`
	TargetStation *uuid.UUID     `gorm:"type:uuid;index:idx_ticket_order_station,unique,where:status <> 'CANCELLED' AND deleted_at IS NULL" json:"target_station,omitempty"`
	Status        enum.KOTStatus `gorm:"size:12;default:NEW" json:"status"`
	PrintedAt     *time.Time     `json:"printed_at,omitempty"`
	ReprintCount  int            `gorm:"default:0" json:"reprint_count"`
	CancelReason  string         `gorm:"type:text" json:"cancel_reason,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	Items []KitchenTicketItem `gorm:"foreignKey:TicketID" json:"items,omitempty"`
}

func (t *KitchenTicket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (KitchenTicket) TableName() string {
	return "kitchen_tickets"
}

// KitchenTicketItem references a routed order line on a ticket.
type KitchenTicketItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TicketID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"ticket_id"`
	OrderLineID uuid.UUID       `gorm:"type:uuid;not null" json:"order_line_id"`
	Qty         decimal.Decimal `gorm:"type:numeric(12,3);not null" json:"qty"`
	Note        string          `gorm:"type:text" json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (i *KitchenTicketItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (KitchenTicketItem) TableName() string {
	return "kitchen_ticket_items"
}
