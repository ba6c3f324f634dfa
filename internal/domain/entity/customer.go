package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Customer is an optional order counterparty. StateCode decides IGST vs
// CGST/SGST when it differs from the branch state.
type Customer struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name      string         `gorm:"size:160;not null" json:"name"`
	Phone     string         `gorm:"size:20;index" json:"phone,omitempty"`
	StateCode string         `gorm:"size:2" json:"state_code,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (Customer) TableName() string {
	return "customers"
}

// DiningTable is a physical table within a branch.
type DiningTable struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	BranchID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"branch_id"`
	Code      string         `gorm:"size:30;uniqueIndex;not null" json:"code"`
	Zone      string         `gorm:"size:30" json:"zone,omitempty"`
	Seats     int            `json:"seats,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (t *DiningTable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (DiningTable) TableName() string {
	return "dining_tables"
}
