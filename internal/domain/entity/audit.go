package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLog records who did what to which entity, with optional before/after
// JSON snapshots. Appended fire-and-forget; never blocks the caller.
type AuditLog struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ActorUserID uuid.UUID `gorm:"type:uuid;not null;index" json:"actor_user_id"`
	Entity      string    `gorm:"size:60;not null" json:"entity"`
	EntityID    string    `gorm:"size:36;not null;index" json:"entity_id"`
	Action      string    `gorm:"size:60;not null" json:"action"`
	Reason      string    `gorm:"type:text" json:"reason,omitempty"`
	Before      string    `gorm:"type:text" json:"before,omitempty"`
	After       string    `gorm:"type:text" json:"after,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
