package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
)

// AuditLogRepository defines data access for the append-only audit trail.
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	ListByEntity(ctx context.Context, tenantID uuid.UUID, entityName string, entityID uuid.UUID) ([]entity.AuditLog, error)
}
