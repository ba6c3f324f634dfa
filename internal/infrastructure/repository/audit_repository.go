package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	domainRepo "github.com/rasoipos/rasoi-api/internal/domain/repository"
)

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) domainRepo.AuditLogRepository {
	return &auditLogRepository{db: db}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return conn(ctx, r.db).Create(log).Error
}

func (r *auditLogRepository) ListByEntity(ctx context.Context, tenantID uuid.UUID, entityName string, entityID uuid.UUID) ([]entity.AuditLog, error) {
	var logs []entity.AuditLog
	err := conn(ctx, r.db).
		Where("tenant_id = ? AND entity = ? AND entity_id = ?", tenantID, entityName, entityID.String()).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
