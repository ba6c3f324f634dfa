package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
)

// AuditService appends to the audit trail. Writes run fire-and-forget on a
// background context so they never block or fail the caller's transaction.
type AuditService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record appends an audit entry asynchronously.
func (s *AuditService) Record(tenantID, actorID uuid.UUID, entityName string, entityID uuid.UUID, action, reason, before, after string) {
	entry := &entity.AuditLog{
		TenantID:    tenantID,
		ActorUserID: actorID,
		Entity:      entityName,
		EntityID:    entityID.String(),
		Action:      action,
		Reason:      reason,
		Before:      before,
		After:       after,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.auditRepo.Create(ctx, entry); err != nil {
			log.Printf("audit: record %s %s on %s: %v", action, entityName, entry.EntityID, err)
		}
	}()
}

// History lists audit entries for one entity, newest first.
func (s *AuditService) History(ctx context.Context, tenantID uuid.UUID, entityName string, entityID uuid.UUID) ([]entity.AuditLog, error) {
	return s.auditRepo.ListByEntity(ctx, tenantID, entityName, entityID)
}
