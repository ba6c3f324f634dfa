package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rasoipos/rasoi-api/internal/application/service"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/response"
)

// AuditHandler exposes the audit trail for sensitive actions
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// History lists audit entries for one entity, newest first
func (h *AuditHandler) History(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	entityName := c.Param("entity")
	entityID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	entries, err := h.auditService.History(c.Request.Context(), a.TenantID, entityName, entityID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Audit history retrieved", entries)
}
