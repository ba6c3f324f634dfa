package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rasoipos/rasoi-api/internal/application/service"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/request"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles branch settings and printer HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the branch billing profile
func (h *SettingsHandler) Get(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.Get(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved", settings)
}

// Update replaces the branch billing profile
func (h *SettingsHandler) Update(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.UpdateSettingsRequest
	if !bindJSON(c, &req) {
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), a, &service.UpdateSettingsInput{
		Name:                req.Name,
		Address:             req.Address,
		Phone:               req.Phone,
		GSTIN:               req.GSTIN,
		FSSAI:               req.FSSAI,
		PrintFSSAIOnInvoice: req.PrintFSSAIOnInvoice,
		GSTInclusiveDefault: req.GSTInclusiveDefault,
		ServiceChargeMode:   enum.ChargeMode(req.ServiceChargeMode),
		ServiceChargeValue:  req.ServiceChargeValue,
		PackingChargeMode:   enum.ChargeMode(req.PackingChargeMode),
		PackingChargeValue:  req.PackingChargeValue,
		BillingPrinterID:    req.BillingPrinterID,
		InvoiceFooter:       req.InvoiceFooter,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated", settings)
}

// CreatePrinter registers an edge printer agent endpoint
func (h *SettingsHandler) CreatePrinter(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.CreatePrinterRequest
	if !bindJSON(c, &req) {
		return
	}

	printer, err := h.settingsService.CreatePrinter(c.Request.Context(), a, &service.CreatePrinterInput{
		Name:              req.Name,
		Type:              enum.PrinterType(req.Type),
		ConnectionURL:     req.ConnectionURL,
		IsDefault:         req.IsDefault,
		CashDrawerEnabled: req.CashDrawerEnabled,
		CashDrawerCode:    req.CashDrawerCode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Printer created", printer)
}

// ListPrinters returns the branch's registered printers
func (h *SettingsHandler) ListPrinters(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	printers, err := h.settingsService.ListPrinters(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Printers retrieved", printers)
}

// OpenDrawer fires the cash drawer kick code at a billing printer
func (h *SettingsHandler) OpenDrawer(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	printerID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.settingsService.OpenDrawer(c.Request.Context(), a, printerID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Drawer open queued", nil)
}
