package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rasoipos/rasoi-api/internal/application/service"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/request"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	billingService *service.BillingService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, billingService *service.BillingService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, billingService: billingService}
}

// Issue issues the invoice for an order. Issuing twice returns the same
// invoice.
func (h *InvoiceHandler) Issue(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.Issue(c.Request.Context(), a, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice issued", invoice)
}

// Get returns an invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	invoiceID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	invoice, err := h.invoiceService.Get(c.Request.Context(), invoiceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved", invoice)
}

// Reprint re-queues an invoice for the billing printer and bumps its
// reprint counter
func (h *InvoiceHandler) Reprint(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	invoiceID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.TicketReasonRequest
	if !bindJSON(c, &req) {
		return
	}

	invoice, err := h.invoiceService.Reprint(c.Request.Context(), a, invoiceID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice queued for reprint", invoice)
}

// Bill returns the computed running totals for an order without issuing
// an invoice
func (h *InvoiceHandler) Bill(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	totals, err := h.billingService.ComputeBill(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill computed", totals)
}
