package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rasoipos/rasoi-api/internal/application/service"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/request"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/response"
	"github.com/rasoipos/rasoi-api/pkg/pagination"
)

// OrderHandler handles order lifecycle HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Open handles opening a new order
func (h *OrderHandler) Open(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.OpenOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.Open(c.Request.Context(), a, &service.OpenOrderInput{
		Channel:    enum.OrderChannel(req.Channel),
		Provider:   enum.OnlineProvider(req.Provider),
		TableID:    req.TableID,
		CustomerID: req.CustomerID,
		Pax:        req.Pax,
		Note:       req.Note,
		DeviceID:   c.GetHeader("X-Device-ID"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Order opened", order)
}

// Get returns an order with its lines and running totals
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	view, err := h.orderService.Get(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved", view)
}

// List handles listing orders with optional status, channel and date filters
func (h *OrderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "20"))

	params := &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: page, PerPage: perPage},
	}
	params.Pagination.Validate()

	if statusStr := c.Query("status"); statusStr != "" {
		status := enum.OrderStatus(statusStr)
		if !status.Valid() {
			response.BadRequest(c, "Unknown order status")
			return
		}
		params.Status = &status
	}
	if channelStr := c.Query("channel"); channelStr != "" {
		channel := enum.OrderChannel(channelStr)
		if !channel.Valid() {
			response.BadRequest(c, "Unknown order channel")
			return
		}
		params.Channel = &channel
	}
	if customerIDStr := c.Query("customer_id"); customerIDStr != "" {
		if customerID, err := uuid.Parse(customerIDStr); err == nil {
			params.CustomerID = &customerID
		}
	}
	if startDateStr := c.Query("start_date"); startDateStr != "" {
		if startDate, err := time.Parse("2006-01-02", startDateStr); err == nil {
			params.StartDate = &startDate
		}
	}
	if endDateStr := c.Query("end_date"); endDateStr != "" {
		if endDate, err := time.Parse("2006-01-02", endDateStr); err == nil {
			params.EndDate = &endDate
		}
	}

	orders, total, err := h.orderService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	response.SuccessWithPagination(c, 200, "Orders retrieved", pagination.NewPaginatedResult(orders, meta))
}

// AddLine handles adding a line to an open order
func (h *OrderHandler) AddLine(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.AddLineRequest
	if !bindJSON(c, &req) {
		return
	}

	line, err := h.orderService.AddLine(c.Request.Context(), a, orderID, &service.AddLineInput{
		ItemID:      req.ItemID,
		VariantID:   req.VariantID,
		Qty:         req.Qty,
		UnitPrice:   req.UnitPrice,
		Discount:    req.Discount,
		ModifierIDs: req.ModifierIDs,
		Note:        req.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Line added", line)
}

// RemoveLine handles soft-deleting a line with its stock reversal
func (h *OrderHandler) RemoveLine(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	lineID, ok := pathUUID(c, "line_id")
	if !ok {
		return
	}
	var req request.RemoveLineRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.orderService.RemoveLine(c.Request.Context(), a, orderID, lineID, req.Reason); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line removed", nil)
}

// Discount handles applying a per-line discount
func (h *OrderHandler) Discount(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	lineID, ok := pathUUID(c, "line_id")
	if !ok {
		return
	}
	var req request.DiscountRequest
	if !bindJSON(c, &req) {
		return
	}

	line, err := h.orderService.ApplyDiscount(c.Request.Context(), a, orderID, lineID, req.Discount, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Discount applied", line)
}

// Void handles voiding a whole order
func (h *OrderHandler) Void(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.VoidOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.Void(c.Request.Context(), a, orderID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order voided", order)
}

// Pay handles recording a payment and closing the order once settled
func (h *OrderHandler) Pay(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.PayRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.orderService.Pay(c.Request.Context(), a, orderID, &service.PayInput{
		Mode:   enum.PayMode(req.Mode),
		Amount: req.Amount,
		RefNo:  req.RefNo,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded", result)
}

// Payments returns the payment ledger for an order
func (h *OrderHandler) Payments(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	payments, err := h.orderService.Payments(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payments retrieved", payments)
}

// UpdateStatus handles non-terminal status moves
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.UpdateOrderStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), orderID, enum.OrderStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated", order)
}

// PrintBill enqueues a pre-invoice bill for the billing printer
func (h *OrderHandler) PrintBill(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.orderService.PrintBill(c.Request.Context(), a, orderID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Bill queued for printing", nil)
}
