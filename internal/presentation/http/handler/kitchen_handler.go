package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rasoipos/rasoi-api/internal/application/service"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/request"
	"github.com/rasoipos/rasoi-api/internal/presentation/http/dto/response"
)

// KitchenHandler handles kitchen ticket and station HTTP requests
type KitchenHandler struct {
	kitchenService *service.KitchenService
}

// NewKitchenHandler creates a new kitchen handler
func NewKitchenHandler(kitchenService *service.KitchenService) *KitchenHandler {
	return &KitchenHandler{kitchenService: kitchenService}
}

// Get returns a ticket with its items
func (h *KitchenHandler) Get(c *gin.Context) {
	ticketID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	ticket, err := h.kitchenService.Get(c.Request.Context(), ticketID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket retrieved", ticket)
}

// ListByOrder returns all tickets raised for an order
func (h *KitchenHandler) ListByOrder(c *gin.Context) {
	orderID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	tickets, err := h.kitchenService.ListByOrder(c.Request.Context(), orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Tickets retrieved", tickets)
}

// UpdateStatus moves a ticket along NEW, IN_PROGRESS, READY, DONE
func (h *KitchenHandler) UpdateStatus(c *gin.Context) {
	ticketID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.UpdateTicketStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.kitchenService.UpdateStatus(c.Request.Context(), ticketID, enum.KOTStatus(req.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket status updated", ticket)
}

// Reprint re-queues a ticket for its station printer
func (h *KitchenHandler) Reprint(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	ticketID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.TicketReasonRequest
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.kitchenService.Reprint(c.Request.Context(), a, ticketID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket queued for reprint", ticket)
}

// Cancel cancels a ticket with a mandatory reason
func (h *KitchenHandler) Cancel(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	ticketID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var req request.TicketReasonRequest
	if !bindJSON(c, &req) {
		return
	}

	ticket, err := h.kitchenService.Cancel(c.Request.Context(), a, ticketID, req.Reason)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ticket cancelled", ticket)
}

// CreateStation registers a preparation station
func (h *KitchenHandler) CreateStation(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req request.CreateStationRequest
	if !bindJSON(c, &req) {
		return
	}

	station, err := h.kitchenService.CreateStation(c.Request.Context(), a, &service.CreateStationInput{
		Name:      req.Name,
		PrinterID: req.PrinterID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Station created", station)
}

// ListStations returns the branch's preparation stations
func (h *KitchenHandler) ListStations(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}

	stations, err := h.kitchenService.ListStations(c.Request.Context(), a)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stations retrieved", stations)
}
