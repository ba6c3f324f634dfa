package request

import "github.com/google/uuid"

// CreateStationRequest represents a new kitchen preparation station
type CreateStationRequest struct {
	Name      string     `json:"name" binding:"required,min=2,max=100"`
	PrinterID *uuid.UUID `json:"printer_id"`
}

// UpdateTicketStatusRequest moves a kitchen ticket along its lifecycle
type UpdateTicketStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// TicketReasonRequest carries the mandatory reason for a ticket cancel
// or the optional reason for a reprint
type TicketReasonRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}
