package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
	"github.com/rasoipos/rasoi-api/pkg/authz"
	"github.com/rasoipos/rasoi-api/pkg/printagent"
)

// KitchenService routes order lines onto station tickets and manages the
// ticket lifecycle.
type KitchenService struct {
	ticketRepo  repository.KitchenTicketRepository
	stationRepo repository.KitchenStationRepository
	dispatcher  *printagent.Dispatcher
	audit       *AuditService
}

// NewKitchenService creates a new kitchen service
func NewKitchenService(
	ticketRepo repository.KitchenTicketRepository,
	stationRepo repository.KitchenStationRepository,
	dispatcher *printagent.Dispatcher,
	audit *AuditService,
) *KitchenService {
	return &KitchenService{
		ticketRepo:  ticketRepo,
		stationRepo: stationRepo,
		dispatcher:  dispatcher,
		audit:       audit,
	}
}

// RouteLine appends the line to the order's open ticket for the station,
// creating the ticket first when none exists. Runs inside the caller's
// transaction; a concurrent create races into the partial unique index and
// surfaces as gorm.ErrDuplicatedKey for the caller to retry.
func (s *KitchenService) RouteLine(ctx context.Context, orderID uuid.UUID, stationID *uuid.UUID, lineID uuid.UUID, qty decimal.Decimal, note string) (*entity.KitchenTicket, error) {
	ticket, err := s.ticketRepo.FindOpen(ctx, orderID, stationID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		existing, err := s.ticketRepo.ListByOrderID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		ticket = &entity.KitchenTicket{
			OrderID:       orderID,
			TicketNo:      int64(len(existing)) + 1,
			TargetStation: stationID,
			Status:        enum.KOTNew,
		}
		if err := s.ticketRepo.Create(ctx, ticket); err != nil {
			return nil, err
		}
	}

	item := &entity.KitchenTicketItem{
		TicketID:    ticket.ID,
		OrderLineID: lineID,
		Qty:         qty,
		Note:        note,
	}
	if err := s.ticketRepo.AddItem(ctx, item); err != nil {
		return nil, err
	}
	return ticket, nil
}

// NotifyTicket sends the ticket to its station's printer agent. Call after
// the owning transaction committed; delivery is best-effort.
func (s *KitchenService) NotifyTicket(ctx context.Context, ticketID uuid.UUID) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil || ticket == nil {
		return
	}
	if ticket.TargetStation == nil {
		return
	}
	station, err := s.stationRepo.GetWithPrinter(ctx, *ticket.TargetStation)
	if err != nil || station == nil || station.Printer == nil {
		return
	}

	items := make([]map[string]interface{}, 0, len(ticket.Items))
	for _, it := range ticket.Items {
		items = append(items, map[string]interface{}{
			"order_line_id": it.OrderLineID,
			"qty":           it.Qty,
			"note":          it.Note,
		})
	}
	s.dispatcher.Enqueue(printagent.Job{
		Type: printagent.JobKOT,
		URL:  station.Printer.ConnectionURL,
		Payload: map[string]interface{}{
			"ticket_no": ticket.TicketNo,
			"order_id":  ticket.OrderID,
			"station":   station.Name,
			"items":     items,
		},
	})
}

// Get returns a ticket with its items.
func (s *KitchenService) Get(ctx context.Context, ticketID uuid.UUID) (*entity.KitchenTicket, error) {
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Kitchen ticket")
	}
	return ticket, nil
}

// ListByOrder returns the order's tickets in sequence order.
func (s *KitchenService) ListByOrder(ctx context.Context, orderID uuid.UUID) ([]entity.KitchenTicket, error) {
	return s.ticketRepo.ListByOrderID(ctx, orderID)
}

// Reprint bumps the reprint counter and re-sends the ticket to its station
// printer. Never changes ticket status.
func (s *KitchenService) Reprint(ctx context.Context, actor *Actor, ticketID uuid.UUID, reason string) (*entity.KitchenTicket, error) {
	if !authz.Allowed(actor.Roles, actor.Permissions, authz.PermReprint) {
		return nil, apperror.NewPermissionDeniedError(authz.PermReprint)
	}
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Kitchen ticket")
	}
	if ticket.Status == enum.KOTCancelled {
		return nil, apperror.NewConflictError("Cannot reprint a cancelled ticket")
	}

	ticket.ReprintCount++
	now := time.Now()
	ticket.PrintedAt = &now
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.NotifyTicket(ctx, ticket.ID)
	s.audit.Record(actor.TenantID, actor.UserID, "kitchen_ticket", ticket.ID, "REPRINT", reason, "", "")
	return ticket, nil
}

// Cancel terminally cancels a ticket with a mandatory reason.
func (s *KitchenService) Cancel(ctx context.Context, actor *Actor, ticketID uuid.UUID, reason string) (*entity.KitchenTicket, error) {
	if !authz.Allowed(actor.Roles, actor.Permissions, authz.PermVoid) {
		return nil, apperror.NewPermissionDeniedError(authz.PermVoid)
	}
	if reason == "" {
		return nil, apperror.NewInvalidArgumentError("Cancel reason is required")
	}
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Kitchen ticket")
	}
	if !ticket.Status.CanTransitionTo(enum.KOTCancelled) {
		return nil, apperror.NewConflictError("Ticket is already terminal")
	}

	ticket.Status = enum.KOTCancelled
	ticket.CancelReason = reason
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		return nil, err
	}

	s.audit.Record(actor.TenantID, actor.UserID, "kitchen_ticket", ticket.ID, "CANCEL", reason, "", "")
	return ticket, nil
}

// UpdateStatus advances a ticket through NEW → IN_PROGRESS → READY → DONE.
func (s *KitchenService) UpdateStatus(ctx context.Context, ticketID uuid.UUID, status enum.KOTStatus) (*entity.KitchenTicket, error) {
	if !status.Valid() {
		return nil, apperror.NewInvalidArgumentError("Unknown ticket status")
	}
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, apperror.NewNotFoundError("Kitchen ticket")
	}
	if !ticket.Status.CanTransitionTo(status) {
		return nil, apperror.NewConflictError("Illegal ticket status transition")
	}

	if err := s.ticketRepo.UpdateStatus(ctx, ticket.ID, status); err != nil {
		return nil, err
	}
	ticket.Status = status
	return ticket, nil
}

// CreateStationInput represents the create station input
type CreateStationInput struct {
	Name      string
	PrinterID *uuid.UUID
}

// CreateStation registers a preparation station for the actor's branch.
func (s *KitchenService) CreateStation(ctx context.Context, actor *Actor, input *CreateStationInput) (*entity.KitchenStation, error) {
	if input.Name == "" {
		return nil, apperror.NewInvalidArgumentError("Station name is required")
	}
	station := &entity.KitchenStation{
		TenantID:  actor.TenantID,
		BranchID:  actor.BranchID,
		Name:      input.Name,
		PrinterID: input.PrinterID,
	}
	if err := s.stationRepo.Create(ctx, station); err != nil {
		return nil, err
	}
	return station, nil
}

// ListStations lists the branch's stations.
func (s *KitchenService) ListStations(ctx context.Context, actor *Actor) ([]entity.KitchenStation, error) {
	return s.stationRepo.List(ctx, actor.BranchID)
}
