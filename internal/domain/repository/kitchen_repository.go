package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
)

// KitchenTicketRepository defines data access for kitchen tickets.
type KitchenTicketRepository interface {
	Create(ctx context.Context, ticket *entity.KitchenTicket) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.KitchenTicket, error)
	// FindOpen returns the non-cancelled ticket for (order, station), or nil.
	FindOpen(ctx context.Context, orderID uuid.UUID, stationID *uuid.UUID) (*entity.KitchenTicket, error)
	ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.KitchenTicket, error)
	AddItem(ctx context.Context, item *entity.KitchenTicketItem) error
	Update(ctx context.Context, ticket *entity.KitchenTicket) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.KOTStatus) error
}

// KitchenStationRepository defines read access to stations and their printers.
type KitchenStationRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.KitchenStation, error)
	GetWithPrinter(ctx context.Context, id uuid.UUID) (*entity.KitchenStation, error)
	List(ctx context.Context, branchID uuid.UUID) ([]entity.KitchenStation, error)
	Create(ctx context.Context, station *entity.KitchenStation) error
}
