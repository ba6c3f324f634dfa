package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	"github.com/rasoipos/rasoi-api/pkg/pagination"
)

// OrderFilterParams holds filtering options for listing orders.
type OrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	Channel    *enum.OrderChannel
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
}

// OrderRepository defines data access for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	NextOrderNo(ctx context.Context, branchID uuid.UUID) (int64, error)
}

// OrderLineRepository defines data access for order lines.
type OrderLineRepository interface {
	Create(ctx context.Context, line *entity.OrderLine) error
	CreateModifiers(ctx context.Context, mods []entity.OrderLineModifier) error
	CreateIngredients(ctx context.Context, snapshot []entity.OrderLineIngredient) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderLine, error)
	GetWithIngredients(ctx context.Context, id uuid.UUID) (*entity.OrderLine, error)
	ActiveByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLine, error)
	Update(ctx context.Context, line *entity.OrderLine) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// PaymentRepository defines data access for the append-only payment ledger.
type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error)
	SumForOrder(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error)
}

// InvoiceRepository defines data access for invoices.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error)
	CountByPrefix(ctx context.Context, prefix string) (int64, error)
	IncrementReprint(ctx context.Context, id uuid.UUID) error
}
