package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	domainRepo "github.com/rasoipos/rasoi-api/internal/domain/repository"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return conn(ctx, r.db).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := conn(ctx, r.db).
		Scopes(TenantScope(ctx)).
		Preload("Customer").
		Preload("Lines").
		Preload("Lines.Item").
		Preload("Lines.Modifiers").
		Preload("Payments").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := conn(ctx, r.db).Model(&entity.Order{}).Scopes(TenantScope(ctx))

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Channel != nil {
		query = query.Where("channel = ?", *params.Channel)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.StartDate != nil {
		query = query.Where("opened_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("opened_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Customer").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return conn(ctx, r.db).Save(order).Error
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return conn(ctx, r.db).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// NextOrderNo reserves the next sequence value per branch. Soft-deleted
// orders still occupy their number, so the query goes through Unscoped.
func (r *orderRepository) NextOrderNo(ctx context.Context, branchID uuid.UUID) (int64, error) {
	var max int64
	err := conn(ctx, r.db).Model(&entity.Order{}).Unscoped().
		Where("branch_id = ?", branchID).
		Select("COALESCE(MAX(order_no), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

type orderLineRepository struct {
	db *gorm.DB
}

// NewOrderLineRepository creates a new order line repository
func NewOrderLineRepository(db *gorm.DB) domainRepo.OrderLineRepository {
	return &orderLineRepository{db: db}
}

func (r *orderLineRepository) Create(ctx context.Context, line *entity.OrderLine) error {
	return conn(ctx, r.db).Create(line).Error
}

func (r *orderLineRepository) CreateModifiers(ctx context.Context, mods []entity.OrderLineModifier) error {
	if len(mods) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&mods).Error
}

func (r *orderLineRepository) CreateIngredients(ctx context.Context, snapshot []entity.OrderLineIngredient) error {
	if len(snapshot) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&snapshot).Error
}

func (r *orderLineRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderLine, error) {
	var line entity.OrderLine
	err := conn(ctx, r.db).First(&line, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &line, err
}

func (r *orderLineRepository) GetWithIngredients(ctx context.Context, id uuid.UUID) (*entity.OrderLine, error) {
	var line entity.OrderLine
	err := conn(ctx, r.db).
		Preload("Modifiers").
		Preload("Ingredients").
		First(&line, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &line, err
}

func (r *orderLineRepository) ActiveByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := conn(ctx, r.db).
		Preload("Item").
		Preload("Modifiers").
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&lines).Error
	return lines, err
}

func (r *orderLineRepository) Update(ctx context.Context, line *entity.OrderLine) error {
	return conn(ctx, r.db).Save(line).Error
}

func (r *orderLineRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.OrderLine{}, "id = ?", id).Error
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domainRepo.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	return conn(ctx, r.db).Create(payment).Error
}

func (r *paymentRepository) ListByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := conn(ctx, r.db).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) SumForOrder(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := conn(ctx, r.db).Model(&entity.Payment{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, err
	}
	return sum.Decimal, nil
}

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return conn(ctx, r.db).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := conn(ctx, r.db).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := conn(ctx, r.db).First(&invoice, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.Invoice{}).Unscoped().
		Where("invoice_no LIKE ?", prefix+"%").
		Count(&count).Error
	return count, err
}

func (r *invoiceRepository) IncrementReprint(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Model(&entity.Invoice{}).
		Where("id = ?", id).
		UpdateColumn("reprint_count", gorm.Expr("reprint_count + 1")).Error
}
