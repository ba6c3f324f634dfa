package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
)

// passTx runs fn without a real transaction. commitErr, when set, is
// returned after fn succeeds to simulate a commit failure.
type passTx struct {
	commitErr error
}

func (r passTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return r.commitErr
}

type fakeOrderRepo struct {
	repository.OrderRepository
	orders  map[uuid.UUID]*entity.Order
	updates int
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	m := make(map[uuid.UUID]*entity.Order, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &fakeOrderRepo{orders: m}
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	cp := *order
	f.orders[order.ID] = &cp
	f.updates++
	return nil
}

type fakeLineRepo struct {
	repository.OrderLineRepository
	lines []entity.OrderLine
}

func (f *fakeLineRepo) ActiveByOrderID(ctx context.Context, orderID uuid.UUID) ([]entity.OrderLine, error) {
	return f.lines, nil
}

type fakePaymentRepo struct {
	repository.PaymentRepository
	payments []entity.Payment
}

func (f *fakePaymentRepo) Create(ctx context.Context, p *entity.Payment) error {
	f.payments = append(f.payments, *p)
	return nil
}

func (f *fakePaymentRepo) SumForOrder(ctx context.Context, orderID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range f.payments {
		if p.OrderID == orderID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) GetByBranch(ctx context.Context, branchID uuid.UUID) (*entity.RestaurantSettings, error) {
	return nil, nil
}

func (fakeSettingsRepo) Upsert(ctx context.Context, settings *entity.RestaurantSettings) error {
	return nil
}

type fakeBranchRepo struct {
	repository.BranchRepository
	branch *entity.Branch
}

func (f *fakeBranchRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Branch, error) {
	return f.branch, nil
}

type fakeAuditRepo struct {
	entries chan *entity.AuditLog
}

func newFakeAuditRepo() *fakeAuditRepo {
	return &fakeAuditRepo{entries: make(chan *entity.AuditLog, 8)}
}

func (f *fakeAuditRepo) Create(ctx context.Context, log *entity.AuditLog) error {
	f.entries <- log
	return nil
}

func (f *fakeAuditRepo) ListByEntity(ctx context.Context, tenantID uuid.UUID, entityName string, entityID uuid.UUID) ([]entity.AuditLog, error) {
	return nil, nil
}

// fakeInvoiceRepo scripts Create outcomes per call through createErrs.
// racingWinner, when set, lands as the order's invoice on a duplicate-key
// failure, like a concurrent issue winning the insert.
type fakeInvoiceRepo struct {
	repository.InvoiceRepository
	byOrder      map[uuid.UUID]*entity.Invoice
	counts       []int64
	createErrs   []error
	creates      int
	racingWinner *entity.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{byOrder: make(map[uuid.UUID]*entity.Invoice)}
}

func (f *fakeInvoiceRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Invoice, error) {
	return f.byOrder[orderID], nil
}

func (f *fakeInvoiceRepo) CountByPrefix(ctx context.Context, prefix string) (int64, error) {
	if len(f.counts) == 0 {
		return 0, nil
	}
	n := f.counts[0]
	if len(f.counts) > 1 {
		f.counts = f.counts[1:]
	}
	return n, nil
}

func (f *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	f.creates++
	if len(f.createErrs) > 0 {
		err := f.createErrs[0]
		f.createErrs = f.createErrs[1:]
		if err != nil {
			if f.racingWinner != nil {
				f.byOrder[invoice.OrderID] = f.racingWinner
			}
			return err
		}
	}
	f.byOrder[invoice.OrderID] = invoice
	return nil
}
