package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
	"github.com/rasoipos/rasoi-api/pkg/authz"
	"github.com/rasoipos/rasoi-api/pkg/printagent"
)

const invoiceIssueAttempts = 3

// InvoiceService allocates date-scoped invoice numbers and handles
// reprints. Numbering tolerates gaps but never duplicates.
type InvoiceService struct {
	txr          repository.TxRunner
	invoiceRepo  repository.InvoiceRepository
	orderRepo    repository.OrderRepository
	branchRepo   repository.BranchRepository
	settingsRepo repository.SettingsRepository
	printerRepo  repository.PrinterRepository
	billing      *BillingService
	dispatcher   *printagent.Dispatcher
	audit        *AuditService
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	txr repository.TxRunner,
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.OrderRepository,
	branchRepo repository.BranchRepository,
	settingsRepo repository.SettingsRepository,
	printerRepo repository.PrinterRepository,
	billing *BillingService,
	dispatcher *printagent.Dispatcher,
	audit *AuditService,
) *InvoiceService {
	return &InvoiceService{
		txr:          txr,
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		branchRepo:   branchRepo,
		settingsRepo: settingsRepo,
		printerRepo:  printerRepo,
		billing:      billing,
		dispatcher:   dispatcher,
		audit:        audit,
	}
}

// InvoicePrefix formats the date-scoped number prefix, e.g. INV-20260831.
func InvoicePrefix(t time.Time) string {
	return "INV-" + t.Format("20060102")
}

// InvoiceNumber formats a candidate number under a prefix.
func InvoiceNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s-%04d", prefix, seq)
}

// Issue allocates an invoice for the order. Idempotent: an existing invoice
// is returned unchanged. On a numbering race the insert is retried with the
// next candidate, bounded to three attempts before giving up with Conflict.
func (s *InvoiceService) Issue(ctx context.Context, actor *Actor, orderID uuid.UUID) (*entity.Invoice, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	existing, err := s.invoiceRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	totals, err := s.billing.ComputeBill(ctx, orderID)
	if err != nil {
		return nil, err
	}

	placeOfSupply := ""
	if branch, err := s.branchRepo.GetByID(ctx, order.BranchID); err == nil && branch != nil {
		placeOfSupply = branch.StateCode
	}

	now := time.Now()
	prefix := InvoicePrefix(now)

	for attempt := 0; attempt < invoiceIssueAttempts; attempt++ {
		seed, err := s.invoiceRepo.CountByPrefix(ctx, prefix)
		if err != nil {
			return nil, err
		}

		cashierID := actor.UserID
		invoice := &entity.Invoice{
			OrderID:       orderID,
			InvoiceNo:     InvoiceNumber(prefix, seed+1),
			InvoiceDt:     &now,
			PlaceOfSupply: placeOfSupply,
			RoundOff:      totals.RoundOff,
			CashierUserID: &cashierID,
		}

		err = s.txr.InTx(ctx, func(ctx context.Context) error {
			return s.invoiceRepo.Create(ctx, invoice)
		})
		if err == nil {
			return invoice, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// another cashier took this number; a racing issue for the same
		// order may also have landed, so honor idempotence first
		winner, ferr := s.invoiceRepo.GetByOrderID(ctx, orderID)
		if ferr != nil {
			return nil, ferr
		}
		if winner != nil {
			return winner, nil
		}
	}

	return nil, apperror.NewConflictError("Invoice number allocation failed, retry the request")
}

// Get returns an invoice by id.
func (s *InvoiceService) Get(ctx context.Context, invoiceID uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// Reprint bumps the reprint counter and sends the invoice to the branch
// billing printer. The stored invoice_no never changes.
func (s *InvoiceService) Reprint(ctx context.Context, actor *Actor, invoiceID uuid.UUID, reason string) (*entity.Invoice, error) {
	if !authz.Allowed(actor.Roles, actor.Permissions, authz.PermReprint) {
		return nil, apperror.NewPermissionDeniedError(authz.PermReprint)
	}
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	if err := s.invoiceRepo.IncrementReprint(ctx, invoice.ID); err != nil {
		return nil, err
	}
	invoice.ReprintCount++

	s.enqueueInvoice(ctx, actor, invoice)
	s.audit.Record(actor.TenantID, actor.UserID, "invoice", invoice.ID, "REPRINT", reason, "", "")
	return invoice, nil
}

func (s *InvoiceService) enqueueInvoice(ctx context.Context, actor *Actor, invoice *entity.Invoice) {
	settings, err := s.settingsRepo.GetByBranch(ctx, actor.BranchID)
	if err != nil || settings == nil || settings.BillingPrinterID == nil {
		return
	}
	printer, err := s.printerRepo.GetByID(ctx, *settings.BillingPrinterID)
	if err != nil || printer == nil {
		return
	}
	s.dispatcher.Enqueue(printagent.Job{
		Type: printagent.JobInvoice,
		URL:  printer.ConnectionURL,
		Payload: map[string]interface{}{
			"invoice_no": invoice.InvoiceNo,
			"order_id":   invoice.OrderID,
			"round_off":  invoice.RoundOff,
			"footer":     settings.InvoiceFooter,
		},
	})
}
