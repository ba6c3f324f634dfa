package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
)

func TestInvoicePrefix(t *testing.T) {
	day := time.Date(2025, time.March, 7, 23, 45, 0, 0, time.UTC)
	if got := InvoicePrefix(day); got != "INV-20250307" {
		t.Errorf("InvoicePrefix = %q, want INV-20250307", got)
	}
}

func TestInvoiceNumber(t *testing.T) {
	tests := []struct {
		prefix string
		seq    int64
		want   string
	}{
		{"INV-20250307", 1, "INV-20250307-0001"},
		{"INV-20250307", 42, "INV-20250307-0042"},
		{"INV-20250307", 9999, "INV-20250307-9999"},
		{"INV-20250307", 10000, "INV-20250307-10000"},
	}
	for _, tt := range tests {
		if got := InvoiceNumber(tt.prefix, tt.seq); got != tt.want {
			t.Errorf("InvoiceNumber(%q, %d) = %q, want %q", tt.prefix, tt.seq, got, tt.want)
		}
	}
}

func issueFixture(invoices *fakeInvoiceRepo) (*InvoiceService, *Actor, uuid.UUID) {
	orderID := uuid.New()
	branchID := uuid.New()
	orders := newFakeOrderRepo(&entity.Order{ID: orderID, BranchID: branchID, Status: enum.OrderClosed})
	lines := &fakeLineRepo{lines: []entity.OrderLine{taxedLine("419.05", "10.48", "10.47", "0")}}
	billing := NewBillingService(orders, lines, fakeSettingsRepo{})
	branches := &fakeBranchRepo{branch: &entity.Branch{ID: branchID, StateCode: "27"}}
	svc := NewInvoiceService(passTx{}, invoices, orders, branches, fakeSettingsRepo{}, nil, billing, nil, nil)
	actor := &Actor{UserID: uuid.New(), TenantID: uuid.New(), BranchID: branchID}
	return svc, actor, orderID
}

func TestIssueReturnsExistingInvoice(t *testing.T) {
	invoices := newFakeInvoiceRepo()
	svc, actor, orderID := issueFixture(invoices)
	existing := &entity.Invoice{ID: uuid.New(), OrderID: orderID, InvoiceNo: "INV-20250307-0001"}
	invoices.byOrder[orderID] = existing

	got, err := svc.Issue(context.Background(), actor, orderID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if got.ID != existing.ID || got.InvoiceNo != existing.InvoiceNo {
		t.Errorf("Issue returned %s, want existing %s", got.InvoiceNo, existing.InvoiceNo)
	}
	if invoices.creates != 0 {
		t.Errorf("creates = %d, want 0", invoices.creates)
	}
}

func TestIssueRetriesOnNumberCollision(t *testing.T) {
	invoices := newFakeInvoiceRepo()
	invoices.counts = []int64{7, 8}
	invoices.createErrs = []error{gorm.ErrDuplicatedKey}
	svc, actor, orderID := issueFixture(invoices)

	got, err := svc.Issue(context.Background(), actor, orderID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if invoices.creates != 2 {
		t.Errorf("creates = %d, want 2", invoices.creates)
	}
	if !strings.HasSuffix(got.InvoiceNo, "-0009") {
		t.Errorf("invoice no = %q, want next candidate -0009", got.InvoiceNo)
	}
	if stored := invoices.byOrder[orderID]; stored == nil || stored.InvoiceNo != got.InvoiceNo {
		t.Errorf("stored invoice does not match returned %q", got.InvoiceNo)
	}
}

func TestIssueYieldsToConcurrentWinner(t *testing.T) {
	invoices := newFakeInvoiceRepo()
	winner := &entity.Invoice{ID: uuid.New(), InvoiceNo: "INV-20250307-0007"}
	invoices.createErrs = []error{gorm.ErrDuplicatedKey}
	invoices.racingWinner = winner
	svc, actor, orderID := issueFixture(invoices)

	got, err := svc.Issue(context.Background(), actor, orderID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if got.ID != winner.ID {
		t.Errorf("Issue returned %s, want the invoice that won the race", got.InvoiceNo)
	}
	if invoices.creates != 1 {
		t.Errorf("creates = %d, want 1", invoices.creates)
	}
}

func TestIssueGivesUpAfterBoundedRetries(t *testing.T) {
	invoices := newFakeInvoiceRepo()
	invoices.createErrs = []error{gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey, gorm.ErrDuplicatedKey}
	svc, actor, orderID := issueFixture(invoices)

	_, err := svc.Issue(context.Background(), actor, orderID)
	if err == nil {
		t.Fatal("Issue succeeded, want conflict after exhausted retries")
	}
	if code := apperror.GetAppError(err).Code; code != 409 {
		t.Errorf("status = %d, want 409", code)
	}
	if invoices.creates != 3 {
		t.Errorf("creates = %d, want 3", invoices.creates)
	}
}

func TestIssuePropagatesInsertError(t *testing.T) {
	invoices := newFakeInvoiceRepo()
	invoices.createErrs = []error{errors.New("connection reset")}
	svc, actor, orderID := issueFixture(invoices)

	_, err := svc.Issue(context.Background(), actor, orderID)
	if err == nil || apperror.IsAppError(err) {
		t.Fatalf("err = %v, want the raw insert error", err)
	}
	if invoices.creates != 1 {
		t.Errorf("creates = %d, want 1, non-duplicate errors are not retried", invoices.creates)
	}
}
