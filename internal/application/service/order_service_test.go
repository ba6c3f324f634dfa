package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
	"github.com/rasoipos/rasoi-api/pkg/authz"
)

func payFixture(status enum.OrderStatus, txr repository.TxRunner, audit *AuditService) (*OrderService, *fakeOrderRepo, *fakePaymentRepo, *Actor, uuid.UUID) {
	orderID := uuid.New()
	orders := newFakeOrderRepo(&entity.Order{ID: orderID, BranchID: uuid.New(), Status: status})
	// one line totalling 440 after tax
	lines := &fakeLineRepo{lines: []entity.OrderLine{taxedLine("419.05", "10.48", "10.47", "0")}}
	payments := &fakePaymentRepo{}
	billing := NewBillingService(orders, lines, fakeSettingsRepo{})
	svc := NewOrderService(
		txr, orders, lines, payments, nil, nil, nil, nil, nil, nil,
		fakeSettingsRepo{}, nil, billing, nil, audit, nil,
	)
	actor := &Actor{UserID: uuid.New(), TenantID: uuid.New(), Permissions: []string{authz.PermVoid}}
	return svc, orders, payments, actor, orderID
}

func TestPayPartialLeavesOrderOpen(t *testing.T) {
	svc, orders, _, actor, orderID := payFixture(enum.OrderOpen, passTx{}, nil)

	res, err := svc.Pay(context.Background(), actor, orderID, &PayInput{Mode: enum.PayCash, Amount: d("200")})
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if res.Closed {
		t.Error("partial payment closed the order")
	}
	if !res.Paid.Equal(d("200")) {
		t.Errorf("paid = %s, want 200", res.Paid)
	}
	if !res.Due.Equal(d("240")) {
		t.Errorf("due = %s, want 240", res.Due)
	}
	if orders.updates != 0 {
		t.Errorf("order updated %d times, want 0", orders.updates)
	}
	if got := orders.orders[orderID].Status; got != enum.OrderOpen {
		t.Errorf("status = %s, want OPEN", got)
	}
}

func TestPayCoveringPaymentClosesOrder(t *testing.T) {
	svc, orders, payments, actor, orderID := payFixture(enum.OrderOpen, passTx{}, nil)
	payments.payments = []entity.Payment{{OrderID: orderID, Mode: enum.PayCash, Amount: d("200")}}

	res, err := svc.Pay(context.Background(), actor, orderID, &PayInput{Mode: enum.PayUPI, Amount: d("240")})
	if err != nil {
		t.Fatalf("Pay: %v", err)
	}
	if !res.Closed {
		t.Error("covering payment did not close the order")
	}
	if !res.Due.Equal(d("0")) {
		t.Errorf("due = %s, want 0", res.Due)
	}

	stored := orders.orders[orderID]
	if stored.Status != enum.OrderClosed {
		t.Errorf("status = %s, want CLOSED", stored.Status)
	}
	if stored.ClosedAt == nil {
		t.Error("closed_at not stamped")
	}
	if stored.ClosedByUserID == nil || *stored.ClosedByUserID != actor.UserID {
		t.Error("closed_by not stamped with the paying cashier")
	}
}

func TestPayTerminalOrderConflict(t *testing.T) {
	for _, status := range []enum.OrderStatus{enum.OrderClosed, enum.OrderVoid} {
		t.Run(string(status), func(t *testing.T) {
			svc, _, payments, actor, orderID := payFixture(status, passTx{}, nil)

			_, err := svc.Pay(context.Background(), actor, orderID, &PayInput{Mode: enum.PayCash, Amount: d("10")})
			if err == nil {
				t.Fatal("payment on a terminal order succeeded")
			}
			if code := apperror.GetAppError(err).Code; code != 409 {
				t.Errorf("status = %d, want 409", code)
			}
			if len(payments.payments) != 0 {
				t.Errorf("payment rows = %d, want 0", len(payments.payments))
			}
		})
	}
}

func TestPayRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input PayInput
	}{
		{"unknown mode", PayInput{Mode: "CHEQUE", Amount: d("10")}},
		{"zero amount", PayInput{Mode: enum.PayCash, Amount: d("0")}},
		{"negative amount", PayInput{Mode: enum.PayCash, Amount: d("-5")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, actor, orderID := payFixture(enum.OrderOpen, passTx{}, nil)
			_, err := svc.Pay(context.Background(), actor, orderID, &tt.input)
			if code := apperror.GetAppError(err).Code; code != 400 {
				t.Errorf("status = %d, want 400", code)
			}
		})
	}
}

func TestVoidRecordsAuditAfterCommit(t *testing.T) {
	auditRepo := newFakeAuditRepo()
	svc, orders, _, actor, orderID := payFixture(enum.OrderOpen, passTx{}, NewAuditService(auditRepo))

	order, err := svc.Void(context.Background(), actor, orderID, "wrong table")
	if err != nil {
		t.Fatalf("Void: %v", err)
	}
	if order.Status != enum.OrderVoid {
		t.Errorf("status = %s, want VOID", order.Status)
	}
	if got := orders.orders[orderID].Status; got != enum.OrderVoid {
		t.Errorf("stored status = %s, want VOID", got)
	}

	select {
	case entry := <-auditRepo.entries:
		if entry.Action != "VOID" || entry.Before != "OPEN" || entry.After != "VOID" {
			t.Errorf("audit entry = %s %s->%s, want VOID OPEN->VOID", entry.Action, entry.Before, entry.After)
		}
		if entry.Reason != "wrong table" {
			t.Errorf("reason = %q, want the void reason", entry.Reason)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no audit entry recorded for a committed void")
	}
}

func TestVoidFailedCommitRecordsNoAudit(t *testing.T) {
	auditRepo := newFakeAuditRepo()
	svc, _, _, actor, orderID := payFixture(enum.OrderOpen, passTx{commitErr: errors.New("deadlock")}, NewAuditService(auditRepo))

	if _, err := svc.Void(context.Background(), actor, orderID, "wrong table"); err == nil {
		t.Fatal("Void succeeded despite failed commit")
	}

	time.Sleep(50 * time.Millisecond)
	select {
	case entry := <-auditRepo.entries:
		t.Fatalf("audit entry %s recorded for a rolled-back void", entry.Action)
	default:
	}
}
