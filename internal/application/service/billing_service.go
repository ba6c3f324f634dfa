package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
	"github.com/rasoipos/rasoi-api/pkg/money"
)

// BillTotals is the full breakdown of an order bill. Every figure is 2dp
// half-up; Total is additionally rounded to the whole currency unit with the
// delta reported in RoundOff so receipts reconcile exactly.
type BillTotals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Tax      decimal.Decimal `json:"tax"`
	CGST     decimal.Decimal `json:"cgst"`
	SGST     decimal.Decimal `json:"sgst"`
	IGST     decimal.Decimal `json:"igst"`
	Service  decimal.Decimal `json:"service"`
	Packing  decimal.Decimal `json:"packing"`
	RoundOff decimal.Decimal `json:"round_off"`
	Total    decimal.Decimal `json:"total"`
}

// BillingService computes order totals from persisted lines and the branch
// settings in force at computation time.
type BillingService struct {
	orderRepo    repository.OrderRepository
	lineRepo     repository.OrderLineRepository
	settingsRepo repository.SettingsRepository
}

// NewBillingService creates a new billing service
func NewBillingService(
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineRepository,
	settingsRepo repository.SettingsRepository,
) *BillingService {
	return &BillingService{
		orderRepo:    orderRepo,
		lineRepo:     lineRepo,
		settingsRepo: settingsRepo,
	}
}

// ComputeBill loads the order's active lines and branch settings and returns
// the live totals. An order with no lines yields zeroed totals; composition
// in progress is not an error.
func (s *BillingService) ComputeBill(ctx context.Context, orderID uuid.UUID) (*BillTotals, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	lines, err := s.lineRepo.ActiveByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.GetByBranch(ctx, order.BranchID)
	if err != nil {
		return nil, err
	}

	totals := ComputeTotals(lines, settings)
	return &totals, nil
}

// ComputeTotals aggregates a bill from already-computed lines. Pure: no IO,
// deterministic for a given line set and settings snapshot.
func ComputeTotals(lines []entity.OrderLine, settings *entity.RestaurantSettings) BillTotals {
	subtotal := decimal.Zero
	cgst := decimal.Zero
	sgst := decimal.Zero
	igst := decimal.Zero

	for i := range lines {
		subtotal = subtotal.Add(lines[i].TaxableValue)
		cgst = cgst.Add(lines[i].CGST)
		sgst = sgst.Add(lines[i].SGST)
		igst = igst.Add(lines[i].IGST)
	}

	subtotal = money.Round2(subtotal)
	cgst = money.Round2(cgst)
	sgst = money.Round2(sgst)
	igst = money.Round2(igst)
	tax := money.Round2(cgst.Add(sgst).Add(igst))

	service := decimal.Zero
	packing := decimal.Zero
	if settings != nil {
		service = chargeAmount(settings.ServiceChargeMode, settings.ServiceChargeValue, subtotal)
		packing = chargeAmount(settings.PackingChargeMode, settings.PackingChargeValue, subtotal)
	}

	gross := subtotal.Add(tax).Add(service).Add(packing)
	total := money.RoundWhole(gross)
	roundOff := money.Round2(total.Sub(gross))

	return BillTotals{
		Subtotal: subtotal,
		Tax:      tax,
		CGST:     cgst,
		SGST:     sgst,
		IGST:     igst,
		Service:  service,
		Packing:  packing,
		RoundOff: roundOff,
		Total:    total,
	}
}

// chargeAmount resolves a NONE/PERCENT/FLAT charge. Percent is computed
// against the subtotal.
func chargeAmount(mode enum.ChargeMode, value, subtotal decimal.Decimal) decimal.Decimal {
	switch mode {
	case enum.ChargePercent:
		return money.Round2(subtotal.Mul(value).Div(decimal.NewFromInt(100)))
	case enum.ChargeFlat:
		return money.Round2(value)
	default:
		return decimal.Zero
	}
}
