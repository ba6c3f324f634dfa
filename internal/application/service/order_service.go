package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
	"github.com/rasoipos/rasoi-api/pkg/authz"
	"github.com/rasoipos/rasoi-api/pkg/gst"
	"github.com/rasoipos/rasoi-api/pkg/money"
	"github.com/rasoipos/rasoi-api/pkg/printagent"
)

// OrderService drives the order lifecycle: composition, discounts, voids,
// payments and closure. Every mutation runs inside one transaction so a
// failure partway leaves no partial line/stock/ticket state behind.
type OrderService struct {
	txr           repository.TxRunner
	orderRepo     repository.OrderRepository
	lineRepo      repository.OrderLineRepository
	paymentRepo   repository.PaymentRepository
	menuItemRepo  repository.MenuItemRepository
	modifierRepo  repository.ModifierRepository
	recipeRepo    repository.RecipeRepository
	stockMoveRepo repository.StockMoveRepository
	branchRepo    repository.BranchRepository
	customerRepo  repository.CustomerRepository
	settingsRepo  repository.SettingsRepository
	printerRepo   repository.PrinterRepository
	billing       *BillingService
	kitchen       *KitchenService
	audit         *AuditService
	dispatcher    *printagent.Dispatcher
}

// NewOrderService creates a new order service
func NewOrderService(
	txr repository.TxRunner,
	orderRepo repository.OrderRepository,
	lineRepo repository.OrderLineRepository,
	paymentRepo repository.PaymentRepository,
	menuItemRepo repository.MenuItemRepository,
	modifierRepo repository.ModifierRepository,
	recipeRepo repository.RecipeRepository,
	stockMoveRepo repository.StockMoveRepository,
	branchRepo repository.BranchRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	printerRepo repository.PrinterRepository,
	billing *BillingService,
	kitchen *KitchenService,
	audit *AuditService,
	dispatcher *printagent.Dispatcher,
) *OrderService {
	return &OrderService{
		txr:           txr,
		orderRepo:     orderRepo,
		lineRepo:      lineRepo,
		paymentRepo:   paymentRepo,
		menuItemRepo:  menuItemRepo,
		modifierRepo:  modifierRepo,
		recipeRepo:    recipeRepo,
		stockMoveRepo: stockMoveRepo,
		branchRepo:    branchRepo,
		customerRepo:  customerRepo,
		settingsRepo:  settingsRepo,
		printerRepo:   printerRepo,
		billing:       billing,
		kitchen:       kitchen,
		audit:         audit,
		dispatcher:    dispatcher,
	}
}

// OpenOrderInput represents the open order input
type OpenOrderInput struct {
	Channel    enum.OrderChannel
	Provider   enum.OnlineProvider
	TableID    *uuid.UUID
	CustomerID *uuid.UUID
	Pax        int
	Note       string
	DeviceID   string
}

// Open creates a new order in OPEN, stamping the opener and timestamp.
func (s *OrderService) Open(ctx context.Context, actor *Actor, input *OpenOrderInput) (*entity.Order, error) {
	if !input.Channel.Valid() {
		return nil, apperror.NewInvalidArgumentError("Unknown order channel")
	}
	if input.Channel == enum.ChannelOnline && !input.Provider.Valid() {
		return nil, apperror.NewInvalidArgumentError("Online orders require a provider")
	}
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
	}

	now := time.Now()
	openerID := actor.UserID
	order := &entity.Order{
		TenantID:       actor.TenantID,
		BranchID:       actor.BranchID,
		Channel:        input.Channel,
		Provider:       input.Provider,
		Status:         enum.OrderOpen,
		TableID:        input.TableID,
		CustomerID:     input.CustomerID,
		OpenedByUserID: &openerID,
		Pax:            input.Pax,
		Note:           input.Note,
		SourceDeviceID: input.DeviceID,
		OpenedAt:       &now,
	}

	err := s.txr.InTx(ctx, func(ctx context.Context) error {
		orderNo, err := s.orderRepo.NextOrderNo(ctx, actor.BranchID)
		if err != nil {
			return err
		}
		order.OrderNo = orderNo
		return s.orderRepo.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// AddLineInput represents the add line input
type AddLineInput struct {
	ItemID      uuid.UUID
	VariantID   *uuid.UUID
	Qty         decimal.Decimal
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	ModifierIDs []uuid.UUID
	Note        string
}

// AddLine composes a line onto an open order: tax snapshot, recipe
// snapshot, SALE stock deduction and kitchen routing, all in one
// transaction. The KOT print job fires only after commit. A kitchen-ticket
// race with a concurrent AddLine aborts the transaction on the partial
// unique index and the whole operation is retried once.
func (s *OrderService) AddLine(ctx context.Context, actor *Actor, orderID uuid.UUID, input *AddLineInput) (*entity.OrderLine, error) {
	if !input.Qty.IsPositive() {
		return nil, apperror.NewInvalidArgumentError("Quantity must be positive")
	}
	if input.UnitPrice.IsNegative() || input.Discount.IsNegative() {
		return nil, apperror.NewInvalidArgumentError("Price and discount must not be negative")
	}

	var line *entity.OrderLine
	var ticketID *uuid.UUID

	attempt := func() error {
		line, ticketID = nil, nil
		return s.txr.InTx(ctx, func(ctx context.Context) error {
			order, err := s.openOrder(ctx, orderID)
			if err != nil {
				return err
			}

			item, err := s.menuItemRepo.GetByID(ctx, input.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return apperror.NewNotFoundError("Menu item")
			}
			if item.StockOut {
				return apperror.NewConflictError("Item is marked stock out")
			}

			modifiers, err := s.modifierRepo.GetByIDs(ctx, input.ModifierIDs)
			if err != nil {
				return err
			}
			if len(modifiers) != len(input.ModifierIDs) {
				return apperror.NewNotFoundError("Modifier")
			}

			// modifier deltas fold into the effective unit price so the
			// line base stays qty*unit_price - discount
			unitPrice := money.Round2(input.UnitPrice)
			for _, m := range modifiers {
				unitPrice = unitPrice.Add(m.PriceDelta)
			}

			qty := money.Round3(input.Qty)
			base := qty.Mul(unitPrice).Sub(input.Discount)
			if base.IsNegative() {
				return apperror.NewInvalidArgumentError("Discount exceeds line amount")
			}

			branchState, customerState, err := s.stateCodes(ctx, order)
			if err != nil {
				return err
			}
			lineTax := gst.ComputeLine(base, item.GSTRate, item.TaxInclusive)
			split := gst.SplitTax(branchState, customerState, lineTax.TaxTotal)

			line = &entity.OrderLine{
				OrderID:      order.ID,
				ItemID:       item.ID,
				VariantID:    input.VariantID,
				Qty:          qty,
				UnitPrice:    unitPrice,
				LineDiscount: money.Round2(input.Discount),
				GSTRate:      item.GSTRate,
				TaxableValue: lineTax.Taxable,
				CGST:         split.CGST,
				SGST:         split.SGST,
				IGST:         split.IGST,
			}
			if err := s.lineRepo.Create(ctx, line); err != nil {
				return err
			}

			mods := make([]entity.OrderLineModifier, 0, len(modifiers))
			for _, m := range modifiers {
				mods = append(mods, entity.OrderLineModifier{
					OrderLineID: line.ID,
					ModifierID:  m.ID,
					Qty:         decimal.NewFromInt(1),
					PriceDelta:  m.PriceDelta,
				})
			}
			if err := s.lineRepo.CreateModifiers(ctx, mods); err != nil {
				return err
			}

			recipe, err := s.recipeRepo.GetByItemID(ctx, item.ID)
			if err != nil {
				return err
			}
			snapshot := make([]entity.OrderLineIngredient, 0, len(recipe))
			components := make([]RecipeComponent, 0, len(recipe))
			for _, r := range recipe {
				snapshot = append(snapshot, entity.OrderLineIngredient{
					OrderLineID:  line.ID,
					IngredientID: r.IngredientID,
					QtyPerUnit:   r.Qty,
				})
				components = append(components, RecipeComponent{
					IngredientID: r.IngredientID,
					QtyPerUnit:   r.Qty,
				})
			}
			if err := s.lineRepo.CreateIngredients(ctx, snapshot); err != nil {
				return err
			}
			if err := s.stockMoveRepo.CreateBatch(ctx, SaleMoves(order.ID, line.ID, qty, components)); err != nil {
				return err
			}

			if item.KitchenStationID != nil {
				ticket, err := s.kitchen.RouteLine(ctx, order.ID, item.KitchenStationID, line.ID, qty, input.Note)
				if err != nil {
					return err
				}
				ticketID = &ticket.ID
			}
			return nil
		})
	}

	err := attempt()
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = attempt()
	}
	if err != nil {
		return nil, err
	}

	if ticketID != nil {
		s.kitchen.NotifyTicket(ctx, *ticketID)
	}
	return line, nil
}

// RemoveLine soft-deletes a line and reverses its stock deduction from the
// recipe snapshot taken at add time. Tickets already sent are not retracted.
func (s *OrderService) RemoveLine(ctx context.Context, actor *Actor, orderID, lineID uuid.UUID, reason string) error {
	if reason == "" {
		return apperror.NewInvalidArgumentError("Removal reason is required")
	}

	err := s.txr.InTx(ctx, func(ctx context.Context) error {
		if _, err := s.openOrder(ctx, orderID); err != nil {
			return err
		}

		line, err := s.lineRepo.GetWithIngredients(ctx, lineID)
		if err != nil {
			return err
		}
		if line == nil {
			return apperror.NewNotFoundError("Order line")
		}
		if line.OrderID != orderID {
			return apperror.NewInvalidArgumentError("Line does not belong to this order")
		}

		if err := s.lineRepo.SoftDelete(ctx, line.ID); err != nil {
			return err
		}

		components := make([]RecipeComponent, 0, len(line.Ingredients))
		for _, ing := range line.Ingredients {
			components = append(components, RecipeComponent{
				IngredientID: ing.IngredientID,
				QtyPerUnit:   ing.QtyPerUnit,
			})
		}
		return s.stockMoveRepo.CreateBatch(ctx, ReversalMoves(orderID, line.ID, line.Qty, components, reason))
	})
	if err != nil {
		return err
	}

	s.audit.Record(actor.TenantID, actor.UserID, "order_line", lineID, "REMOVE", reason, "", "")
	return nil
}

// ApplyDiscount overwrites a line's discount and refreshes its tax figures.
// Requires the DISCOUNT permission.
func (s *OrderService) ApplyDiscount(ctx context.Context, actor *Actor, orderID, lineID uuid.UUID, discount decimal.Decimal, reason string) (*entity.OrderLine, error) {
	if !authz.Allowed(actor.Roles, actor.Permissions, authz.PermDiscount) {
		return nil, apperror.NewPermissionDeniedError(authz.PermDiscount)
	}
	if discount.IsNegative() {
		return nil, apperror.NewInvalidArgumentError("Discount must not be negative")
	}

	var line *entity.OrderLine
	err := s.txr.InTx(ctx, func(ctx context.Context) error {
		order, err := s.openOrder(ctx, orderID)
		if err != nil {
			return err
		}

		line, err = s.lineRepo.GetByID(ctx, lineID)
		if err != nil {
			return err
		}
		if line == nil {
			return apperror.NewNotFoundError("Order line")
		}
		if line.OrderID != orderID {
			return apperror.NewInvalidArgumentError("Line does not belong to this order")
		}

		base := line.Qty.Mul(line.UnitPrice).Sub(discount)
		if base.IsNegative() {
			return apperror.NewInvalidArgumentError("Discount exceeds line amount")
		}

		item, err := s.menuItemRepo.GetByID(ctx, line.ItemID)
		if err != nil {
			return err
		}
		inclusive := true
		if item != nil {
			inclusive = item.TaxInclusive
		}

		branchState, customerState, err := s.stateCodes(ctx, order)
		if err != nil {
			return err
		}
		lineTax := gst.ComputeLine(base, line.GSTRate, inclusive)
		split := gst.SplitTax(branchState, customerState, lineTax.TaxTotal)

		line.LineDiscount = money.Round2(discount)
		line.DiscountReason = reason
		line.TaxableValue = lineTax.Taxable
		line.CGST = split.CGST
		line.SGST = split.SGST
		line.IGST = split.IGST
		return s.lineRepo.Update(ctx, line)
	})
	if err != nil {
		return nil, err
	}

	s.audit.Record(actor.TenantID, actor.UserID, "order_line", lineID, "DISCOUNT", reason, "", discount.StringFixed(2))
	return line, nil
}

// Void terminally voids an order. Requires the VOID permission and a reason.
func (s *OrderService) Void(ctx context.Context, actor *Actor, orderID uuid.UUID, reason string) (*entity.Order, error) {
	if !authz.Allowed(actor.Roles, actor.Permissions, authz.PermVoid) {
		return nil, apperror.NewPermissionDeniedError(authz.PermVoid)
	}
	if reason == "" {
		return nil, apperror.NewInvalidArgumentError("Void reason is required")
	}

	var order *entity.Order
	var before string
	err := s.txr.InTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}
		if !order.Status.CanTransitionTo(enum.OrderVoid) {
			return apperror.NewConflictError("Order is already terminal")
		}

		now := time.Now()
		closerID := actor.UserID
		before = string(order.Status)
		order.Status = enum.OrderVoid
		order.VoidReason = reason
		order.ClosedAt = &now
		order.ClosedByUserID = &closerID
		return s.orderRepo.Update(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	// record only once the void is committed
	s.audit.Record(actor.TenantID, actor.UserID, "order", order.ID, "VOID", reason, before, string(enum.OrderVoid))
	return order, nil
}

// PayInput represents the pay input
type PayInput struct {
	Mode   enum.PayMode
	Amount decimal.Decimal
	RefNo  string
}

// PayResult is the outcome of a payment: the appended row plus the updated
// running totals.
type PayResult struct {
	Payment *entity.Payment `json:"payment"`
	Totals  *BillTotals     `json:"totals"`
	Paid    decimal.Decimal `json:"paid"`
	Due     decimal.Decimal `json:"due"`
	Closed  bool            `json:"closed"`
}

// Pay appends an immutable payment. The order closes only once cumulative
// payments cover the computed total; payments against a terminal order are
// rejected with Conflict.
func (s *OrderService) Pay(ctx context.Context, actor *Actor, orderID uuid.UUID, input *PayInput) (*PayResult, error) {
	if !input.Mode.Valid() {
		return nil, apperror.NewInvalidArgumentError("Unknown payment mode")
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.NewInvalidArgumentError("Payment amount must be positive")
	}

	result := &PayResult{}
	err := s.txr.InTx(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}
		if order.Status.Terminal() {
			return apperror.NewConflictError("Order is already " + string(order.Status))
		}

		now := time.Now()
		payment := &entity.Payment{
			OrderID: order.ID,
			Mode:    input.Mode,
			Amount:  money.Round2(input.Amount),
			RefNo:   input.RefNo,
			PaidAt:  &now,
		}
		if err := s.paymentRepo.Create(ctx, payment); err != nil {
			return err
		}

		totals, err := s.billing.ComputeBill(ctx, order.ID)
		if err != nil {
			return err
		}
		paid, err := s.paymentRepo.SumForOrder(ctx, order.ID)
		if err != nil {
			return err
		}

		result.Payment = payment
		result.Totals = totals
		result.Paid = paid
		result.Due = money.Round2(totals.Total.Sub(paid))

		if paid.GreaterThanOrEqual(totals.Total) {
			closerID := actor.UserID
			order.Status = enum.OrderClosed
			order.ClosedAt = &now
			order.ClosedByUserID = &closerID
			if err := s.orderRepo.Update(ctx, order); err != nil {
				return err
			}
			result.Closed = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// OrderView is an order header with live-computed totals and the payment
// running sum.
type OrderView struct {
	Order  *entity.Order   `json:"order"`
	Totals *BillTotals     `json:"totals"`
	Paid   decimal.Decimal `json:"paid"`
	Due    decimal.Decimal `json:"due"`
}

// Get returns the order with lines, live totals, paid and due.
func (s *OrderService) Get(ctx context.Context, orderID uuid.UUID) (*OrderView, error) {
	order, err := s.orderRepo.GetWithLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}

	totals, err := s.billing.ComputeBill(ctx, orderID)
	if err != nil {
		return nil, err
	}
	paid, err := s.paymentRepo.SumForOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return &OrderView{
		Order:  order,
		Totals: totals,
		Paid:   paid,
		Due:    money.Round2(totals.Total.Sub(paid)),
	}, nil
}

// Payments lists the order's payment ledger.
func (s *OrderService) Payments(ctx context.Context, orderID uuid.UUID) ([]entity.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return s.paymentRepo.ListByOrderID(ctx, orderID)
}

// UpdateStatus moves an order between the informational substates. CLOSED
// is reachable only through Pay and VOID only through Void.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID uuid.UUID, status enum.OrderStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, apperror.NewInvalidArgumentError("Unknown order status")
	}
	if status.Terminal() {
		return nil, apperror.NewInvalidArgumentError("Terminal states are set via pay or void")
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, apperror.NewConflictError(fmt.Sprintf("Cannot move order from %s to %s", order.Status, status))
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, status); err != nil {
		return nil, err
	}
	order.Status = status
	return order, nil
}

// List returns orders matching the filter with pagination.
func (s *OrderService) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	return s.orderRepo.List(ctx, params)
}

// PrintBill sends the running bill to the branch billing printer, without
// closing anything. Pre-payment courtesy print.
func (s *OrderService) PrintBill(ctx context.Context, actor *Actor, orderID uuid.UUID) error {
	view, err := s.Get(ctx, orderID)
	if err != nil {
		return err
	}
	settings, err := s.settingsRepo.GetByBranch(ctx, actor.BranchID)
	if err != nil || settings == nil || settings.BillingPrinterID == nil {
		return err
	}
	printer, err := s.printerRepo.GetByID(ctx, *settings.BillingPrinterID)
	if err != nil || printer == nil {
		return err
	}
	s.dispatcher.Enqueue(printagent.Job{
		Type: printagent.JobBill,
		URL:  printer.ConnectionURL,
		Payload: map[string]interface{}{
			"order_no": view.Order.OrderNo,
			"order_id": view.Order.ID,
			"totals":   view.Totals,
			"paid":     view.Paid,
			"due":      view.Due,
		},
	})
	return nil
}

// openOrder loads an order and rejects the mutation when it is terminal.
func (s *OrderService) openOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if order.Status.Terminal() {
		return nil, apperror.NewConflictError("Order is already " + string(order.Status))
	}
	return order, nil
}

// stateCodes resolves the branch and customer state codes driving the
// CGST/SGST vs IGST split. Unknown customer state falls back to intra-state.
func (s *OrderService) stateCodes(ctx context.Context, order *entity.Order) (string, string, error) {
	branchState := ""
	if branch, err := s.branchRepo.GetByID(ctx, order.BranchID); err != nil {
		return "", "", err
	} else if branch != nil {
		branchState = branch.StateCode
	}

	customerState := ""
	if order.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *order.CustomerID)
		if err != nil {
			return "", "", err
		}
		if customer != nil {
			customerState = customer.StateCode
		}
	}
	return branchState, customerState, nil
}
