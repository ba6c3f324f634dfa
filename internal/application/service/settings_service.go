package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
	"github.com/rasoipos/rasoi-api/internal/domain/repository"
	"github.com/rasoipos/rasoi-api/pkg/apperror"
	"github.com/rasoipos/rasoi-api/pkg/authz"
	"github.com/rasoipos/rasoi-api/pkg/money"
	"github.com/rasoipos/rasoi-api/pkg/printagent"
)

// SettingsService manages per-branch billing configuration and printers.
type SettingsService struct {
	settingsRepo repository.SettingsRepository
	printerRepo  repository.PrinterRepository
	dispatcher   *printagent.Dispatcher
	audit        *AuditService
}

// NewSettingsService creates a new settings service
func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	printerRepo repository.PrinterRepository,
	dispatcher *printagent.Dispatcher,
	audit *AuditService,
) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		printerRepo:  printerRepo,
		dispatcher:   dispatcher,
		audit:        audit,
	}
}

// Get returns the branch settings.
func (s *SettingsService) Get(ctx context.Context, actor *Actor) (*entity.RestaurantSettings, error) {
	settings, err := s.settingsRepo.GetByBranch(ctx, actor.BranchID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Restaurant settings")
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	Name                string
	Address             string
	Phone               string
	GSTIN               string
	FSSAI               string
	PrintFSSAIOnInvoice bool
	GSTInclusiveDefault bool
	ServiceChargeMode   enum.ChargeMode
	ServiceChargeValue  decimal.Decimal
	PackingChargeMode   enum.ChargeMode
	PackingChargeValue  decimal.Decimal
	BillingPrinterID    *uuid.UUID
	InvoiceFooter       string
}

// Update overwrites the branch settings. Requires SETTINGS_EDIT.
func (s *SettingsService) Update(ctx context.Context, actor *Actor, input *UpdateSettingsInput) (*entity.RestaurantSettings, error) {
	if !authz.Allowed(actor.Roles, actor.Permissions, authz.PermSettingsEdit) {
		return nil, apperror.NewPermissionDeniedError(authz.PermSettingsEdit)
	}
	if !input.ServiceChargeMode.Valid() || !input.PackingChargeMode.Valid() {
		return nil, apperror.NewInvalidArgumentError("Unknown charge mode")
	}
	if input.BillingPrinterID != nil {
		printer, err := s.printerRepo.GetByID(ctx, *input.BillingPrinterID)
		if err != nil {
			return nil, err
		}
		if printer == nil {
			return nil, apperror.NewNotFoundError("Printer")
		}
	}

	settings, err := s.settingsRepo.GetByBranch(ctx, actor.BranchID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = &entity.RestaurantSettings{
			TenantID: actor.TenantID,
			BranchID: actor.BranchID,
		}
	}

	settings.Name = input.Name
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.GSTIN = input.GSTIN
	settings.FSSAI = input.FSSAI
	settings.PrintFSSAIOnInvoice = input.PrintFSSAIOnInvoice
	settings.GSTInclusiveDefault = input.GSTInclusiveDefault
	settings.ServiceChargeMode = input.ServiceChargeMode
	settings.ServiceChargeValue = money.Round2(input.ServiceChargeValue)
	settings.PackingChargeMode = input.PackingChargeMode
	settings.PackingChargeValue = money.Round2(input.PackingChargeValue)
	settings.BillingPrinterID = input.BillingPrinterID
	settings.InvoiceFooter = input.InvoiceFooter

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}

	s.audit.Record(actor.TenantID, actor.UserID, "restaurant_settings", settings.ID, "UPDATE", "", "", "")
	return settings, nil
}

// CreatePrinterInput represents the create printer input
type CreatePrinterInput struct {
	Name              string
	Type              enum.PrinterType
	ConnectionURL     string
	IsDefault         bool
	CashDrawerEnabled bool
	CashDrawerCode    string
}

// CreatePrinter registers an edge printer agent endpoint.
func (s *SettingsService) CreatePrinter(ctx context.Context, actor *Actor, input *CreatePrinterInput) (*entity.Printer, error) {
	if !authz.Allowed(actor.Roles, actor.Permissions, authz.PermSettingsEdit) {
		return nil, apperror.NewPermissionDeniedError(authz.PermSettingsEdit)
	}
	if input.Name == "" {
		return nil, apperror.NewInvalidArgumentError("Printer name is required")
	}
	if !input.Type.Valid() {
		return nil, apperror.NewInvalidArgumentError("Unknown printer type")
	}

	printer := &entity.Printer{
		TenantID:          actor.TenantID,
		BranchID:          actor.BranchID,
		Name:              input.Name,
		Type:              input.Type,
		ConnectionURL:     input.ConnectionURL,
		IsDefault:         input.IsDefault,
		CashDrawerEnabled: input.CashDrawerEnabled,
		CashDrawerCode:    input.CashDrawerCode,
	}
	if err := s.printerRepo.Create(ctx, printer); err != nil {
		return nil, err
	}
	return printer, nil
}

// ListPrinters lists the branch printers.
func (s *SettingsService) ListPrinters(ctx context.Context, actor *Actor) ([]entity.Printer, error) {
	return s.printerRepo.List(ctx, actor.BranchID)
}

// OpenDrawer fires a best-effort cash drawer kick at a printer agent.
func (s *SettingsService) OpenDrawer(ctx context.Context, actor *Actor, printerID uuid.UUID) error {
	printer, err := s.printerRepo.GetByID(ctx, printerID)
	if err != nil {
		return err
	}
	if printer == nil {
		return apperror.NewNotFoundError("Printer")
	}
	if !printer.CashDrawerEnabled {
		return apperror.NewConflictError("Printer has no cash drawer")
	}
	s.dispatcher.Enqueue(printagent.Job{
		Type: printagent.JobOpenDrawer,
		URL:  printer.ConnectionURL,
		Payload: map[string]interface{}{
			"drawer_code": printer.CashDrawerCode,
		},
	})
	s.audit.Record(actor.TenantID, actor.UserID, "printer", printer.ID, "OPEN_DRAWER", "", "", "")
	return nil
}
