package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest replaces the branch billing profile
type UpdateSettingsRequest struct {
	Name                string          `json:"name" binding:"required,min=2,max=255"`
	Address             string          `json:"address" binding:"max=500"`
	Phone               string          `json:"phone" binding:"max=20"`
	GSTIN               string          `json:"gstin" binding:"omitempty,len=15"`
	FSSAI               string          `json:"fssai" binding:"max=20"`
	PrintFSSAIOnInvoice bool            `json:"print_fssai_on_invoice"`
	GSTInclusiveDefault bool            `json:"gst_inclusive_default"`
	ServiceChargeMode   string          `json:"service_charge_mode" binding:"required"`
	ServiceChargeValue  decimal.Decimal `json:"service_charge_value"`
	PackingChargeMode   string          `json:"packing_charge_mode" binding:"required"`
	PackingChargeValue  decimal.Decimal `json:"packing_charge_value"`
	BillingPrinterID    *uuid.UUID      `json:"billing_printer_id"`
	InvoiceFooter       string          `json:"invoice_footer" binding:"max=500"`
}

// CreatePrinterRequest registers an edge printer agent endpoint
type CreatePrinterRequest struct {
	Name              string `json:"name" binding:"required,min=2,max=100"`
	Type              string `json:"type" binding:"required"`
	ConnectionURL     string `json:"connection_url" binding:"required,url"`
	IsDefault         bool   `json:"is_default"`
	CashDrawerEnabled bool   `json:"cash_drawer_enabled"`
	CashDrawerCode    string `json:"cash_drawer_code" binding:"max=50"`
}
