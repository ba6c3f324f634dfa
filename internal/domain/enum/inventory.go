package enum

// StockMoveType classifies an entry in the append-only stock ledger.
type StockMoveType string

const (
	StockPurchase StockMoveType = "PURCHASE"
	StockSale     StockMoveType = "SALE"
	StockAdjust   StockMoveType = "ADJUST"
	StockWastage  StockMoveType = "WASTAGE"
)

// Valid reports whether the move type is a known value.
func (t StockMoveType) Valid() bool {
	switch t {
	case StockPurchase, StockSale, StockAdjust, StockWastage:
		return true
	}
	return false
}

// ChargeMode configures how a branch-level charge is applied.
type ChargeMode string

const (
	ChargeNone    ChargeMode = "NONE"
	ChargePercent ChargeMode = "PERCENT"
	ChargeFlat    ChargeMode = "FLAT"
)

// Valid reports whether the charge mode is a known value.
func (m ChargeMode) Valid() bool {
	switch m {
	case ChargeNone, ChargePercent, ChargeFlat:
		return true
	}
	return false
}

// PrinterType distinguishes billing printers from kitchen printers.
type PrinterType string

const (
	PrinterBilling PrinterType = "BILLING"
	PrinterKitchen PrinterType = "KITCHEN"
)

// Valid reports whether the printer type is a known value.
func (t PrinterType) Valid() bool {
	return t == PrinterBilling || t == PrinterKitchen
}
