package gst

import (
	"github.com/shopspring/decimal"

	"github.com/rasoipos/rasoi-api/pkg/money"
)

// Split is the CGST/SGST/IGST breakdown of a tax amount.
type Split struct {
	CGST decimal.Decimal `json:"cgst"`
	SGST decimal.Decimal `json:"sgst"`
	IGST decimal.Decimal `json:"igst"`
}

// LineTax is the computed tax for a single order line.
type LineTax struct {
	Taxable  decimal.Decimal `json:"taxable"`
	TaxTotal decimal.Decimal `json:"tax_total"`
}

var (
	one     = decimal.NewFromInt(1)
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// SplitTax divides a tax amount between the central/state components.
// When both state codes are known and differ the sale is inter-state and the
// whole amount goes to IGST. Otherwise half goes to CGST and the remainder
// to SGST, so the half-up rounding residue lands in SGST and
// CGST+SGST == amount exactly at 2 decimals.
func SplitTax(branchState, customerState string, amount decimal.Decimal) Split {
	amount = money.Round2(amount)
	if branchState != "" && customerState != "" && branchState != customerState {
		return Split{CGST: decimal.Zero, SGST: decimal.Zero, IGST: amount}
	}
	half := money.Round2(amount.Div(two))
	return Split{CGST: half, SGST: amount.Sub(half), IGST: decimal.Zero}
}

// ComputeLine derives the taxable value and tax total for a line base
// (qty*unit_price - discount) at the given GST rate. Inclusive prices carry
// the tax inside the base and it is backed out; exclusive prices have it
// added on top.
func ComputeLine(base, rate decimal.Decimal, inclusive bool) LineTax {
	if rate.IsZero() || rate.IsNegative() {
		return LineTax{Taxable: money.Round2(base), TaxTotal: decimal.Zero}
	}
	if inclusive {
		taxable := base.Div(one.Add(rate.Div(hundred)))
		return LineTax{
			Taxable:  money.Round2(taxable),
			TaxTotal: money.Round2(base.Sub(taxable)),
		}
	}
	return LineTax{
		Taxable:  money.Round2(base),
		TaxTotal: money.Round2(base.Mul(rate).Div(hundred)),
	}
}
