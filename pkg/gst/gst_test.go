package gst

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeLine(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		rate      string
		inclusive bool
		taxable   string
		taxTotal  string
	}{
		{"inclusive 5pct thali", "440", "5", true, "419.05", "20.95"},
		{"exclusive 5pct", "400", "5", false, "400.00", "20.00"},
		{"inclusive 18pct", "118", "18", true, "100.00", "18.00"},
		{"exclusive 18pct", "250", "18", false, "250.00", "45.00"},
		{"zero rate", "150", "0", true, "150.00", "0"},
		{"negative rate treated as untaxed", "150", "-5", false, "150.00", "0"},
		{"zero base", "0", "5", true, "0.00", "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeLine(d(tt.base), d(tt.rate), tt.inclusive)
			if !got.Taxable.Equal(d(tt.taxable)) {
				t.Errorf("taxable = %s, want %s", got.Taxable, tt.taxable)
			}
			if !got.TaxTotal.Equal(d(tt.taxTotal)) {
				t.Errorf("tax total = %s, want %s", got.TaxTotal, tt.taxTotal)
			}
		})
	}
}

func TestComputeLineReconstruction(t *testing.T) {
	// taxable + tax must land back on the base within a paisa
	bases := []string{"440", "99.99", "1234.56", "7", "0.01"}
	rates := []string{"5", "12", "18", "28"}
	tolerance := decimal.New(1, -2)

	for _, b := range bases {
		for _, r := range rates {
			base := d(b)
			got := ComputeLine(base, d(r), true)
			sum := got.Taxable.Add(got.TaxTotal)
			if sum.Sub(base).Abs().GreaterThan(tolerance) {
				t.Errorf("base %s rate %s: taxable %s + tax %s = %s, drift > 0.01",
					b, r, got.Taxable, got.TaxTotal, sum)
			}
		}
	}
}

func TestSplitTax(t *testing.T) {
	tests := []struct {
		name          string
		branchState   string
		customerState string
		amount        string
		cgst          string
		sgst          string
		igst          string
	}{
		{"intra-state even", "27", "27", "20", "10.00", "10.00", "0"},
		{"intra-state odd paisa to sgst", "27", "27", "20.95", "10.48", "10.47", "0"},
		{"customer state unknown defaults local", "27", "", "18", "9.00", "9.00", "0"},
		{"branch state unknown defaults local", "", "07", "18", "9.00", "9.00", "0"},
		{"inter-state mh to dl", "27", "07", "100", "0", "0", "100.00"},
		{"zero amount", "27", "27", "0", "0.00", "0.00", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitTax(tt.branchState, tt.customerState, d(tt.amount))
			if !got.CGST.Equal(d(tt.cgst)) {
				t.Errorf("cgst = %s, want %s", got.CGST, tt.cgst)
			}
			if !got.SGST.Equal(d(tt.sgst)) {
				t.Errorf("sgst = %s, want %s", got.SGST, tt.sgst)
			}
			if !got.IGST.Equal(d(tt.igst)) {
				t.Errorf("igst = %s, want %s", got.IGST, tt.igst)
			}
			total := got.CGST.Add(got.SGST).Add(got.IGST)
			if !total.Equal(d(tt.amount).Round(2)) {
				t.Errorf("components sum to %s, want %s", total, tt.amount)
			}
		})
	}
}
