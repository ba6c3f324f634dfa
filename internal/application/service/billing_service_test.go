package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/rasoipos/rasoi-api/internal/domain/entity"
	"github.com/rasoipos/rasoi-api/internal/domain/enum"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func taxedLine(taxable, cgst, sgst, igst string) entity.OrderLine {
	return entity.OrderLine{
		TaxableValue: d(taxable),
		CGST:         d(cgst),
		SGST:         d(sgst),
		IGST:         d(igst),
	}
}

func TestComputeTotalsInclusiveThali(t *testing.T) {
	// two thalis at 220 inclusive of 5% GST
	lines := []entity.OrderLine{taxedLine("419.05", "10.48", "10.47", "0")}

	totals := ComputeTotals(lines, &entity.RestaurantSettings{
		ServiceChargeMode: enum.ChargeNone,
		PackingChargeMode: enum.ChargeNone,
	})

	if !totals.Subtotal.Equal(d("419.05")) {
		t.Errorf("subtotal = %s, want 419.05", totals.Subtotal)
	}
	if !totals.Tax.Equal(d("20.95")) {
		t.Errorf("tax = %s, want 20.95", totals.Tax)
	}
	if !totals.Total.Equal(d("440")) {
		t.Errorf("total = %s, want 440", totals.Total)
	}
	if !totals.RoundOff.Equal(d("0.00")) {
		t.Errorf("round off = %s, want 0.00", totals.RoundOff)
	}
}

func TestComputeTotalsRoundOffSigns(t *testing.T) {
	tests := []struct {
		name     string
		line     entity.OrderLine
		total    string
		roundOff string
	}{
		{"rounds up", taxedLine("100.60", "0", "0", "0"), "101", "0.40"},
		{"rounds down", taxedLine("100.40", "0", "0", "0"), "100", "-0.40"},
		{"half rounds up", taxedLine("100.50", "0", "0", "0"), "101", "0.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals([]entity.OrderLine{tt.line}, nil)
			if !totals.Total.Equal(d(tt.total)) {
				t.Errorf("total = %s, want %s", totals.Total, tt.total)
			}
			if !totals.RoundOff.Equal(d(tt.roundOff)) {
				t.Errorf("round off = %s, want %s", totals.RoundOff, tt.roundOff)
			}
		})
	}
}

func TestComputeTotalsCharges(t *testing.T) {
	lines := []entity.OrderLine{taxedLine("200.00", "5.00", "5.00", "0")}

	tests := []struct {
		name     string
		settings *entity.RestaurantSettings
		service  string
		packing  string
		total    string
	}{
		{
			"percent service charge on subtotal",
			&entity.RestaurantSettings{
				ServiceChargeMode:  enum.ChargePercent,
				ServiceChargeValue: d("10"),
				PackingChargeMode:  enum.ChargeNone,
			},
			"20.00", "0", "230",
		},
		{
			"flat packing charge",
			&entity.RestaurantSettings{
				ServiceChargeMode:  enum.ChargeNone,
				PackingChargeMode:  enum.ChargeFlat,
				PackingChargeValue: d("15"),
			},
			"0", "15.00", "225",
		},
		{
			"nil settings means no charges",
			nil,
			"0", "0", "210",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := ComputeTotals(lines, tt.settings)
			if !totals.Service.Equal(d(tt.service)) {
				t.Errorf("service = %s, want %s", totals.Service, tt.service)
			}
			if !totals.Packing.Equal(d(tt.packing)) {
				t.Errorf("packing = %s, want %s", totals.Packing, tt.packing)
			}
			if !totals.Total.Equal(d(tt.total)) {
				t.Errorf("total = %s, want %s", totals.Total, tt.total)
			}
		})
	}
}

func TestComputeTotalsInterState(t *testing.T) {
	lines := []entity.OrderLine{
		taxedLine("100.00", "0", "0", "18.00"),
		taxedLine("50.00", "0", "0", "9.00"),
	}

	totals := ComputeTotals(lines, nil)
	if !totals.IGST.Equal(d("27.00")) {
		t.Errorf("igst = %s, want 27.00", totals.IGST)
	}
	if !totals.CGST.IsZero() || !totals.SGST.IsZero() {
		t.Errorf("cgst/sgst = %s/%s, want zero", totals.CGST, totals.SGST)
	}
	if !totals.Total.Equal(d("177")) {
		t.Errorf("total = %s, want 177", totals.Total)
	}
}

func TestComputeTotalsEmptyOrder(t *testing.T) {
	totals := ComputeTotals(nil, nil)
	if !totals.Subtotal.IsZero() || !totals.Tax.IsZero() || !totals.Total.IsZero() {
		t.Errorf("empty order produced non-zero totals: %+v", totals)
	}
}
