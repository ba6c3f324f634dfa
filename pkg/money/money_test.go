package money

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

func TestRound2(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.474", "10.47"},
		{"10.475", "10.48"},
		{"10.476", "10.48"},
		{"-10.475", "-10.48"},
		{"0", "0.00"},
		{"419.047619", "419.05"},
	}
	for _, tt := range tests {
		if got := Round2(d(tt.in)); !got.Equal(d(tt.want)) {
			t.Errorf("Round2(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRound3(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.2995", "0.300"},
		{"0.2994", "0.299"},
		{"1.0005", "1.001"},
	}
	for _, tt := range tests {
		if got := Round3(d(tt.in)); !got.Equal(d(tt.want)) {
			t.Errorf("Round3(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRoundWhole(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"440.00", "440"},
		{"440.49", "440"},
		{"440.50", "441"},
		{"-440.50", "-441"},
	}
	for _, tt := range tests {
		if got := RoundWhole(d(tt.in)); !got.Equal(d(tt.want)) {
			t.Errorf("RoundWhole(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFromFloat(t *testing.T) {
	if got := FromFloat(0.1); !got.Equal(d("0.1")) {
		t.Errorf("FromFloat(0.1) = %s, want 0.1", got)
	}
}

func TestReconciles(t *testing.T) {
	tests := []struct {
		want string
		got  string
		ok   bool
	}{
		{"100.00", "100.00", true},
		{"100.00", "100.01", true},
		{"100.00", "99.99", true},
		{"100.00", "100.02", false},
	}
	for _, tt := range tests {
		if got := Reconciles(d(tt.want), d(tt.got)); got != tt.ok {
			t.Errorf("Reconciles(%s, %s) = %v, want %v", tt.want, tt.got, got, tt.ok)
		}
	}
}
