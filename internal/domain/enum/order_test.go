package enum

import "testing"

func TestOrderStatusCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"open to kitchen", OrderOpen, OrderKitchen, true},
		{"open to closed", OrderOpen, OrderClosed, true},
		{"open to void", OrderOpen, OrderVoid, true},
		{"served back to kitchen", OrderServed, OrderKitchen, true},
		{"ready to served", OrderReady, OrderServed, true},
		{"closed to open", OrderClosed, OrderOpen, false},
		{"closed to void", OrderClosed, OrderVoid, false},
		{"void to closed", OrderVoid, OrderClosed, false},
		{"void to open", OrderVoid, OrderOpen, false},
		{"self transition", OrderOpen, OrderOpen, false},
		{"unknown target", OrderOpen, OrderStatus("PARKED"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestOrderStatusTerminal(t *testing.T) {
	for _, s := range []OrderStatus{OrderOpen, OrderKitchen, OrderReady, OrderServed} {
		if s.Terminal() {
			t.Errorf("%s reported terminal", s)
		}
	}
	for _, s := range []OrderStatus{OrderClosed, OrderVoid} {
		if !s.Terminal() {
			t.Errorf("%s not reported terminal", s)
		}
	}
}

func TestOrderChannelValid(t *testing.T) {
	for _, c := range []OrderChannel{ChannelDineIn, ChannelTakeaway, ChannelDelivery, ChannelOnline} {
		if !c.Valid() {
			t.Errorf("%s reported invalid", c)
		}
	}
	if OrderChannel("DRIVE_THRU").Valid() {
		t.Error("unknown channel reported valid")
	}
}

func TestPayModeValid(t *testing.T) {
	for _, m := range []PayMode{PayCash, PayCard, PayUPI, PayWallet, PayCoupon} {
		if !m.Valid() {
			t.Errorf("%s reported invalid", m)
		}
	}
	if PayMode("CHEQUE").Valid() {
		t.Error("unknown pay mode reported valid")
	}
}
