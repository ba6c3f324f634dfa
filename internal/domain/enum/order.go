package enum

// OrderChannel is the sales channel an order came through.
type OrderChannel string

const (
	ChannelDineIn   OrderChannel = "DINE_IN"
	ChannelTakeaway OrderChannel = "TAKEAWAY"
	ChannelDelivery OrderChannel = "DELIVERY"
	ChannelOnline   OrderChannel = "ONLINE"
)

// Valid reports whether the channel is a known value.
func (c OrderChannel) Valid() bool {
	switch c {
	case ChannelDineIn, ChannelTakeaway, ChannelDelivery, ChannelOnline:
		return true
	}
	return false
}

// OnlineProvider identifies the aggregator behind an ONLINE order.
type OnlineProvider string

const (
	ProviderZomato OnlineProvider = "ZOMATO"
	ProviderSwiggy OnlineProvider = "SWIGGY"
	ProviderCustom OnlineProvider = "CUSTOM"
)

// Valid reports whether the provider is a known value.
func (p OnlineProvider) Valid() bool {
	switch p {
	case ProviderZomato, ProviderSwiggy, ProviderCustom:
		return true
	}
	return false
}

// OrderStatus is the lifecycle state of an order. KITCHEN, READY and SERVED
// are informational substates; CLOSED and VOID are terminal.
type OrderStatus string

const (
	OrderOpen    OrderStatus = "OPEN"
	OrderKitchen OrderStatus = "KITCHEN"
	OrderReady   OrderStatus = "READY"
	OrderServed  OrderStatus = "SERVED"
	OrderClosed  OrderStatus = "CLOSED"
	OrderVoid    OrderStatus = "VOID"
)

// Valid reports whether the status is a known value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderOpen, OrderKitchen, OrderReady, OrderServed, OrderClosed, OrderVoid:
		return true
	}
	return false
}

// Terminal reports whether no further transition is legal out of s.
func (s OrderStatus) Terminal() bool {
	return s == OrderClosed || s == OrderVoid
}

// CanTransitionTo reports whether moving from s to next is legal. The
// in-flight substates are not enforced as a linear chain, but nothing
// leaves a terminal state and nothing skips back to OPEN from terminal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() || s.Terminal() {
		return false
	}
	return s != next
}

// PayMode is the tender instrument of a payment.
type PayMode string

const (
	PayCash   PayMode = "CASH"
	PayCard   PayMode = "CARD"
	PayUPI    PayMode = "UPI"
	PayWallet PayMode = "WALLET"
	PayCoupon PayMode = "COUPON"
)

// Valid reports whether the pay mode is a known value.
func (m PayMode) Valid() bool {
	switch m {
	case PayCash, PayCard, PayUPI, PayWallet, PayCoupon:
		return true
	}
	return false
}
