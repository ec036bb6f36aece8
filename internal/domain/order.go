package domain

import (
	"github.com/shopspring/decimal"
)

// OrderID identifies one order. The book assigns ids from a monotonic
// counter, so ids are unique and ordered by arrival.
type OrderID uint64

type Side string
type OrderType string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"

	// GoodTillCancel rests until cancelled.
	GoodTillCancel OrderType = "GOOD_TILL_CANCEL"
	// GoodForDay rests until the host prunes it at end of day.
	GoodForDay OrderType = "GOOD_FOR_DAY"
	// FillAndKill executes what it can immediately, remainder cancelled.
	FillAndKill OrderType = "FILL_AND_KILL"
	// FillOrKill executes completely or not at all.
	FillOrKill OrderType = "FILL_OR_KILL"
	// Limit executes at the given price or better.
	Limit OrderType = "LIMIT"
	// Market executes at the best available resting prices.
	Market OrderType = "MARKET"
	// Stop and StopLimit are recognized tags without matching semantics;
	// submitting one is rejected as unsupported.
	Stop      OrderType = "STOP"
	StopLimit OrderType = "STOP_LIMIT"
)

// Opposite returns the other side of the market.
func (s Side) Opposite() Side {
	if s == Buy {
		return Sell
	}
	return Buy
}

// Order is one resident intent to trade. Quantity is the original size and
// Filled the cumulative matched size, so 0 <= Filled <= Quantity holds at
// all times. The book owns every Order for its whole lifetime.
type Order struct {
	ID       OrderID
	Side     Side
	Type     OrderType
	Price    decimal.Decimal
	Quantity decimal.Decimal
	Filled   decimal.Decimal
}

func NewOrder(id OrderID, side Side, orderType OrderType, price, quantity decimal.Decimal) *Order {
	return &Order{
		ID:       id,
		Side:     side,
		Type:     orderType,
		Price:    price,
		Quantity: quantity,
	}
}

// Fill applies a matched quantity, clamping at the original size.
func (o *Order) Fill(quantity decimal.Decimal) {
	o.Filled = o.Filled.Add(quantity)
	if o.Filled.GreaterThan(o.Quantity) {
		o.Filled = o.Quantity
	}
}

func (o *Order) Remaining() decimal.Decimal {
	return o.Quantity.Sub(o.Filled)
}

func (o *Order) IsFilled() bool {
	return o.Filled.GreaterThanOrEqual(o.Quantity)
}

// ToGoodTillCancel converts a market order into a priced good-till-cancel
// order. The book uses it to resolve market orders against the worst
// resting price on the opposite side before admission continues.
func (o *Order) ToGoodTillCancel(price decimal.Decimal) {
	o.Price = price
	o.Type = GoodTillCancel
}
