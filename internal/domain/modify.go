package domain

import (
	"github.com/shopspring/decimal"
)

// OrderModify carries the replacement side, price, and quantity for an
// existing order. Applying it cancels the original and re-submits a fresh
// order of the same type, so the replacement joins the back of its price
// level's queue even when the price is unchanged.
type OrderModify struct {
	OrderID  OrderID
	Side     Side
	Price    decimal.Decimal
	Quantity decimal.Decimal
}
