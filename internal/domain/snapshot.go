package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LevelInfo is one price level of a snapshot: the price and the total
// remaining quantity resting there.
type LevelInfo struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// BookSnapshot is a point-in-time view of both ladders. Bids are ordered
// best first (descending price), asks best first (ascending price).
type BookSnapshot struct {
	Bids      []LevelInfo
	Asks      []LevelInfo
	Timestamp time.Time
}
