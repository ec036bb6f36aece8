package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TradeInfo describes one leg of a trade. Price is the leg's own limit
// price, not a shared clearing price: when a bid's limit exceeds the ask's
// limit the two legs report different prices on purpose.
type TradeInfo struct {
	OrderID  OrderID
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// Trade pairs exactly one bid leg with one ask leg for a single matched
// quantity. Trades are created inside the crossing loop and never mutated
// afterward; ownership passes entirely to the caller.
type Trade struct {
	ID         string
	Bid        TradeInfo
	Ask        TradeInfo
	ExecutedAt time.Time
}
