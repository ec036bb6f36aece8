package engine

import (
	"sync"

	"github.com/shopspring/decimal"

	"matchbook/internal/core"
	"matchbook/internal/domain"
)

// Engine serializes access to one core.OrderBook so hosts may call it from
// multiple goroutines. Exactly one mutating operation is in flight at a
// time, and reads take the same lock so a snapshot never observes a
// half-updated ladder. No operation blocks on anything but the lock.
type Engine struct {
	mu   sync.Mutex
	book *core.OrderBook
}

func New() *Engine {
	return &Engine{book: core.NewOrderBook()}
}

// Submit runs one order through admission and matching.
func (e *Engine) Submit(side domain.Side, orderType domain.OrderType, price, quantity decimal.Decimal) domain.OrderResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.Submit(side, orderType, price, quantity)
}

// Cancel withdraws a resting order; unknown ids are a no-op.
func (e *Engine) Cancel(id domain.OrderID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.book.Cancel(id)
}

// CancelAll withdraws a batch of orders.
func (e *Engine) CancelAll(ids []domain.OrderID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.book.CancelAll(ids)
}

// Modify replaces a resting order via cancel and re-submission, keeping its
// original order type. The replacement does not keep queue priority.
func (e *Engine) Modify(m domain.OrderModify) []domain.Trade {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.Modify(m)
}

// BestBid returns the top-of-book bid price.
func (e *Engine) BestBid() (decimal.Decimal, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.BestBid()
}

// BestAsk returns the top-of-book ask price.
func (e *Engine) BestAsk() (decimal.Decimal, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.BestAsk()
}

// Snapshot returns both ladders in priority order.
func (e *Engine) Snapshot() domain.BookSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.Snapshot()
}

// Size returns the number of resident orders.
func (e *Engine) Size() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.Size()
}

// PruneGoodForDay returns the resident good-for-day order ids without
// cancelling them; the host applies its own market-close policy.
func (e *Engine) PruneGoodForDay() []domain.OrderID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.book.PruneGoodForDay()
}
