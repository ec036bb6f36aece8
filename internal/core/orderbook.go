package core

import (
	"container/list"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"matchbook/internal/domain"
)

// handle locates one resident order across the book's two views: the
// authoritative Order, the level it rests in, and its position in the
// level's queue. Every mutation goes through the handle so the ladder and
// the index never diverge into independent copies.
type handle struct {
	order *domain.Order
	level *priceLevel
	elem  *list.Element
}

// OrderBook is a single-instrument continuous double-auction book with
// price-time priority matching. It is deliberately unsynchronized: exactly
// one operation may be in flight at a time, and no operation blocks or
// performs I/O. Hosts that call from multiple goroutines wrap it in
// engine.Engine, which serializes access.
type OrderBook struct {
	bids   *ladder
	asks   *ladder
	orders map[domain.OrderID]*handle
	nextID domain.OrderID
}

func NewOrderBook() *OrderBook {
	return &OrderBook{
		bids:   newLadder(domain.Buy),
		asks:   newLadder(domain.Sell),
		orders: make(map[domain.OrderID]*handle),
	}
}

// Submit runs one order through the admission pipeline and, when admitted,
// the crossing loop. Every admission check happens before any book
// mutation, so a rejection leaves the book exactly as it was.
func (b *OrderBook) Submit(side domain.Side, orderType domain.OrderType, price, quantity decimal.Decimal) domain.OrderResult {
	b.nextID++
	order := domain.NewOrder(b.nextID, side, orderType, price, quantity)

	// Unreachable while the book assigns sequential ids itself; kept
	// because it becomes load-bearing if ids are ever supplied externally.
	if _, exists := b.orders[order.ID]; exists {
		return domain.OrderResult{OrderID: order.ID, Status: domain.RejectedDuplicateID}
	}

	switch orderType {
	case domain.Stop, domain.StopLimit:
		return domain.OrderResult{OrderID: order.ID, Status: domain.RejectedUnsupportedType}
	}

	if orderType == domain.Market {
		// Resolve to a marketable limit at the worst resting price on the
		// opposite side, so the rest of the pipeline only reasons about
		// priced orders.
		worst := b.worstOpposite(side)
		if worst == nil {
			return domain.OrderResult{OrderID: order.ID, Status: domain.RejectedNoLiquidity}
		}
		order.ToGoodTillCancel(worst.price)
	}

	if orderType == domain.FillAndKill && !b.canMatch(side, order.Price) {
		return domain.OrderResult{OrderID: order.ID, Status: domain.RejectedFillAndKillNoMatch}
	}

	if orderType == domain.FillOrKill && !b.canFullyFill(side, order.Price, order.Quantity) {
		return domain.OrderResult{OrderID: order.ID, Status: domain.RejectedFillOrKillPartialFill}
	}

	b.insert(order)
	trades := b.matchOrders()

	status := domain.Accepted
	if len(trades) > 0 {
		status = domain.Executed
	}
	return domain.OrderResult{OrderID: order.ID, Status: status, Trades: trades}
}

// Cancel withdraws a resting order. An unknown id is a quiet no-op, and no
// matching runs as a side effect.
func (b *OrderBook) Cancel(id domain.OrderID) {
	h, exists := b.orders[id]
	if !exists {
		return
	}
	delete(b.orders, id)

	lvl := h.level
	lvl.orders.Remove(h.elem)
	lvl.count--
	lvl.totalQty = lvl.totalQty.Sub(h.order.Remaining())
	if lvl.count == 0 {
		b.sideLadder(h.order.Side).remove(lvl.price)
	}
}

// CancelAll withdraws every id in the batch, skipping absent ones.
func (b *OrderBook) CancelAll(ids []domain.OrderID) {
	for _, id := range ids {
		b.Cancel(id)
	}
}

// Modify cancels the order and re-submits its replacement with the original
// order type through the full admission pipeline. The replacement is a
// brand-new arrival: it gets a fresh id and joins the back of its level's
// queue even at an unchanged price. An unknown id yields no trades.
func (b *OrderBook) Modify(m domain.OrderModify) []domain.Trade {
	h, exists := b.orders[m.OrderID]
	if !exists {
		return nil
	}
	orderType := h.order.Type

	b.Cancel(m.OrderID)
	result := b.Submit(m.Side, orderType, m.Price, m.Quantity)
	return result.Trades
}

// BestBid returns the highest resting bid price.
func (b *OrderBook) BestBid() (decimal.Decimal, bool) {
	if lvl := b.bids.best(); lvl != nil {
		return lvl.price, true
	}
	return decimal.Decimal{}, false
}

// BestAsk returns the lowest resting ask price.
func (b *OrderBook) BestAsk() (decimal.Decimal, bool) {
	if lvl := b.asks.best(); lvl != nil {
		return lvl.price, true
	}
	return decimal.Decimal{}, false
}

// Size returns the number of resident orders.
func (b *OrderBook) Size() int {
	return len(b.orders)
}

// Snapshot returns both ladders in priority order. Level quantities are
// recomputed from the resident orders at call time rather than read from
// the cached aggregates, so the caller gets a point-in-time view that is
// consistent by construction.
func (b *OrderBook) Snapshot() domain.BookSnapshot {
	snap := domain.BookSnapshot{Timestamp: time.Now()}
	b.bids.each(func(lvl *priceLevel) bool {
		snap.Bids = append(snap.Bids, levelInfo(lvl))
		return true
	})
	b.asks.each(func(lvl *priceLevel) bool {
		snap.Asks = append(snap.Asks, levelInfo(lvl))
		return true
	})
	return snap
}

// PruneGoodForDay collects the resident good-for-day orders without
// cancelling anything. The book has no clock; the host decides when the
// trading day ends and cancels the returned ids itself.
func (b *OrderBook) PruneGoodForDay() []domain.OrderID {
	var ids []domain.OrderID
	for id, h := range b.orders {
		if h.order.Type == domain.GoodForDay {
			ids = append(ids, id)
		}
	}
	return ids
}

func levelInfo(lvl *priceLevel) domain.LevelInfo {
	total := decimal.Zero
	for e := lvl.orders.Front(); e != nil; e = e.Next() {
		total = total.Add(e.Value.(*domain.Order).Remaining())
	}
	return domain.LevelInfo{Price: lvl.price, Quantity: total}
}

func (b *OrderBook) sideLadder(side domain.Side) *ladder {
	if side == domain.Buy {
		return b.bids
	}
	return b.asks
}

func (b *OrderBook) worstOpposite(side domain.Side) *priceLevel {
	return b.sideLadder(side.Opposite()).worst()
}

// canMatch reports whether an order at the given price could cross the best
// opposing price right now.
func (b *OrderBook) canMatch(side domain.Side, price decimal.Decimal) bool {
	if side == domain.Buy {
		best := b.asks.best()
		return best != nil && price.GreaterThanOrEqual(best.price)
	}
	best := b.bids.best()
	return best != nil && price.LessThanOrEqual(best.price)
}

// canFullyFill reports whether resting depth at or better than the limit
// price covers the whole quantity. It walks the opposite ladder outward
// from the best level accumulating the per-level aggregates; priority order
// means the walk can stop at the first level beyond the limit.
func (b *OrderBook) canFullyFill(side domain.Side, price, quantity decimal.Decimal) bool {
	if !b.canMatch(side, price) {
		return false
	}

	need := quantity
	covered := false
	b.sideLadder(side.Opposite()).each(func(lvl *priceLevel) bool {
		within := lvl.price.LessThanOrEqual(price)
		if side == domain.Sell {
			within = lvl.price.GreaterThanOrEqual(price)
		}
		if !within {
			return false
		}
		need = need.Sub(lvl.totalQty)
		if need.Sign() <= 0 {
			covered = true
			return false
		}
		return true
	})
	return covered
}

// insert appends the order to the tail of its price level's queue,
// registers it in the index, and updates the level aggregates.
func (b *OrderBook) insert(o *domain.Order) {
	lvl := b.sideLadder(o.Side).getOrCreate(o.Price)
	elem := lvl.orders.PushBack(o)
	lvl.totalQty = lvl.totalQty.Add(o.Remaining())
	lvl.count++
	b.orders[o.ID] = &handle{order: o, level: lvl, elem: elem}
}

// matchOrders runs the crossing loop to its fixed point: while the best bid
// price reaches the best ask price, the oldest orders at those levels trade
// against each other at min(remaining, remaining). A partially filled order
// stays at the head of its queue and keeps its time priority.
func (b *OrderBook) matchOrders() []domain.Trade {
	var trades []domain.Trade

	for {
		if b.bids.empty() || b.asks.empty() {
			break
		}
		bidLvl := b.bids.best()
		askLvl := b.asks.best()
		if bidLvl.price.LessThan(askLvl.price) {
			break
		}

		for bidLvl.count > 0 && askLvl.count > 0 {
			bid := bidLvl.front()
			ask := askLvl.front()
			quantity := decimal.Min(bid.Remaining(), ask.Remaining())

			bid.Fill(quantity)
			ask.Fill(quantity)

			// Each leg reports its own order's limit price; the book does
			// not compute a uniform clearing price.
			trades = append(trades, domain.Trade{
				ID:         uuid.NewString(),
				Bid:        domain.TradeInfo{OrderID: bid.ID, Price: bid.Price, Quantity: quantity},
				Ask:        domain.TradeInfo{OrderID: ask.ID, Price: ask.Price, Quantity: quantity},
				ExecutedAt: time.Now(),
			})

			b.applyMatch(bidLvl, bid, quantity)
			b.applyMatch(askLvl, ask, quantity)
		}

		if bidLvl.count == 0 {
			b.bids.remove(bidLvl.price)
		}
		if askLvl.count == 0 {
			b.asks.remove(askLvl.price)
		}
	}

	b.sweepFillAndKill()
	return trades
}

// applyMatch updates the aggregates for one matched leg and unlinks the
// order from the index and its queue once fully filled.
func (b *OrderBook) applyMatch(lvl *priceLevel, o *domain.Order, quantity decimal.Decimal) {
	lvl.totalQty = lvl.totalQty.Sub(quantity)
	if !o.IsFilled() {
		return
	}
	h := b.orders[o.ID]
	lvl.orders.Remove(h.elem)
	lvl.count--
	delete(b.orders, o.ID)
}

// sweepFillAndKill cancels a fill-and-kill order left at the head of either
// best level once no crossing remains. Such an order must never rest on the
// book past its original submission.
func (b *OrderBook) sweepFillAndKill() {
	if lvl := b.bids.best(); lvl != nil {
		if o := lvl.front(); o != nil && o.Type == domain.FillAndKill {
			b.Cancel(o.ID)
		}
	}
	if lvl := b.asks.best(); lvl != nil {
		if o := lvl.front(); o != nil && o.Type == domain.FillAndKill {
			b.Cancel(o.ID)
		}
	}
}
