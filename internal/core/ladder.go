package core

import (
	"container/list"

	rbt "github.com/emirpasic/gods/v2/trees/redblacktree"
	"github.com/shopspring/decimal"

	"matchbook/internal/domain"
)

// priceLevel holds the FIFO queue of resident orders at one price together
// with its running aggregates. totalQty is the sum of remaining quantities
// of the queued orders and count the queue length. A level whose count
// reaches 0 is removed from its ladder, never left empty.
type priceLevel struct {
	price    decimal.Decimal
	orders   *list.List // of *domain.Order, front = oldest
	totalQty decimal.Decimal
	count    int
}

func newPriceLevel(price decimal.Decimal) *priceLevel {
	return &priceLevel{
		price:  price,
		orders: list.New(),
	}
}

// front returns the oldest resident order at this price, nil when empty.
func (l *priceLevel) front() *domain.Order {
	e := l.orders.Front()
	if e == nil {
		return nil
	}
	return e.Value.(*domain.Order)
}

// ladder is the price-ordered set of levels for one side of the book. The
// comparator is side-aware, so the tree minimum is always the best price
// (highest bid, lowest ask) and in-order iteration walks levels in matching
// priority order.
type ladder struct {
	tree *rbt.Tree[decimal.Decimal, *priceLevel]
}

func newLadder(side domain.Side) *ladder {
	comparator := func(a, b decimal.Decimal) int { return a.Cmp(b) }
	if side == domain.Buy {
		comparator = func(a, b decimal.Decimal) int { return b.Cmp(a) }
	}
	return &ladder{tree: rbt.NewWith[decimal.Decimal, *priceLevel](comparator)}
}

func (ld *ladder) empty() bool {
	return ld.tree.Empty()
}

func (ld *ladder) getOrCreate(price decimal.Decimal) *priceLevel {
	if lvl, found := ld.tree.Get(price); found {
		return lvl
	}
	lvl := newPriceLevel(price)
	ld.tree.Put(price, lvl)
	return lvl
}

func (ld *ladder) remove(price decimal.Decimal) {
	ld.tree.Remove(price)
}

// best returns the level at the most aggressive price, nil when empty.
func (ld *ladder) best() *priceLevel {
	node := ld.tree.Left()
	if node == nil {
		return nil
	}
	return node.Value
}

// worst returns the level at the least aggressive price, nil when empty.
func (ld *ladder) worst() *priceLevel {
	node := ld.tree.Right()
	if node == nil {
		return nil
	}
	return node.Value
}

// each visits levels in priority order until visit returns false.
func (ld *ladder) each(visit func(*priceLevel) bool) {
	it := ld.tree.Iterator()
	for it.Next() {
		if !visit(it.Value()) {
			return
		}
	}
}
