package engine

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"matchbook/internal/domain"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestEngineOperationSurface(t *testing.T) {
	eng := New()

	buy := eng.Submit(domain.Buy, domain.Limit, dec(100), dec(10))
	assert.Equal(t, domain.Accepted, buy.Status)

	sell := eng.Submit(domain.Sell, domain.Limit, dec(105), dec(8))
	assert.Equal(t, domain.Accepted, sell.Status)
	assert.Equal(t, 2, eng.Size())

	bid, ok := eng.BestBid()
	assert.True(t, ok)
	assert.True(t, bid.Equal(dec(100)))
	ask, ok := eng.BestAsk()
	assert.True(t, ok)
	assert.True(t, ask.Equal(dec(105)))

	trades := eng.Modify(domain.OrderModify{
		OrderID:  buy.OrderID,
		Side:     domain.Buy,
		Price:    dec(105),
		Quantity: dec(8),
	})
	assert.Len(t, trades, 1)
	assert.Equal(t, 0, eng.Size())

	snap := eng.Snapshot()
	assert.Empty(t, snap.Bids)
	assert.Empty(t, snap.Asks)
}

func TestEngineCancelAndPrune(t *testing.T) {
	eng := New()
	gfd := eng.Submit(domain.Buy, domain.GoodForDay, dec(100), dec(5))
	gtc := eng.Submit(domain.Buy, domain.GoodTillCancel, dec(99), dec(5))

	ids := eng.PruneGoodForDay()
	assert.Equal(t, []domain.OrderID{gfd.OrderID}, ids)
	assert.Equal(t, 2, eng.Size())

	eng.CancelAll(ids)
	assert.Equal(t, 1, eng.Size())

	eng.Cancel(gtc.OrderID)
	assert.Equal(t, 0, eng.Size())
}

func TestEngineSerializesConcurrentSubmissions(t *testing.T) {
	eng := New()

	// Non-crossing flow from several goroutines; the lock must keep the
	// index and ladders consistent.
	const workers = 8
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if w%2 == 0 {
					eng.Submit(domain.Buy, domain.Limit, dec(int64(90-w)), dec(1))
				} else {
					eng.Submit(domain.Sell, domain.Limit, dec(int64(110+w)), dec(1))
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, eng.Size())

	bid, ok := eng.BestBid()
	assert.True(t, ok)
	ask, ok2 := eng.BestAsk()
	assert.True(t, ok2)
	assert.True(t, bid.LessThan(ask))
}

func BenchmarkOrderSubmission(b *testing.B) {
	eng := New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		side := domain.Buy
		if i%2 == 0 {
			side = domain.Sell
		}
		price := decimal.NewFromInt(int64(10000 + i%100))
		eng.Submit(side, domain.Limit, price, decimal.NewFromInt(100))
	}
}

func BenchmarkCancel(b *testing.B) {
	eng := New()
	ids := make([]domain.OrderID, b.N)
	for i := 0; i < b.N; i++ {
		r := eng.Submit(domain.Buy, domain.Limit, decimal.NewFromInt(int64(100+i%500)), decimal.NewFromInt(10))
		ids[i] = r.OrderID
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		eng.Cancel(ids[i])
	}
}
