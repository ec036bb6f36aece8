package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"matchbook/internal/domain"
	"matchbook/internal/engine"
)

func main() {
	orders := flag.Int("orders", 200000, "number of orders to submit")
	mid := flag.Int64("mid", 10000, "mid price of the synthetic flow")
	band := flag.Int64("band", 50, "half-width of the price band around mid")
	maxQty := flag.Int64("max-qty", 100, "maximum order quantity")
	seed := flag.Int64("seed", 1, "random seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	eng := engine.New()

	executed := 0
	trades := 0
	start := time.Now()
	for i := 0; i < *orders; i++ {
		side := domain.Buy
		if rng.Intn(2) == 0 {
			side = domain.Sell
		}
		low := *mid - *band
		price := decimal.NewFromInt(low + rng.Int63n(2*(*band)+1))
		qty := decimal.NewFromInt(1 + rng.Int63n(*maxQty))

		r := eng.Submit(side, domain.Limit, price, qty)
		if r.Status == domain.Executed {
			executed++
			trades += len(r.Trades)
		}
	}
	elapsed := time.Since(start)

	log.Printf("submitted %d orders in %s (%.0f orders/sec)",
		*orders, elapsed, float64(*orders)/elapsed.Seconds())
	log.Printf("executed submissions: %d, trades: %d", executed, trades)
	log.Printf("resident orders: %d", eng.Size())

	snap := eng.Snapshot()
	log.Printf("bid levels: %d, ask levels: %d", len(snap.Bids), len(snap.Asks))
	if bid, ok := eng.BestBid(); ok {
		log.Printf("best bid: %s", bid)
	}
	if ask, ok := eng.BestAsk(); ok {
		log.Printf("best ask: %s", ask)
	}
}
