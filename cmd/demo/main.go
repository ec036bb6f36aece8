package main

import (
	"log"

	"github.com/shopspring/decimal"

	"matchbook/internal/domain"
	"matchbook/internal/engine"
)

func main() {
	eng := engine.New()

	log.Println("--- Initial Orders ---")
	r1 := eng.Submit(domain.Buy, domain.Limit, decimal.NewFromInt(100), decimal.NewFromInt(10))
	r2 := eng.Submit(domain.Sell, domain.Limit, decimal.NewFromInt(105), decimal.NewFromInt(8))
	report(r1)
	report(r2)

	log.Println("--- Crossing Order ---")
	r3 := eng.Submit(domain.Buy, domain.Limit, decimal.NewFromInt(106), decimal.NewFromInt(5))
	report(r3)
	for _, t := range r3.Trades {
		log.Printf("  trade %s: bid #%d @ %s x %s / ask #%d @ %s x %s",
			t.ID,
			t.Bid.OrderID, t.Bid.Price, t.Bid.Quantity,
			t.Ask.OrderID, t.Ask.Price, t.Ask.Quantity)
	}

	log.Println("--- Book State ---")
	if bid, ok := eng.BestBid(); ok {
		log.Printf("best bid: %s", bid)
	} else {
		log.Println("best bid: none")
	}
	if ask, ok := eng.BestAsk(); ok {
		log.Printf("best ask: %s", ask)
	} else {
		log.Println("best ask: none")
	}
	log.Printf("resident orders: %d", eng.Size())

	log.Println("--- Rejections ---")
	empty := engine.New()
	market := empty.Submit(domain.Buy, domain.Market, decimal.Zero, decimal.NewFromInt(10))
	log.Printf("market buy on empty book: %s", market.Status.Message())

	fok := eng.Submit(domain.Buy, domain.FillOrKill, decimal.NewFromInt(110), decimal.NewFromInt(100))
	log.Printf("fill-or-kill for 100: %s", fok.Status.Message())
}

func report(r domain.OrderResult) {
	log.Printf("order %d: %s (%d trades)", r.OrderID, r.Status.Message(), len(r.Trades))
}
