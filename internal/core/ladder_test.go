package core

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"matchbook/internal/domain"
)

func TestLadderBidOrdering(t *testing.T) {
	ld := newLadder(domain.Buy)
	assert.True(t, ld.empty())
	assert.Nil(t, ld.best())
	assert.Nil(t, ld.worst())

	for _, p := range []int64{100, 98, 103, 101} {
		ld.getOrCreate(decimal.NewFromInt(p))
	}

	assert.True(t, ld.best().price.Equal(decimal.NewFromInt(103)), "best bid is the highest price")
	assert.True(t, ld.worst().price.Equal(decimal.NewFromInt(98)))

	var prices []string
	ld.each(func(lvl *priceLevel) bool {
		prices = append(prices, lvl.price.String())
		return true
	})
	assert.Equal(t, []string{"103", "101", "100", "98"}, prices)
}

func TestLadderAskOrdering(t *testing.T) {
	ld := newLadder(domain.Sell)
	for _, p := range []int64{100, 98, 103, 101} {
		ld.getOrCreate(decimal.NewFromInt(p))
	}

	assert.True(t, ld.best().price.Equal(decimal.NewFromInt(98)), "best ask is the lowest price")
	assert.True(t, ld.worst().price.Equal(decimal.NewFromInt(103)))

	var prices []string
	ld.each(func(lvl *priceLevel) bool {
		prices = append(prices, lvl.price.String())
		return true
	})
	assert.Equal(t, []string{"98", "100", "101", "103"}, prices)
}

func TestLadderGetOrCreateReusesLevel(t *testing.T) {
	ld := newLadder(domain.Sell)
	price := decimal.NewFromInt(100)

	lvl := ld.getOrCreate(price)
	again := ld.getOrCreate(price)
	assert.Same(t, lvl, again)

	ld.remove(price)
	assert.True(t, ld.empty())
}

func TestLadderEachStopsEarly(t *testing.T) {
	ld := newLadder(domain.Sell)
	for _, p := range []int64{1, 2, 3} {
		ld.getOrCreate(decimal.NewFromInt(p))
	}

	visited := 0
	ld.each(func(*priceLevel) bool {
		visited++
		return visited < 2
	})
	assert.Equal(t, 2, visited)
}
