package entity

import "time"

// Quote is the price pair for one product.
type Quote struct {
	InstaBuyPrice float64
	BuyOrderPrice float64
}

func (q Quote) Zero() bool {
	return q.InstaBuyPrice == 0 && q.BuyOrderPrice == 0
}

// PriceSnapshot maps product keys to quotes at one point in time.
type PriceSnapshot struct {
	Quotes    map[string]Quote
	UpdatedAt time.Time
}

func (p PriceSnapshot) Lookup(key string) (Quote, bool) {
	q, ok := p.Quotes[key]
	return q, ok
}

func (p PriceSnapshot) Empty() bool {
	return len(p.Quotes) == 0
}
