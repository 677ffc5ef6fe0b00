package entity

import (
	"github.com/samber/lo"

	"github.com/SuperOrca/sbshards/internal/domain/value"
)

type CostResult struct {
	Name          string       `json:"name"`
	ID            string       `json:"id"`
	Rarity        value.Rarity `json:"rarity"`
	RarityLabel   string       `json:"rarityName"`
	RequiredCount int          `json:"requiredCount"`
	InstaBuyPrice float64      `json:"instaBuyPrice"`
	BuyOrderPrice float64      `json:"buyOrderPrice"`
	InstaBuyTotal float64      `json:"instaBuyTotal"`
	BuyOrderTotal float64      `json:"buyOrderTotal"`
}

// Column returns the numeric value shown in the given column.
func (c CostResult) Column(column value.SortColumn) float64 {
	switch column {
	case value.ColumnRequiredCount:
		return float64(c.RequiredCount)
	case value.ColumnInstaBuyPrice:
		return c.InstaBuyPrice
	case value.ColumnInstaBuyTotal:
		return c.InstaBuyTotal
	case value.ColumnBuyOrderPrice:
		return c.BuyOrderPrice
	case value.ColumnBuyOrderTotal:
		return c.BuyOrderTotal
	default:
		return 0
	}
}

type SkipReason string

const (
	SkipExcluded      SkipReason = "excluded"
	SkipUnknownRarity SkipReason = "unknown-rarity"
	SkipNoPriceData   SkipReason = "no-price-data"
	SkipZeroPrice     SkipReason = "zero-price"
)

// Skip records a catalog entry left out of both rankings.
type Skip struct {
	Name       string
	ProductKey string
	Reason     SkipReason
}

type Rankings struct {
	// InstaBuy is cheapest first by InstaBuyTotal.
	InstaBuy []CostResult
	// BuyOrder is most valuable first by BuyOrderTotal.
	BuyOrder []CostResult
	Skipped  []Skip
}

func (r Rankings) Ranking(view value.View) []CostResult {
	if view == value.ViewBuyOrder {
		return r.BuyOrder
	}
	return r.InstaBuy
}

type Totals struct {
	InstaBuy float64 `json:"instaBuy"`
	BuyOrder float64 `json:"buyOrder"`
}

func (r Rankings) Totals() Totals {
	return Totals{
		InstaBuy: lo.SumBy(r.InstaBuy, func(c CostResult) float64 { return c.InstaBuyTotal }),
		BuyOrder: lo.SumBy(r.BuyOrder, func(c CostResult) float64 { return c.BuyOrderTotal }),
	}
}

// SkipCounts counts skipped entries per reason. Excluded entries are left
// out since they are not a data problem.
func (r Rankings) SkipCounts() map[SkipReason]int {
	counts := lo.CountValuesBy(
		lo.Filter(r.Skipped, func(s Skip, _ int) bool { return s.Reason != SkipExcluded }),
		func(s Skip) SkipReason { return s.Reason },
	)
	return counts
}
