package service

import (
	"cmp"
	"slices"

	"github.com/SuperOrca/sbshards/internal/domain/entity"
	"github.com/SuperOrca/sbshards/internal/domain/value"
)

// ComputeRankings joins the catalog with the exclusion set and a price
// snapshot. Entries that cannot be priced are reported in Skipped and never
// fail the pass. Both rankings are stable, so equal totals keep catalog
// order.
func ComputeRankings(
	shards []entity.Shard,
	exclusions entity.ExclusionSet,
	prices entity.PriceSnapshot,
) entity.Rankings {
	var rankings entity.Rankings

	for _, shard := range shards {
		result, skip, ok := computeCost(shard, exclusions, prices)
		if !ok {
			rankings.Skipped = append(rankings.Skipped, skip)
			continue
		}

		if result.InstaBuyPrice > 0 {
			rankings.InstaBuy = append(rankings.InstaBuy, result)
		}

		if result.BuyOrderPrice > 0 {
			rankings.BuyOrder = append(rankings.BuyOrder, result)
		}
	}

	slices.SortStableFunc(rankings.InstaBuy, func(a, b entity.CostResult) int {
		return cmp.Compare(a.InstaBuyTotal, b.InstaBuyTotal)
	})

	slices.SortStableFunc(rankings.BuyOrder, func(a, b entity.CostResult) int {
		return cmp.Compare(b.BuyOrderTotal, a.BuyOrderTotal)
	})

	return rankings
}

func computeCost(
	shard entity.Shard,
	exclusions entity.ExclusionSet,
	prices entity.PriceSnapshot,
) (entity.CostResult, entity.Skip, bool) {
	skip := entity.Skip{Name: shard.Name}

	if exclusions.Has(shard.Name) {
		skip.Reason = entity.SkipExcluded
		return entity.CostResult{}, skip, false
	}

	rarity, ok := shard.Rarity()
	if !ok {
		skip.Reason = entity.SkipUnknownRarity
		return entity.CostResult{}, skip, false
	}

	skip.ProductKey = shard.ProductKey()

	quote, ok := prices.Lookup(skip.ProductKey)
	if !ok {
		skip.Reason = entity.SkipNoPriceData
		return entity.CostResult{}, skip, false
	}

	if quote.Zero() {
		skip.Reason = entity.SkipZeroPrice
		return entity.CostResult{}, skip, false
	}

	count := rarity.RequiredCount()

	return entity.CostResult{
		Name:          shard.Name,
		ID:            shard.ID,
		Rarity:        rarity,
		RarityLabel:   rarity.Label(),
		RequiredCount: count,
		InstaBuyPrice: quote.InstaBuyPrice,
		BuyOrderPrice: quote.BuyOrderPrice,
		InstaBuyTotal: float64(count) * quote.InstaBuyPrice,
		BuyOrderTotal: float64(count) * quote.BuyOrderPrice,
	}, skip, true
}

// SortRows returns a copy of rows stably ordered by one column.
func SortRows(rows []entity.CostResult, sort value.Sort) []entity.CostResult {
	sorted := slices.Clone(rows)

	slices.SortStableFunc(sorted, func(a, b entity.CostResult) int {
		if sort.Direction == value.Descending {
			return cmp.Compare(b.Column(sort.Column), a.Column(sort.Column))
		}
		return cmp.Compare(a.Column(sort.Column), b.Column(sort.Column))
	})

	return sorted
}
