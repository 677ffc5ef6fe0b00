package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/internal/domain/entity"
	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/internal/domain/value"
	"github.com/SuperOrca/sbshards/pkg/tests"
)

func snapshot(quotes map[string]entity.Quote) entity.PriceSnapshot {
	return entity.PriceSnapshot{Quotes: quotes}
}

func TestComputeRankingsScenarios(t *testing.T) {
	rq := require.New(t)

	fire := []entity.Shard{{Name: "Fire Shard", ID: "C1"}}

	testCases := []struct {
		name       string
		shards     []entity.Shard
		exclusions entity.ExclusionSet
		prices     entity.PriceSnapshot
		instaBuy   []entity.CostResult
		buyOrder   []entity.CostResult
		skipped    []entity.Skip
	}{
		{
			name:       "Insta buy only",
			shards:     fire,
			exclusions: entity.NewExclusionSet(),
			prices: snapshot(map[string]entity.Quote{
				"SHARD_FIRE_SHARD": {InstaBuyPrice: 10, BuyOrderPrice: 0},
			}),
			instaBuy: []entity.CostResult{{
				Name:          "Fire Shard",
				ID:            "C1",
				Rarity:        value.RarityCommon,
				RarityLabel:   "Common",
				RequiredCount: 96,
				InstaBuyPrice: 10,
				InstaBuyTotal: 960,
			}},
		},
		{
			name:       "Excluded",
			shards:     fire,
			exclusions: entity.NewExclusionSet("Fire Shard"),
			prices: snapshot(map[string]entity.Quote{
				"SHARD_FIRE_SHARD": {InstaBuyPrice: 10, BuyOrderPrice: 8},
			}),
			skipped: []entity.Skip{{Name: "Fire Shard", Reason: entity.SkipExcluded}},
		},
		{
			name:       "Missing key",
			shards:     fire,
			exclusions: entity.NewExclusionSet(),
			prices: snapshot(map[string]entity.Quote{
				"SHARD_ICE_SHARD": {InstaBuyPrice: 10, BuyOrderPrice: 8},
			}),
			skipped: []entity.Skip{{Name: "Fire Shard", ProductKey: "SHARD_FIRE_SHARD", Reason: entity.SkipNoPriceData}},
		},
		{
			name:       "Zero prices",
			shards:     fire,
			exclusions: entity.NewExclusionSet(),
			prices: snapshot(map[string]entity.Quote{
				"SHARD_FIRE_SHARD": {},
			}),
			skipped: []entity.Skip{{Name: "Fire Shard", ProductKey: "SHARD_FIRE_SHARD", Reason: entity.SkipZeroPrice}},
		},
		{
			name:       "Unknown rarity",
			shards:     []entity.Shard{{Name: "Odd Shard", ID: "M1"}},
			exclusions: entity.NewExclusionSet(),
			prices: snapshot(map[string]entity.Quote{
				"SHARD_ODD_SHARD": {InstaBuyPrice: 1, BuyOrderPrice: 1},
			}),
			skipped: []entity.Skip{{Name: "Odd Shard", Reason: entity.SkipUnknownRarity}},
		},
		{
			name:       "Buy order only keeps both totals",
			shards:     []entity.Shard{{Name: "Mist", ID: "L3"}},
			exclusions: entity.NewExclusionSet(),
			prices: snapshot(map[string]entity.Quote{
				"SHARD_MIST": {InstaBuyPrice: 0, BuyOrderPrice: 1000.5},
			}),
			buyOrder: []entity.CostResult{{
				Name:          "Mist",
				ID:            "L3",
				Rarity:        value.RarityLegendary,
				RarityLabel:   "Legendary",
				RequiredCount: 24,
				BuyOrderPrice: 1000.5,
				BuyOrderTotal: 24012,
			}},
		},
		{
			name:       "Empty catalog",
			exclusions: entity.NewExclusionSet(),
			prices:     snapshot(nil),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rankings := service.ComputeRankings(tc.shards, tc.exclusions, tc.prices)

			rq.Equal(tc.instaBuy, rankings.InstaBuy)
			rq.Equal(tc.buyOrder, rankings.BuyOrder)
			rq.Equal(tc.skipped, rankings.Skipped)
		})
	}
}

func TestComputeRankingsOrder(t *testing.T) {
	rq := require.New(t)

	shards := []entity.Shard{
		{Name: "A", ID: "C1"}, // 96 * 10 = 960 ; 96 * 5 = 480
		{Name: "B", ID: "L1"}, // 24 * 40 = 960 ; 24 * 50 = 1200
		{Name: "C", ID: "R1"}, // 48 * 1 = 48   ; 48 * 10 = 480
		{Name: "D", ID: "E1"}, // 32 * 100 = 3200 ; 0
	}

	prices := snapshot(map[string]entity.Quote{
		"SHARD_A": {InstaBuyPrice: 10, BuyOrderPrice: 5},
		"SHARD_B": {InstaBuyPrice: 40, BuyOrderPrice: 50},
		"SHARD_C": {InstaBuyPrice: 1, BuyOrderPrice: 10},
		"SHARD_D": {InstaBuyPrice: 100},
	})

	rankings := service.ComputeRankings(shards, entity.NewExclusionSet(), prices)

	names := func(rows []entity.CostResult) []string {
		out := make([]string, 0, len(rows))
		for _, r := range rows {
			out = append(out, r.Name)
		}
		return out
	}

	// Equal totals keep catalog order.
	rq.Equal([]string{"C", "A", "B", "D"}, names(rankings.InstaBuy))
	rq.Equal([]string{"B", "A", "C"}, names(rankings.BuyOrder))

	totals := rankings.Totals()
	rq.InDelta(48+960+960+3200, totals.InstaBuy, 1e-9)
	rq.InDelta(1200+480+480, totals.BuyOrder, 1e-9)
}

func TestComputeRankingsProperties(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer()

	tiers := []string{"C", "U", "R", "E", "L", "X"}

	for round := 0; round < 50; round++ {
		size := random.Intn(120)
		shards := make([]entity.Shard, 0, size)
		quotes := make(map[string]entity.Quote, size)
		exclusions := entity.NewExclusionSet()

		for i := 0; i < size; i++ {
			shard := entity.Shard{
				Name: fmt.Sprintf("Shard %d", i),
				ID:   fmt.Sprintf("%s%d", tiers[random.Intn(len(tiers))], i),
			}
			shards = append(shards, shard)

			if random.Bool() {
				exclusions.Add(shard.Name)
			}

			if random.Intn(5) == 0 {
				continue
			}

			var q entity.Quote
			if random.Bool() {
				q.InstaBuyPrice = float64(random.Intn(4)) * random.Float64() * 1e6
			}
			if random.Bool() {
				q.BuyOrderPrice = float64(random.Intn(4)) * random.Float64() * 1e6
			}
			quotes[shard.ProductKey()] = q
		}

		prices := snapshot(quotes)
		rankings := service.ComputeRankings(shards, exclusions, prices)

		for i, r := range rankings.InstaBuy {
			rq.Positive(r.InstaBuyPrice)
			rq.False(exclusions.Has(r.Name))

			_, ok := prices.Lookup(value.ProductKey(r.Name))
			rq.True(ok)

			if i > 0 {
				rq.LessOrEqual(rankings.InstaBuy[i-1].InstaBuyTotal, r.InstaBuyTotal)
			}
		}

		for i, r := range rankings.BuyOrder {
			rq.Positive(r.BuyOrderPrice)
			rq.False(exclusions.Has(r.Name))

			if i > 0 {
				rq.GreaterOrEqual(rankings.BuyOrder[i-1].BuyOrderTotal, r.BuyOrderTotal)
			}
		}

		rq.Equal(rankings, service.ComputeRankings(shards, exclusions, prices))
	}
}

func TestSortRows(t *testing.T) {
	rq := require.New(t)

	rows := []entity.CostResult{
		{Name: "A", RequiredCount: 96, InstaBuyPrice: 3, BuyOrderTotal: 10},
		{Name: "B", RequiredCount: 24, InstaBuyPrice: 1, BuyOrderTotal: 30},
		{Name: "C", RequiredCount: 96, InstaBuyPrice: 2, BuyOrderTotal: 20},
	}

	names := func(rows []entity.CostResult) string {
		out := ""
		for _, r := range rows {
			out += r.Name
		}
		return out
	}

	testCases := []struct {
		name  string
		sort  value.Sort
		order string
	}{
		{name: "Price asc", sort: value.Sort{Column: value.ColumnInstaBuyPrice, Direction: value.Ascending}, order: "BCA"},
		{name: "Price desc", sort: value.Sort{Column: value.ColumnInstaBuyPrice, Direction: value.Descending}, order: "ACB"},
		{name: "Count asc keeps ties", sort: value.Sort{Column: value.ColumnRequiredCount, Direction: value.Ascending}, order: "BAC"},
		{name: "Count desc keeps ties", sort: value.Sort{Column: value.ColumnRequiredCount, Direction: value.Descending}, order: "ACB"},
		{name: "Buy order total desc", sort: value.Sort{Column: value.ColumnBuyOrderTotal, Direction: value.Descending}, order: "BCA"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			rq.Equal(tc.order, names(service.SortRows(rows, tc.sort)))
		})
	}

	rq.Equal("ABC", names(rows))
}
