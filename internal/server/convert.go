package server

import (
	"time"

	"github.com/samber/lo"

	"github.com/SuperOrca/sbshards/internal/domain/entity"
	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/internal/domain/value"
	"github.com/SuperOrca/sbshards/pkg/coins"
	"github.com/SuperOrca/sbshards/pkg/rest"
)

func newRESTRankings(state service.State) rest.Rankings {
	rankings := rest.Rankings{
		View:       string(state.View),
		Rows:       lo.Map(state.Rows, newRESTCostRow),
		Totals:     newRESTTotals(state.Totals),
		Stats:      newRESTStats(state.Stats, state.LastUpdated),
		Calculated: state.Calculated,
	}

	if state.Sort != nil {
		rankings.Sort = &rest.Sort{
			Column:    string(state.Sort.Column),
			Direction: string(state.Sort.Direction),
		}
	}

	if !state.LastUpdated.IsZero() {
		rankings.LastUpdated = lo.ToPtr(state.LastUpdated)
	}

	if state.Calculated && len(state.Rows) == 0 {
		rankings.Message = service.MessageNoShards
	}

	return rankings
}

func newRESTCostRow(row entity.CostResult, i int) rest.CostRow {
	return rest.CostRow{
		Rank:          i + 1,
		Name:          row.Name,
		ID:            row.ID,
		Rarity:        string(row.Rarity),
		RarityName:    row.RarityLabel,
		RequiredCount: row.RequiredCount,
		InstaBuyPrice: row.InstaBuyPrice,
		InstaBuyTotal: row.InstaBuyTotal,
		BuyOrderPrice: row.BuyOrderPrice,
		BuyOrderTotal: row.BuyOrderTotal,
	}
}

func newRESTTotals(totals entity.Totals) rest.Totals {
	return rest.Totals{
		InstaBuy:          totals.InstaBuy,
		BuyOrder:          totals.BuyOrder,
		InstaBuyFormatted: coins.Format(totals.InstaBuy),
		BuyOrderFormatted: coins.Format(totals.BuyOrder),
	}
}

func newRESTStats(stats service.Stats, lastUpdated time.Time) rest.Stats {
	skipped := make(map[string]int, len(stats.Skipped))
	for reason, n := range stats.Skipped {
		skipped[string(reason)] = n
	}

	out := rest.Stats{
		TotalShards:    stats.TotalShards,
		Available:      stats.Available,
		Ignored:        stats.Ignored,
		LastCalculated: stats.LastCalculated,
		Skipped:        skipped,
	}

	if !lastUpdated.IsZero() {
		out.LastUpdated = lo.ToPtr(lastUpdated)
	}

	return out
}

func newRESTShardList(filter value.ListFilter, entries []service.ListEntry) rest.ShardList {
	return rest.ShardList{
		Filter: rest.ShardFilter{
			Rarity: filter.RarityName(),
			Query:  filter.Query,
		},
		Shards: lo.Map(entries, func(e service.ListEntry, _ int) rest.Shard {
			return rest.Shard{
				Name:       e.Shard.Name,
				ID:         e.Shard.ID,
				Rarity:     string(e.Rarity),
				RarityName: e.RarityLabel,
				Excluded:   e.Excluded,
			}
		}),
	}
}

func newDomainSort(request rest.SortRequest) (column value.SortColumn, sort *value.Sort, err error) {
	column, err = value.ParseSortColumn(request.Column)
	if err != nil {
		return "", nil, err
	}

	if request.Direction == "" {
		return column, nil, nil
	}

	direction, err := value.ParseSortDirection(request.Direction)
	if err != nil {
		return "", nil, err
	}

	return column, &value.Sort{Column: column, Direction: direction}, nil
}
