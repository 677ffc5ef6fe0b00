package service

import (
	"time"

	"github.com/SuperOrca/sbshards/internal/domain/entity"
	"github.com/SuperOrca/sbshards/internal/domain/value"
)

// State is a point-in-time copy of what a presenter renders.
type State struct {
	View value.View
	// Sort is nil while the canonical ranking order is shown.
	Sort        *value.Sort
	Rows        []entity.CostResult
	Totals      entity.Totals
	Stats       Stats
	LastUpdated time.Time
	Calculated  bool
}

type Stats struct {
	TotalShards    int
	Available      int
	Ignored        int
	LastCalculated int
	Skipped        map[entity.SkipReason]int
}

// ListEntry is one row of the shard management list.
type ListEntry struct {
	Shard       entity.Shard
	Rarity      value.Rarity
	RarityLabel string
	Excluded    bool
}
