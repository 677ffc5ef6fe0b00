package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/internal/domain/entity"
	"github.com/SuperOrca/sbshards/internal/metrics"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
)

func TestRecorder(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(registry)

	recorder.ObserveRefresh(nil, 200*time.Millisecond)
	recorder.ObserveRefresh(domain.NewError(errcodes.FeedRateLimited, "429"), time.Second)
	recorder.ObserveRefresh(errors.New("boom"), time.Second)

	recorder.ObserveRankings(entity.Rankings{
		InstaBuy: []entity.CostResult{{Name: "Fire Shard", InstaBuyTotal: 960}},
		BuyOrder: []entity.CostResult{{Name: "Mist", BuyOrderTotal: 24012}, {Name: "Fire Shard", BuyOrderTotal: 768}},
		Skipped: []entity.Skip{
			{Name: "Grove", Reason: entity.SkipNoPriceData},
			{Name: "Ice Shard", Reason: entity.SkipExcluded},
		},
	})

	count, err := testutil.GatherAndCount(registry)
	rq.NoError(err)
	rq.Equal(11, count)

	families, err := registry.Gather()
	rq.NoError(err)

	values := map[string]float64{}

	for _, family := range families {
		for _, m := range family.GetMetric() {
			name := family.GetName()
			for _, label := range m.GetLabel() {
				name += "/" + label.GetValue()
			}

			switch {
			case m.GetCounter() != nil:
				values[name] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				values[name] = m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				values[name] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}

	rq.InDelta(1, values["sbshards_refreshes_total/ok"], 0)
	rq.InDelta(1, values["sbshards_refreshes_total/FeedRateLimited"], 0)
	rq.InDelta(1, values["sbshards_refreshes_total/error"], 0)
	rq.InDelta(3, values["sbshards_refresh_duration_seconds"], 0)
	rq.InDelta(1, values["sbshards_ranking_rows/instaBuy"], 0)
	rq.InDelta(2, values["sbshards_ranking_rows/buyOrder"], 0)
	rq.InDelta(24780, values["sbshards_ranking_total_coins/buyOrder"], 0)
	rq.InDelta(1, values["sbshards_skipped_shards/no-price-data"], 0)
	rq.InDelta(0, values["sbshards_skipped_shards/zero-price"], 0)
}
