// Package metrics exports refresh and ranking figures to prometheus.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/internal/domain/entity"
)

const namespace = "sbshards"

// Recorder implements the session's metric hooks.
type Recorder struct {
	refreshes       *prometheus.CounterVec
	refreshDuration prometheus.Histogram
	rankingSize     *prometheus.GaugeVec
	rankingTotal    *prometheus.GaugeVec
	skipped         *prometheus.GaugeVec
}

func NewRecorder(registerer prometheus.Registerer) *Recorder {
	r := &Recorder{
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "refreshes_total",
			Help:      "Price refreshes by result code.",
		}, []string{"result"}),
		refreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "refresh_duration_seconds",
			Help:      "Time spent fetching prices and ranking shards.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		rankingSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ranking_rows",
			Help:      "Rows in each ranking after the last computation.",
		}, []string{"view"}),
		rankingTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ranking_total_coins",
			Help:      "Sum of all totals in each ranking.",
		}, []string{"view"}),
		skipped: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "skipped_shards",
			Help:      "Catalog entries left out of the rankings by reason.",
		}, []string{"reason"}),
	}

	registerer.MustRegister(r.refreshes, r.refreshDuration, r.rankingSize, r.rankingTotal, r.skipped)

	return r
}

func (r *Recorder) ObserveRefresh(err error, duration time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
		if code, ok := domain.GetCode(err); ok {
			result = code.String()
		}
	}

	r.refreshes.WithLabelValues(result).Inc()
	r.refreshDuration.Observe(duration.Seconds())
}

func (r *Recorder) ObserveRankings(rankings entity.Rankings) {
	totals := rankings.Totals()

	r.rankingSize.WithLabelValues("instaBuy").Set(float64(len(rankings.InstaBuy)))
	r.rankingSize.WithLabelValues("buyOrder").Set(float64(len(rankings.BuyOrder)))
	r.rankingTotal.WithLabelValues("instaBuy").Set(totals.InstaBuy)
	r.rankingTotal.WithLabelValues("buyOrder").Set(totals.BuyOrder)

	counts := rankings.SkipCounts()

	for _, reason := range []entity.SkipReason{
		entity.SkipUnknownRarity,
		entity.SkipNoPriceData,
		entity.SkipZeroPrice,
	} {
		r.skipped.WithLabelValues(string(reason)).Set(float64(counts[reason]))
	}
}
