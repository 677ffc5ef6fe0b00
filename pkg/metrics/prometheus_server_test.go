package metrics_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/SuperOrca/sbshards/pkg/metrics"
)

func TestPrometheusServer(t *testing.T) {
	testCases := []struct {
		name          string
		listenAddress string
		endpoint      string
		statusCode    int
	}{
		{
			name:          "Metrics handler",
			listenAddress: ":10010",
			endpoint:      "http://:10010/metrics",
			statusCode:    http.StatusOK,
		},
		{
			name:          "Invalid endpoint",
			listenAddress: ":10020",
			endpoint:      "http://:10020/invalid",
			statusCode:    http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			prometheusServer := metrics.NewPrometheusServer(tc.listenAddress, prometheus.NewRegistry())

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return prometheusServer.Run(ctx)
			})

			// Wait for server to start.
			time.Sleep(time.Second)

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.endpoint, http.NoBody)
			rq.NoError(err)

			resp, err := http.DefaultClient.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			cancel()

			rq.NoError(g.Wait())
		})
	}
}

func TestPrometheusServerHandler(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()

	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sbshards_test_total",
		Help: "Test counter.",
	})
	registry.MustRegister(counter)
	counter.Add(3)

	httpServer := httptest.NewServer(metrics.NewPrometheusServer("", registry).Handler())
	defer httpServer.Close()

	resp, err := http.Get(httpServer.URL + "/metrics")
	rq.NoError(err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)

	rq.Contains(string(body), "sbshards_test_total 3")
}
