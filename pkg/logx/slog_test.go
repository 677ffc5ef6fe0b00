package logx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/pkg/logx"
)

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	rq.Equal(slog.LevelDebug, logx.ParseLevel("DEBUG"))
	rq.Equal(slog.LevelWarn, logx.ParseLevel(" warning "))
	rq.Equal(slog.LevelError, logx.ParseLevel("error"))
	rq.Equal(slog.LevelInfo, logx.ParseLevel("info"))
	rq.Equal(slog.LevelInfo, logx.ParseLevel("verbose"))
}

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		name   string
		format string
		want   string
	}{
		{name: "json", format: "json", want: `"msg":"refreshed"`},
		{name: "text", format: "text", want: "INF refreshed count=3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			var buf bytes.Buffer

			log := logx.NewLogger(&buf, "info", tc.format)
			log.Debug("hidden")
			log.Info("refreshed", slog.Int(logx.FieldCount, 3))

			rq.Contains(buf.String(), tc.want)
			rq.NotContains(buf.String(), "hidden")
		})
	}
}
