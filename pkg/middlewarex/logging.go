package middlewarex

import (
	"bytes"
	"cmp"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"strings"
	"time"

	"github.com/zenazn/goji/web/mutil"

	"github.com/SuperOrca/sbshards/pkg/logx"
)

// Logging dumps each request and its response. Multipart requests and CSV
// responses are logged without bodies. Fields are capped at logFieldMaxLen
// bytes when it is positive.
func Logging(
	sensitiveDataMasker logx.SensitiveDataMaskerInterface,
	logFieldMaxLen int,
) func(next http.Handler) http.Handler {
	field := func(dump []byte) string {
		if logFieldMaxLen > 0 && len(dump) > logFieldMaxLen {
			dump = dump[:logFieldMaxLen]
		}
		return string(sensitiveDataMasker.Mask(dump))
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			start := time.Now()

			dumpBody := !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data")

			reqDump, err := httputil.DumpRequest(r, dumpBody)
			if err != nil {
				logger(ctx).Error("httputil.DumpRequest", logx.Error(err))
			}

			logger(ctx).Info(logx.FieldHTTPRequest, slog.String(logx.FieldRequestBody, field(reqDump)))

			lw := mutil.WrapWriter(w)

			var body bytes.Buffer

			lw.Tee(&body)

			next.ServeHTTP(lw, r)

			var headers bytes.Buffer
			if err := w.Header().WriteSubset(&headers, nil); err != nil {
				logger(ctx).Error("header.WriteSubset", logx.Error(fmt.Errorf("write headers: %w", err)))
			}

			respBody := body.Bytes()
			if strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv") {
				respBody = []byte(fmt.Sprintf("<%d bytes of csv>", len(respBody)))
			}

			// Status is 0 until the handler writes a header explicitly.
			status := cmp.Or(lw.Status(), http.StatusOK)

			logger(ctx).Info(
				logx.FieldHTTPResponse,
				slog.Int(logx.FieldResponseStatus, status),
				slog.String(logx.FieldResponseHeaders, field(headers.Bytes())),
				slog.String(logx.FieldResponseBody, field(respBody)),
				slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
			)
		})
	}
}
