package middlewarex

import (
	"log/slog"
	"net/http"

	"github.com/rs/xid"

	"github.com/SuperOrca/sbshards/pkg/contextx"
	"github.com/SuperOrca/sbshards/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const HeaderTraceID = "X-Trace-Id"

// TraceID takes the trace id from the request header or generates one, and
// echoes it back in the response.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(HeaderTraceID)
		if traceID == "" {
			traceID = xid.New().String()
		}

		w.Header().Set(HeaderTraceID, traceID)

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Logger binds a request scoped logger into the context. It must run after
// TraceID.
func Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		attrs := []any{
			slog.String(logx.FieldHTTPMethod, r.Method),
			slog.String(logx.FieldURL, r.URL.Path),
			slog.String(logx.FieldIP, r.RemoteAddr),
		}

		if traceID, err := contextx.TraceIDFromContext(ctx); err == nil {
			attrs = append(attrs, logx.Stringer(logx.FieldTraceID, traceID))
		}

		ctx = contextx.WithLogger(ctx, logger(ctx).With(attrs...))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
