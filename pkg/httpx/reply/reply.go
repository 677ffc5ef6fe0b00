package reply

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/pkg/contextx"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
	"github.com/SuperOrca/sbshards/pkg/logx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	SupportID string `json:"supportId"`
}

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

//nolint:gochecknoglobals
var statusByCode = map[errcodes.Code]int{
	errcodes.ValidationError:        http.StatusBadRequest,
	errcodes.InvalidSortColumn:      http.StatusBadRequest,
	errcodes.InvalidSortDirection:   http.StatusBadRequest,
	errcodes.InvalidRarity:          http.StatusBadRequest,
	errcodes.InvalidView:            http.StatusBadRequest,
	errcodes.NotFound:               http.StatusNotFound,
	errcodes.ShardNotFound:          http.StatusNotFound,
	errcodes.CalculationInProgress:  http.StatusConflict,
	errcodes.NoResults:              http.StatusUnprocessableEntity,
	errcodes.FeedRateLimited:        http.StatusTooManyRequests,
	errcodes.FeedRejected:           http.StatusBadGateway,
	errcodes.FeedServerError:        http.StatusBadGateway,
	errcodes.FeedNotFound:           http.StatusBadGateway,
	errcodes.FeedForbidden:          http.StatusBadGateway,
	errcodes.FeedUnavailable:        http.StatusServiceUnavailable,
	errcodes.CatalogUnavailable:     http.StatusServiceUnavailable,
	errcodes.PreferencesUnavailable: http.StatusServiceUnavailable,
	errcodes.TimeoutExceeded:        http.StatusGatewayTimeout,
}

func OK(w http.ResponseWriter) {
	w.WriteHeader(http.StatusOK)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSON(ctx context.Context, w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger(ctx).Error("json.Encode", logx.Error(err))
	}
}

// Error writes err as a JSON error body. The status follows the error code;
// errors without a code are reported as internal errors.
func Error(ctx context.Context, w http.ResponseWriter, err error) {
	response := errorResponse{
		Code:      errcodes.InternalServerError.String(),
		Message:   "Internal server error",
		SupportID: supportID(ctx),
	}

	status := http.StatusInternalServerError

	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		response.Code = appErr.Code.String()
		response.Message = appErr.Error()

		if s, ok := statusByCode[appErr.Code]; ok {
			status = s
		}
	} else if errors.Is(err, context.DeadlineExceeded) {
		response.Code = errcodes.TimeoutExceeded.String()
		response.Message = "Timeout exceeded"
		status = http.StatusGatewayTimeout
	}

	if status >= http.StatusInternalServerError {
		logger(ctx).Error("error", logx.Error(err))
	} else {
		logger(ctx).Warn("error", logx.Error(err))
	}

	JSON(ctx, w, status, response)
}

func supportID(ctx context.Context) string {
	traceID, err := contextx.TraceIDFromContext(ctx)
	if err != nil {
		return "unsupported"
	}

	return traceID.String()
}
