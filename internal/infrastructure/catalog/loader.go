// Package catalog reads the static shard list from a file or URL.
package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/internal/domain/entity"
	"github.com/SuperOrca/sbshards/pkg/contextx"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
	"github.com/SuperOrca/sbshards/pkg/logx"
)

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

const (
	defaultTimeout      = 10 * time.Second
	defaultRetryMax     = 2
	defaultRetryWaitMin = 500 * time.Millisecond
	defaultRetryWaitMax = 3 * time.Second
)

type HTTPOptions struct {
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// NewHTTPClient builds the client for URL sources: pooled transport, a
// per-attempt timeout and backoff on connection errors and 5xx.
func NewHTTPClient(opts HTTPOptions) *http.Client {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.RetryWaitMin <= 0 {
		opts.RetryWaitMin = defaultRetryWaitMin
	}
	if opts.RetryWaitMax < opts.RetryWaitMin {
		opts.RetryWaitMax = max(defaultRetryWaitMax, opts.RetryWaitMin)
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = cleanhttp.DefaultPooledClient()
	client.HTTPClient.Timeout = opts.Timeout
	client.Logger = nil
	client.RetryMax = opts.RetryMax
	client.RetryWaitMin = opts.RetryWaitMin
	client.RetryWaitMax = opts.RetryWaitMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return client.StandardClient()
}

type Loader struct {
	source string
	client *http.Client
}

// NewLoader returns a loader for source, which is either a local path or an
// http(s) URL.
func NewLoader(source string) *Loader {
	return &Loader{
		source: source,
		client: NewHTTPClient(HTTPOptions{RetryMax: defaultRetryMax}),
	}
}

func (l *Loader) WithHTTPClient(client *http.Client) *Loader {
	l.client = client
	return l
}

// Load returns the catalog entries in source order. Any read or decode
// failure is a CatalogUnavailable error.
func (l *Loader) Load(ctx context.Context) ([]entity.Shard, error) {
	body, err := l.open(ctx)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.CatalogUnavailable, "failed to load shards data")
	}
	defer body.Close()

	var shards []entity.Shard
	if err := json.NewDecoder(body).Decode(&shards); err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("json.Decode: %w", err),
			errcodes.CatalogUnavailable,
			"failed to parse shards data",
		)
	}

	if shards == nil {
		shards = []entity.Shard{}
	}

	logger(ctx).Debug(
		"catalog read",
		slog.String(logx.FieldSource, l.source),
		slog.Int(logx.FieldCount, len(shards)),
	)

	return shards, nil
}

func (l *Loader) open(ctx context.Context) (io.ReadCloser, error) {
	if !isURL(l.source) {
		f, err := os.Open(l.source)
		if err != nil {
			return nil, fmt.Errorf("os.Open: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.source, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("client.Do: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	return resp.Body, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
