// Package bazaar fetches price snapshots from the Hypixel SkyBlock bazaar.
package bazaar

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	jsoniter "github.com/json-iterator/go"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/internal/domain/entity"
	"github.com/SuperOrca/sbshards/pkg/contextx"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
	"github.com/SuperOrca/sbshards/pkg/httpx"
	"github.com/SuperOrca/sbshards/pkg/logx"
)

const DefaultURL = "https://api.hypixel.net/v2/skyblock/bazaar"

const errorBodyMaxLen = 500

var (
	json   = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip
	logger = contextx.LoggerFromContextOrDefault          //nolint:gochecknoglobals
)

type Options struct {
	URL            string
	Timeout        time.Duration
	RetryMax       int
	RetryWaitMin   time.Duration
	RetryWaitMax   time.Duration
	LogFieldMaxLen int
}

// Client implements the price feed on top of a retrying HTTP client.
// 429 and 5xx responses are retried with backoff before they are reported.
type Client struct {
	url    string
	client *retryablehttp.Client
}

func NewClient(opts Options, log *slog.Logger) *Client {
	if opts.URL == "" {
		opts.URL = DefaultURL
	}

	transport := httpx.NewLoggingRoundTripper(
		cleanhttp.DefaultPooledTransport(),
		httpx.WithoutBodies(),
		httpx.WithLogFieldMaxLen(opts.LogFieldMaxLen),
		httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()),
	)

	client := retryablehttp.NewClient()
	client.HTTPClient = &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	}
	client.Logger = nil
	if log != nil {
		client.Logger = log
	}
	client.RetryMax = opts.RetryMax
	client.RetryWaitMin = opts.RetryWaitMin
	client.RetryWaitMax = opts.RetryWaitMax
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		url:    opts.URL,
		client: client,
	}
}

type quickStatus struct {
	BuyPrice  float64 `json:"buyPrice"`
	SellPrice float64 `json:"sellPrice"`
}

type product struct {
	QuickStatus *quickStatus `json:"quick_status"`
}

type response struct {
	Success     bool               `json:"success"`
	Cause       string             `json:"cause"`
	LastUpdated int64              `json:"lastUpdated"`
	Products    map[string]product `json:"products"`
}

// Snapshot fetches the full product list. Products without a quick status
// are left out of the snapshot.
func (c *Client) Snapshot(ctx context.Context) (entity.PriceSnapshot, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return entity.PriceSnapshot{}, fmt.Errorf("retryablehttp.NewRequestWithContext: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.PriceSnapshot{}, domain.WrapError(err, errcodes.FeedUnavailable, "bazaar unreachable")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.PriceSnapshot{}, statusError(resp)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return entity.PriceSnapshot{}, domain.WrapError(
			fmt.Errorf("json.Decode: %w", err),
			errcodes.FeedRejected,
			"bazaar response malformed",
		)
	}

	if !body.Success {
		msg := "bazaar reported success=false"
		if body.Cause != "" {
			msg += ": " + body.Cause
		}

		return entity.PriceSnapshot{}, domain.NewError(errcodes.FeedRejected, msg)
	}

	snapshot := entity.PriceSnapshot{
		Quotes: make(map[string]entity.Quote, len(body.Products)),
	}

	if body.LastUpdated > 0 {
		snapshot.UpdatedAt = time.UnixMilli(body.LastUpdated)
	}

	for key, p := range body.Products {
		if p.QuickStatus == nil {
			continue
		}

		snapshot.Quotes[key] = entity.Quote{
			InstaBuyPrice: p.QuickStatus.BuyPrice,
			BuyOrderPrice: p.QuickStatus.SellPrice,
		}
	}

	logger(ctx).Debug("bazaar snapshot fetched", slog.Int(logx.FieldCount, len(snapshot.Quotes)))

	return snapshot, nil
}

func statusError(resp *http.Response) error {
	excerpt, err := io.ReadAll(io.LimitReader(resp.Body, errorBodyMaxLen))
	if err != nil {
		excerpt = []byte(fmt.Sprintf("(failed to read body: %v)", err))
	}

	cause := fmt.Errorf("bazaar returned %d: %s", resp.StatusCode, excerpt)

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return domain.WrapError(cause, errcodes.FeedRateLimited, "bazaar rate limited")
	case resp.StatusCode == http.StatusNotFound:
		return domain.WrapError(cause, errcodes.FeedNotFound, "bazaar endpoint not found")
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return domain.WrapError(cause, errcodes.FeedForbidden, "bazaar refused the request")
	case resp.StatusCode >= http.StatusInternalServerError:
		return domain.WrapError(cause, errcodes.FeedServerError, "bazaar unavailable")
	default:
		return domain.WrapError(cause, errcodes.FeedRejected, "bazaar rejected the request")
	}
}
