// Package tests holds helpers shared by package tests.
package tests

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// APIClient calls a JSON API and decodes 2xx bodies into dest and any other
// body into errDest.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPIClient(baseURL string, httpClient *http.Client) APIClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return APIClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (a APIClient) Get(ctx context.Context, endpoint string, headers http.Header, dest, errDest any) (*http.Response, error) {
	return a.Do(ctx, http.MethodGet, endpoint, headers, nil, dest, errDest)
}

func (a APIClient) Post(ctx context.Context, endpoint string, headers http.Header, request, dest, errDest any) (*http.Response, error) {
	return a.Do(ctx, http.MethodPost, endpoint, headers, request, dest, errDest)
}

func (a APIClient) Put(ctx context.Context, endpoint string, headers http.Header, request, dest, errDest any) (*http.Response, error) {
	return a.Do(ctx, http.MethodPut, endpoint, headers, request, dest, errDest)
}

func (a APIClient) Delete(ctx context.Context, endpoint string, headers http.Header, dest, errDest any) (*http.Response, error) {
	return a.Do(ctx, http.MethodDelete, endpoint, headers, nil, dest, errDest)
}

// Do sends request as JSON unless it is nil. The returned response body is
// already drained and closed.
func (a APIClient) Do(
	ctx context.Context,
	method string,
	endpoint string,
	headers http.Header,
	request any,
	dest any,
	errDest any,
) (*http.Response, error) {
	var payload io.Reader = http.NoBody

	if request != nil {
		b, err := json.Marshal(request)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal: %w", err)
		}

		payload = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, a.baseURL+endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header[k] = v
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	slog.DebugContext(ctx, "api call", slog.String("method", method), slog.String("endpoint", endpoint), slog.Int("status", resp.StatusCode))

	if err = parseResponse(resp, dest, errDest); err != nil {
		return nil, fmt.Errorf("parseResponse: %w", err)
	}

	return resp, nil
}

func parseResponse(r *http.Response, dest, errDest any) error {
	if r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices {
		if dest == nil {
			return nil
		}

		if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
			return fmt.Errorf("json.Decode(success destination): %w", err)
		}

		return nil
	}

	if errDest != nil {
		if err := json.NewDecoder(r.Body).Decode(errDest); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("json.Decode(err destination): %w", err)
		}
	}

	return nil
}
