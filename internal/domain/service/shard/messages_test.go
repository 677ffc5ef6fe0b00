package service_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SuperOrca/sbshards/internal/domain"
	service "github.com/SuperOrca/sbshards/internal/domain/service/shard"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil",
			err:  nil,
			want: "",
		},
		{
			name: "network",
			err:  fmt.Errorf("feed.Snapshot: %w", domain.NewError(errcodes.FeedUnavailable, "dial tcp: timeout")),
			want: service.MessageFeedUnavailable,
		},
		{
			name: "forbidden",
			err:  domain.NewError(errcodes.FeedForbidden, "bazaar returned 403"),
			want: service.MessageFeedForbidden,
		},
		{
			name: "rate limited",
			err:  domain.NewError(errcodes.FeedRateLimited, "bazaar returned 429"),
			want: service.MessageFeedRateLimited,
		},
		{
			name: "server error",
			err:  domain.NewError(errcodes.FeedServerError, "bazaar returned 503"),
			want: service.MessageFeedServerError,
		},
		{
			name: "not found",
			err:  domain.NewError(errcodes.FeedNotFound, "bazaar returned 404"),
			want: service.MessageFeedNotFound,
		},
		{
			name: "in progress",
			err:  domain.ErrCalculationInProgress,
			want: service.MessageInProgress,
		},
		{
			name: "no results",
			err:  domain.ErrNoResults,
			want: service.MessageNoResults,
		},
		{
			name: "generic",
			err:  errors.New("boom"),
			want: "Error: boom. Please try again or check the logs for more details.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			rq.Equal(tc.want, service.UserMessage(tc.err))
		})
	}

	t.Run("catalog", func(t *testing.T) {
		rq := require.New(t)

		msg := service.UserMessage(domain.NewError(errcodes.CatalogUnavailable, "open shards.json: no such file"))
		rq.Contains(msg, service.MessageCatalogLoad)
		rq.Contains(msg, "shards.json")
	})
}
