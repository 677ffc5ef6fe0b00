package service

import (
	"fmt"

	"github.com/SuperOrca/sbshards/internal/domain"
	"github.com/SuperOrca/sbshards/pkg/errcodes"
)

const (
	MessageFeedUnavailable = "Network error: Unable to connect to Hypixel API. Please check your internet connection and try again."
	MessageFeedForbidden   = "Access error: The Hypixel API refused the request. This is a security restriction on the API side."
	MessageFeedRateLimited = "Rate limited: Too many requests to Hypixel API. Please wait a moment and try again."
	MessageFeedServerError = "Hypixel API is currently unavailable. Please try again in a few minutes."
	MessageFeedNotFound    = "Hypixel API endpoint not found. The API may have changed."
	MessageCatalogLoad     = "Failed to load shards data. Please retry."
	MessageInProgress      = "A calculation is already running. Please wait for it to finish."
	MessageNoResults       = "No results to export. Please calculate shard costs first."
	MessageNoShards        = "No shards available for calculation"
)

// UserMessage picks the one message shown for a failed command.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	code, _ := domain.GetCode(err)

	switch code {
	case errcodes.FeedUnavailable:
		return MessageFeedUnavailable
	case errcodes.FeedForbidden:
		return MessageFeedForbidden
	case errcodes.FeedRateLimited:
		return MessageFeedRateLimited
	case errcodes.FeedServerError:
		return MessageFeedServerError
	case errcodes.FeedNotFound:
		return MessageFeedNotFound
	case errcodes.CatalogUnavailable:
		return fmt.Sprintf("%s (%v)", MessageCatalogLoad, err)
	case errcodes.CalculationInProgress:
		return MessageInProgress
	case errcodes.NoResults:
		return MessageNoResults
	default:
		return fmt.Sprintf("Error: %v. Please try again or check the logs for more details.", err)
	}
}
