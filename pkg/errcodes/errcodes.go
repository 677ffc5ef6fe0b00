package errcodes

type Code string

func (c Code) String() string {
	return string(c)
}

const (
	InternalServerError Code = "InternalServerError"
	TimeoutExceeded     Code = "TimeoutExceeded"
	ValidationError     Code = "ValidationError"
	NotFound            Code = "NotFound"

	// Catalog.
	CatalogUnavailable Code = "CatalogUnavailable"
	ShardNotFound      Code = "ShardNotFound"

	// Price feed.
	FeedUnavailable Code = "FeedUnavailable"
	FeedRejected    Code = "FeedRejected"
	FeedRateLimited Code = "FeedRateLimited"
	FeedServerError Code = "FeedServerError"
	FeedNotFound    Code = "FeedNotFound"
	FeedForbidden   Code = "FeedForbidden"

	// Calculation.
	CalculationInProgress Code = "CalculationInProgress"
	NoResults             Code = "NoResults"
	InvalidSortColumn     Code = "InvalidSortColumn"
	InvalidSortDirection  Code = "InvalidSortDirection"
	InvalidRarity         Code = "InvalidRarity"
	InvalidView           Code = "InvalidView"

	// Preferences.
	PreferencesUnavailable Code = "PreferencesUnavailable"
)
