package httpx

type Option func(*LoggingRoundTripper)

func WithLogFieldMaxLen(logFieldMaxLen int) Option {
	return func(rt *LoggingRoundTripper) {
		rt.logFieldMaxLen = logFieldMaxLen
	}
}

func WithSensitiveDataMasker(sensitiveDataMasker sensitiveDataMasker) Option {
	return func(rt *LoggingRoundTripper) {
		rt.sensitiveDataMasker = sensitiveDataMasker
	}
}

// WithoutBodies logs only the request line and headers. Used for large
// payloads such as the full bazaar product list.
func WithoutBodies() Option {
	return func(rt *LoggingRoundTripper) {
		rt.logBodies = false
	}
}
