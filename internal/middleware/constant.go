package middleware

const (
	HeaderRequestID = "X-Request-ID"

	LogPrefixRateLimit = "internal.middleware.RateLimit"
)
