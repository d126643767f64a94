package constants

// Redis key prefixes.
const (
	RateLimitKeyPrefix = "ratelimit"
)
