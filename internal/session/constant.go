package session

import "time"

const (
	LogPrefixGet     = "internal.session.Registry.Get"
	LogPrefixEvict   = "internal.session.Registry.evict"
	LogPrefixProcess = "internal.session.Session.Process"
)

const (
	DefaultTTL             = 30 * time.Minute
	DefaultMaxSessions     = 1000
	DefaultRateLimitPerMin = 60

	limiterMaxSources = 1000
	limiterTTL        = 5 * time.Minute
)
