package app

const (
	LogPrefixNew = "internal.app.New"

	fallbackTimezone = "UTC"
)
