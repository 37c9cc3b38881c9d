package http

const (
	LogPrefixProcess  = "internal.assistant.delivery.http.Process"
	LogPrefixSanitize = "internal.assistant.delivery.http.Sanitize"
	LogPrefixExecute  = "internal.assistant.delivery.http.Execute"
)
