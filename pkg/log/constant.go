package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Structured field keys attached to every entry when present in the context.
const (
	FieldTraceID   = "trace_id"
	FieldSessionID = "session_id"
)
