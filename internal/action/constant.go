package action

// Log prefixes
const (
	LogPrefixResolve = "internal.action.Resolve"
)

// Rule confidences
const (
	ConfidenceChangeLanguage = 0.98
	ConfidenceMedia          = 0.95
	ConfidenceMusicContent   = 0.94
	ConfidenceOpenApp        = 0.93
	ConfidenceSearch         = 0.92
	ConfidenceWeather        = 0.90
	ConfidenceMessage        = 0.88
	ConfidenceEmail          = 0.85
	ConfidenceFood           = 0.82
	ConfidenceTimeDate       = 1.0
	ConfidenceExit           = 1.0
	ConfidenceDefault        = 0.5
)

// Placeholders returned when extraction finds nothing.
const (
	PlaceholderApp   = "the application"
	PlaceholderQuery = "that"
)

// Connector words used by contact and message extraction.
const (
	wordTo      = "to"
	wordThat    = "that"
	wordKo      = "ko"
	wordKi      = "ki"
	wordBhejo   = "bhejo"
	wordMessage = "message"
)

const capitalizedMinLen = 3
