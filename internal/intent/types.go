package intent

import "jarvis-assistant/internal/model"

// Score is the detector's verdict for one utterance.
// Scores are computed independently and are not normalized.
type Score struct {
	Category   model.IntentCategory             `json:"category"`
	Confidence float64                          `json:"confidence"`
	Scores     map[model.IntentCategory]float64 `json:"scores"`
	Details    map[string]string                `json:"details"`
}

// Type returns the details type tag, e.g. system_control.
func (s Score) Type() string {
	return s.Details[DetailType]
}
