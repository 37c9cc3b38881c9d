package model

// Result is the uniform record returned for every processed utterance.
type Result struct {
	Intent     DecisionIntent `json:"intent"`
	Category   IntentCategory `json:"category,omitempty"`
	Response   string         `json:"response"`
	Action     Action         `json:"action"`
	Parameters Parameters     `json:"parameters"`
	Entities   Entities       `json:"entities"`
	Confidence float64        `json:"confidence"`
	Warning    string         `json:"warning,omitempty"`
}

// Decision projects the result onto the shape consumed by task executors.
func (r Result) Decision() TaskDecision {
	return TaskDecision{
		Intent:     r.Intent,
		Action:     r.Action,
		Parameters: r.Parameters,
		Entities:   r.Entities.Clone(),
		Confidence: r.Confidence,
	}
}
