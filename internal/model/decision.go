package model

// Entity keys produced by the action resolver.
const (
	EntityTargetLanguage = "target_language"
	EntityVideoName      = "video_name"
	EntitySearchTerms    = "search_terms"
	EntityAppName        = "app_name"
	EntityContact        = "contact"
	EntityMessage        = "message"
	EntityFullQuery      = "full_query"
)

// Parameters carries the untouched utterance alongside a decision.
type Parameters struct {
	Query string `json:"query"`
}

// Entities maps entity names to values. A nil value is a null entity.
type Entities map[string]*string

// Clone returns a deep copy so callers cannot mutate a decision's entities.
func (e Entities) Clone() Entities {
	out := make(Entities, len(e))
	for k, v := range e {
		if v == nil {
			out[k] = nil
			continue
		}
		s := *v
		out[k] = &s
	}
	return out
}

// Get returns the entity value and whether it is present and non-null.
func (e Entities) Get(key string) (string, bool) {
	v, ok := e[key]
	if !ok || v == nil {
		return "", false
	}
	return *v, true
}

// TaskDecision is the action resolver's output for one utterance.
type TaskDecision struct {
	Intent     DecisionIntent `json:"intent"`
	Action     Action         `json:"action"`
	Parameters Parameters     `json:"parameters"`
	Entities   Entities       `json:"entities"`
	Confidence float64        `json:"confidence"`
}

// NewTaskDecision builds a task decision. The entity map is copied.
func NewTaskDecision(action Action, query string, confidence float64, entities Entities) TaskDecision {
	if entities == nil {
		entities = Entities{}
	}
	return TaskDecision{
		Intent:     DecisionTask,
		Action:     action,
		Parameters: Parameters{Query: query},
		Entities:   entities.Clone(),
		Confidence: confidence,
	}
}

// StrPtr is a small helper for building Entities literals.
func StrPtr(s string) *string {
	return &s
}
