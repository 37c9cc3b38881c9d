package model

import "encoding/json"

// IntentCategory is the coarse category assigned to an utterance.
type IntentCategory string

const (
	IntentAction       IntentCategory = "ACTION"
	IntentInformation  IntentCategory = "INFORMATION"
	IntentConversation IntentCategory = "CONVERSATION"
	IntentExit         IntentCategory = "EXIT"
)

// Categories lists every category in the order the detector evaluates them.
var Categories = []IntentCategory{IntentExit, IntentAction, IntentInformation, IntentConversation}

// IsValid reports whether c is one of the four known categories.
func (c IntentCategory) IsValid() bool {
	switch c {
	case IntentAction, IntentInformation, IntentConversation, IntentExit:
		return true
	}
	return false
}

// DecisionIntent tags a TaskDecision or Result with the route that produced it.
type DecisionIntent string

const (
	DecisionTask         DecisionIntent = "task"
	DecisionInformation  DecisionIntent = "information"
	DecisionConversation DecisionIntent = "conversation"
	DecisionBlocked      DecisionIntent = "BLOCKED"
)

// Action identifies a concrete automatable task.
type Action string

const (
	ActionNone           Action = ""
	ActionChangeLanguage Action = "change_language"
	ActionPlayYouTube    Action = "play_youtube"
	ActionSearch         Action = "search"
	ActionOpenApp        Action = "open_app"
	ActionSendMessage    Action = "send_message"
	ActionSendEmail      Action = "send_email"
	ActionOrderFood      Action = "order_food"
	ActionGetWeather     Action = "get_weather"
	ActionTimeDate       Action = "time_date"
	ActionExit           Action = "exit"
)

// IsNone reports whether no action was resolved.
func (a Action) IsNone() bool {
	return a == ActionNone
}

// MarshalJSON encodes ActionNone as null.
func (a Action) MarshalJSON() ([]byte, error) {
	if a.IsNone() {
		return []byte("null"), nil
	}
	return json.Marshal(string(a))
}

// UnmarshalJSON accepts null as ActionNone.
func (a *Action) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*a = ActionNone
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*a = Action(s)
	return nil
}
