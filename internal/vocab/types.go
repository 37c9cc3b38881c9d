package vocab

// Locale tags used by the built-in keyword sets.
const (
	LocaleEnglish  = "en"
	LocaleHinglish = "hi-Latn"
)

// KeywordSet is a group of keywords for a single locale.
type KeywordSet struct {
	Locale string   `yaml:"locale" json:"locale"`
	Words  []string `yaml:"words" json:"words"`
}

// Keywords is an ordered list of locale tagged keyword sets.
type Keywords []KeywordSet

// LanguageName maps a spoken language name to its ISO code.
type LanguageName struct {
	Name string `yaml:"name" json:"name"`
	Code string `yaml:"code" json:"code"`
}

// IntentTables parameterize the intent detector.
type IntentTables struct {
	Exit            Keywords `yaml:"exit"`
	Action          Keywords `yaml:"action"`
	Apps            Keywords `yaml:"apps"`
	Information     Keywords `yaml:"information"`
	Conversation    Keywords `yaml:"conversation"`
	CommandPatterns []string `yaml:"command_patterns"`
}

// ResolverTables parameterize the action resolver and its entity extractors.
type ResolverTables struct {
	LanguageSwitch Keywords       `yaml:"language_switch"`
	Languages      []LanguageName `yaml:"languages"`
	Media          Keywords       `yaml:"media"`
	PlayVerbs      Keywords       `yaml:"play_verbs"`
	MusicContent   Keywords       `yaml:"music_content"`
	Search         Keywords       `yaml:"search"`
	Open           Keywords       `yaml:"open"`
	Apps           []string       `yaml:"apps"`
	Message        Keywords       `yaml:"message"`
	Email          Keywords       `yaml:"email"`
	Food           Keywords       `yaml:"food"`
	Weather        Keywords       `yaml:"weather"`
	TimeDate       Keywords       `yaml:"time_date"`
	Exit           Keywords       `yaml:"exit"`

	VideoStopWords     Keywords `yaml:"video_stop_words"`
	SearchStopWords    Keywords `yaml:"search_stop_words"`
	ContactNoise       Keywords `yaml:"contact_noise"`
	MessageCommandNoun Keywords `yaml:"message_command_words"`
}

// ConversationTables hold the canned replies used when no knowledge backend answers.
type ConversationTables struct {
	Replies []CannedReply `yaml:"replies"`
	Default string        `yaml:"default"`
}

// CannedReply is returned when any trigger appears in the utterance.
type CannedReply struct {
	Name     string   `yaml:"name"`
	Triggers []string `yaml:"triggers"`
	Reply    string   `yaml:"reply"`
}

// Tables is the full vocabulary the engine is parameterized over.
type Tables struct {
	Intent       IntentTables       `yaml:"intent"`
	Resolver     ResolverTables     `yaml:"resolver"`
	Conversation ConversationTables `yaml:"conversation"`
}
