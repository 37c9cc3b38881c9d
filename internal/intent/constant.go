package intent

// Log prefixes
const (
	LogPrefixClassify = "internal.intent.Classify"
)

// Scoring weights
const (
	keywordWeight       = 0.3
	actionVerbWeight    = 0.6
	actionAppWeight     = 0.4
	commandBonus        = 0.3
	infoKeywordWeight   = 0.6
	questionMarkBonus   = 0.3
	copulaBonus         = 0.1
	shortUtteranceBonus = 0.2
	shortUtteranceMax   = 3
)

// Decision thresholds. ACTION is inclusive and lower than the others so
// ambiguous commands run locally instead of going to the knowledge backend.
const (
	ExitThreshold         = 0.5
	ActionThreshold       = 0.4
	InformationThreshold  = 0.4
	ConversationThreshold = 0.3
	FallbackConfidence    = 0.5
)

// Detail keys and values
const (
	DetailType   = "type"
	DetailReason = "reason"

	TypeSystemControl    = "system_control"
	TypeKnowledgeRequest = "knowledge_request"
	TypeCasualChat       = "casual_chat"
	TypeUnclearFallback  = "unclear_fallback"
	TypeExit             = "exit"

	ReasonExitKeyword = "exit_keyword_match"
)

const copulaPattern = `\b(is|are|was|were|hai|hain)\b`
