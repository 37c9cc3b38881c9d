package brain

const (
	LogPrefixProcess = "internal.brain.Process"
	LogPrefixAction  = "internal.brain.actionRoute"
	LogPrefixInfo    = "internal.brain.infoRoute"
	LogPrefixConvo   = "internal.brain.convoRoute"
)

const (
	ResponseBlocked  = "I cannot process that request for security reasons."
	ResponseExit     = "Goodbye! It was great talking to you."
	ResponseFallback = "I'm not sure what you'd like me to do. Can you rephrase that?"
	ResponseNoAnswer = "I couldn't reach my knowledge base right now. Please try again in a moment."

	ConfidenceBlocked  = 1.0
	ConfidenceExit     = 1.0
	ConfidenceFallback = 0.3

	DefaultLanguage = "en"
)

const conversationPromptFmt = `User said: %s

Respond naturally and warmly like a friendly AI assistant. Keep it brief (1-2 sentences).
Be conversational and human-like. Common greetings:
- "hey" / "hello" → "Hello! How can I help you?"
- "how are you" → "I'm great, thanks for asking! How can I assist you?"
- "thanks" → "You're welcome! Happy to help."
`

// acknowledgment templates, %s is the entity value
var (
	openAppReplies = []string{"Opening %s.", "Sure, launching %s.", "On it. Opening %s."}
	searchReplies  = []string{"Searching for %s.", "Looking up %s for you.", "On it. Searching %s."}
	playReplies    = []string{"Playing %s now.", "Sure, playing %s.", "On it. Starting %s.", "Playing %s for you."}
	exitReplies    = []string{"Goodbye!", "See you later!", "Until next time!"}
	genericReplies = []string{"Done.", "Got it.", "On it."}
)

const (
	messageBothFmt    = "Sending message to %s."
	messageContactFmt = "Opening chat with %s."
	messageBare       = "Opening WhatsApp."
	emailReply        = "Opening Gmail for you."
	foodReply         = "Opening food delivery app."
)
