package knowledge

const (
	LogPrefixExplain  = "internal.knowledge.Explain"
	LogPrefixConverse = "internal.knowledge.Converse"
)

// DefaultSystemPrompt frames every knowledge request.
const DefaultSystemPrompt = `You are JARVIS, an advanced AI assistant and teacher.

Your teaching style:
- Explain concepts clearly and simply
- Use analogies and real-world examples
- Break complex topics into digestible parts
- Adapt to the user's language (English, Hindi, or Hinglish)
- Be encouraging and patient

Structure your explanations:
1. Simple definition
2. Key concepts
3. Real-world example
4. Summary`

const (
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1024

	// conversational replies stay short
	converseMaxTokens = 256
	topicWords        = 3
	topicMinLen       = 3
)

const (
	questionFmt  = "%s\n\nQuestion: %s\n\nExplain clearly:"
	regardingFmt = "Regarding %s: %s"
)

var followUpPatterns = []string{
	"explain again", "simpler", "more detail", "example",
	"dobara", "aur", "phir se", "simple mein",
}

var topicStopWords = map[string]struct{}{
	"what": {}, "why": {}, "how": {}, "when": {}, "where": {},
	"is": {}, "are": {}, "the": {}, "a": {}, "an": {},
	"kya": {}, "kaise": {}, "kyu": {}, "hai": {}, "hain": {},
	"explain": {}, "tell": {}, "batao": {},
}
