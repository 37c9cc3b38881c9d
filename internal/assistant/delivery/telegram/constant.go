package telegram

const (
	LogPrefixWebhook = "internal.assistant.delivery.telegram.HandleWebhook"
	LogPrefixProcess = "internal.assistant.delivery.telegram.processMessage"

	sessionIDFmt = "telegram_%d"
)

const (
	commandStart = "/start"
	commandHelp  = "/help"
	commandReset = "/reset"
)

const (
	msgStart = "Hello, I'm *JARVIS*.\n\nTell me what you need in English or Hinglish:\n• open apps and websites\n• search Google or play YouTube\n• answer questions\n• tell the time and date\n\nSend /help for examples."
	msgHelp  = "*Examples*\n`open chrome`\n`play despacito on youtube`\n`search for golang tutorials`\n`what is photosynthesis?`\n`kal kya date hai`\n`change language to hindi`\n\n/reset clears our conversation."
	msgReset = "Conversation cleared. Let's start fresh."
	msgError = "Something went wrong while handling your request. Please try again."
)
