package executor

const (
	LogPrefixExecute = "internal.executor.Execute"
	LogPrefixLaunch  = "internal.executor.Launcher"
)

const (
	googleSearchURL  = "https://www.google.com/search?q="
	youtubeSearchURL = "https://www.youtube.com/results?search_query="
	whatsAppWebURL   = "https://web.whatsapp.com"
	whatsAppSendURL  = "https://web.whatsapp.com/send?text="
	gmailComposeURL  = "https://mail.google.com/mail/?view=cm&fs=1"
	swiggyURL        = "https://www.swiggy.com"
	zomatoURL        = "https://www.zomato.com"
)

const (
	placeholderApp   = "the application"
	placeholderQuery = "that"
)

const (
	timeLayout = "03:04 PM"
	dateLayout = "Monday, January 02, 2006"
)

// Replies spoken after a task runs.
const (
	ReplyLanguageChangedFmt = "Language changed to %s"
	ReplyLanguageFailed     = "Sorry, couldn't change the language"
	ReplyWhichApp           = "Which application would you like me to open?"
	ReplyUnknownAppFmt      = "I don't know how to open %s"
	ReplyAppFailedFmt       = "Couldn't open %s"
	ReplyCommandBlocked     = "Command blocked for security reasons"
	ReplyURLBlocked         = "URL blocked for security reasons"
	ReplyOpenFailed         = "Sorry, I couldn't open that."
	ReplyWhatToSearch       = "What would you like me to search for?"
	ReplyWhatToPlay         = "What would you like me to play?"
	ReplyWhoToMessage       = "WhatsApp is open. Who would you like to message?"
	ReplyEmail              = "Gmail compose window is open. What would you like to write?"
	ReplySwiggy             = "Swiggy is open. What would you like to order?"
	ReplyZomato             = "Zomato is open. What would you like to order?"
	ReplyFoodDefault        = "I've opened Swiggy. What would you like to order?"
	ReplyWeather            = "Weather needs an API provider. Add one to the configuration to enable forecasts."
	ReplyTimeFmt            = "The time is %s"
	ReplyTodayFmt           = "Today is %s"
	ReplyRelativeDateFmt    = "That's %s"
	ReplyDateTimeFmt        = "It's %s on %s"
	ReplyGoodbye            = "Goodbye!"
)

var languageNames = map[string]string{
	"en": "English",
	"hi": "Hindi",
	"ta": "Tamil",
	"te": "Telugu",
	"kn": "Kannada",
	"bn": "Bengali",
	"mr": "Marathi",
	"gu": "Gujarati",
}
