package vocab

// Default returns the built-in English and romanized Hindi vocabulary.
func Default() *Tables {
	return &Tables{
		Intent: IntentTables{
			Exit: Keywords{
				en("exit", "quit", "goodbye", "bye", "close jarvis", "sleep", "stop listening"),
				hi("band karo"),
			},
			Action: Keywords{
				en("open", "launch", "start", "run", "play", "watch", "message", "send", "email", "call",
					"text", "msg", "search", "google", "find", "close", "quit", "stop", "volume", "mute",
					"time", "date", "timer", "alarm", "reminder"),
				hi("kholo", "chalu", "kijiye", "karo", "chalao", "bajao", "sunao", "dekho", "lagao", "suno",
					"bhejo", "dhundo", "khojo", "band"),
			},
			Apps: Keywords{
				en("chrome", "firefox", "edge", "browser", "code", "vscode", "visual studio", "whatsapp",
					"telegram", "slack", "spotify", "vlc", "media player", "notepad", "calculator", "paint",
					"excel", "word", "powerpoint", "youtube", "video", "song", "music"),
			},
			Information: Keywords{
				en("what", "why", "how", "when", "where", "who", "which", "explain", "define", "tell",
					"describe", "mean", "meaning", "about", "concept", "idea", "theory", "principle", "definition"),
				hi("kya", "kyu", "kyun", "kaise", "kab", "kahan", "kaun", "batao", "samjhao", "matlab",
					"ke baare mein"),
			},
			Conversation: Keywords{
				en("hello", "hi", "hey", "good morning", "good evening", "how are you", "thanks",
					"thank you", "sorry"),
				hi("namaste", "kaise ho", "kya haal", "dhanyavaad", "shukriya", "maaf karo"),
			},
			CommandPatterns: []string{"open", "play", "send to", "search for", "kholo", "chalao", "bajao", "bhejo", "kijiye"},
		},
		Resolver: ResolverTables{
			LanguageSwitch: Keywords{
				en("change language", "speak", "talk in", "language"),
				hi("bol", "bolo", "bhasha"),
			},
			Languages: []LanguageName{
				{Name: "english", Code: "en"},
				{Name: "hindi", Code: "hi"},
				{Name: "tamil", Code: "ta"},
				{Name: "telugu", Code: "te"},
				{Name: "kannada", Code: "kn"},
				{Name: "bengali", Code: "bn"},
				{Name: "marathi", Code: "mr"},
				{Name: "gujarati", Code: "gu"},
				{Name: "angrez", Code: "en"},
				{Name: "angrezi", Code: "en"},
			},
			Media: Keywords{
				en("youtube", "video", "song", "music"),
				hi("gaana", "gana", "sangeet", "gaane"),
			},
			PlayVerbs: Keywords{
				en("play"),
				hi("chalao", "bajao", "sunao", "suno", "laga", "lagao"),
			},
			MusicContent: Keywords{
				en("song", "singer", "artist", "album", "track"),
				hi("hanuman", "chalisa", "bhajan"),
			},
			Search: Keywords{
				en("search", "google", "find", "look up", "lookup"),
				hi("dhundo", "khojo", "search karo", "google par", "google karo"),
			},
			Open: Keywords{
				en("open", "launch", "start", "run"),
				hi("kholo", "khol", "chalu", "shuru", "kijiye", "karo", "kariye", "dikhao"),
			},
			Apps: []string{
				"chrome", "browser", "edge", "firefox", "vscode", "vs code", "visual studio code",
				"whatsapp", "slack", "notepad", "calculator", "files", "file explorer", "explorer",
				"terminal", "cmd", "powershell",
			},
			Message: Keywords{
				en("message", "whatsapp", "send", "text", "msg"),
				hi("bhejo", "bhej", "message bhejo", "msg kar"),
			},
			Email: Keywords{
				en("email", "mail"),
			},
			Food: Keywords{
				en("order", "food", "swiggy", "zomato", "hungry"),
				hi("khana"),
			},
			Weather: Keywords{
				en("weather", "temperature", "temp", "climate", "rain"),
				hi("mausam", "garmi", "sardi", "barish"),
			},
			TimeDate: Keywords{
				en("time", "date", "today"),
				hi("kya time", "kitne baje", "din"),
			},
			Exit: Keywords{
				en("exit", "quit", "stop", "goodbye", "bye", "close"),
				hi("band karo"),
			},
			VideoStopWords: Keywords{
				en("play", "open", "youtube", "on", "video", "song", "music", "the", "a", "an", "please"),
				hi("chalao", "bajao", "sunao", "lagao", "laga", "suno", "dikhao", "par", "pe", "mein", "me",
					"kar", "karo", "do", "de", "dijiye", "kijiye", "jiye", "gaana", "gana", "kya", "hai"),
			},
			SearchStopWords: Keywords{
				en("search", "google", "find", "lookup", "look up", "for", "about", "on"),
				hi("dhundo", "khojo", "karo", "kar", "do", "par", "pe"),
			},
			ContactNoise: Keywords{
				en("whatsapp", "message", "send", "open"),
				hi("kholo", "aur"),
			},
			MessageCommandNoun: Keywords{
				en("message", "send"),
				hi("bhejo", "bhejiye", "kar", "do"),
			},
		},
		Conversation: ConversationTables{
			Replies: []CannedReply{
				{Name: "greeting", Triggers: []string{"hello", "hi", "hey", "namaste", "namaskaar"}, Reply: "Hello! What can I do for you?"},
				{Name: "wellbeing", Triggers: []string{"how are you", "kaise ho", "how r you"}, Reply: "I'm doing great! What about you?"},
				{Name: "thanks", Triggers: []string{"thank", "thanks", "shukriya", "dhanyavad"}, Reply: "You're welcome!"},
				{Name: "identity", Triggers: []string{"who are you", "what are you", "kaun ho", "tum kaun"}, Reply: "I'm JARVIS, your AI assistant. I can control your computer, answer questions, and help with tasks."},
				{Name: "name", Triggers: []string{"your name", "naam kya", "what is your name"}, Reply: "I'm JARVIS."},
				{Name: "capabilities", Triggers: []string{"what can you do", "kya kar sakte", "capabilities"}, Reply: "I can open apps, search the web, play music on YouTube, send messages, and answer your questions."},
			},
			Default: "I'm here. What would you like me to do?",
		},
	}
}
