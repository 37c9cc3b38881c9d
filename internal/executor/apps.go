package executor

// appCommands holds the launch command of every known application per GOOS.
var appCommands = map[string]map[string][]string{
	"windows": {
		"chrome":             {"cmd", "/c", "start", "chrome"},
		"browser":            {"cmd", "/c", "start", "chrome"},
		"google chrome":      {"cmd", "/c", "start", "chrome"},
		"edge":               {"cmd", "/c", "start", "msedge"},
		"microsoft edge":     {"cmd", "/c", "start", "msedge"},
		"firefox":            {"cmd", "/c", "start", "firefox"},
		"vscode":             {"code"},
		"vs code":            {"code"},
		"visual studio code": {"code"},
		"code":               {"code"},
		"pycharm":            {"cmd", "/c", "start", "pycharm"},
		"sublime":            {"cmd", "/c", "start", "sublime_text"},
		"whatsapp":           {"cmd", "/c", "start", "whatsapp:"},
		"telegram":           {"cmd", "/c", "start", "telegram:"},
		"slack":              {"cmd", "/c", "start", "slack:"},
		"discord":            {"cmd", "/c", "start", "discord:"},
		"spotify":            {"cmd", "/c", "start", "spotify:"},
		"vlc":                {"cmd", "/c", "start", "vlc"},
		"notepad":            {"notepad"},
		"calculator":         {"calc"},
		"paint":              {"mspaint"},
		"files":              {"cmd", "/c", "start", "explorer"},
		"file explorer":      {"cmd", "/c", "start", "explorer"},
		"explorer":           {"cmd", "/c", "start", "explorer"},
		"terminal":           {"cmd", "/c", "start", "cmd"},
		"cmd":                {"cmd", "/c", "start", "cmd"},
		"command prompt":     {"cmd", "/c", "start", "cmd"},
		"powershell":         {"cmd", "/c", "start", "powershell"},
		"word":               {"cmd", "/c", "start", "winword"},
		"excel":              {"cmd", "/c", "start", "excel"},
		"powerpoint":         {"cmd", "/c", "start", "powerpnt"},
	},
	"darwin": {
		"chrome":             {"open", "-a", "Google Chrome"},
		"google chrome":      {"open", "-a", "Google Chrome"},
		"browser":            {"open", "-a", "Safari"},
		"safari":             {"open", "-a", "Safari"},
		"firefox":            {"open", "-a", "Firefox"},
		"edge":               {"open", "-a", "Microsoft Edge"},
		"vscode":             {"open", "-a", "Visual Studio Code"},
		"vs code":            {"open", "-a", "Visual Studio Code"},
		"visual studio code": {"open", "-a", "Visual Studio Code"},
		"code":               {"open", "-a", "Visual Studio Code"},
		"pycharm":            {"open", "-a", "PyCharm"},
		"sublime":            {"open", "-a", "Sublime Text"},
		"whatsapp":           {"open", "-a", "WhatsApp"},
		"telegram":           {"open", "-a", "Telegram"},
		"slack":              {"open", "-a", "Slack"},
		"spotify":            {"open", "-a", "Spotify"},
		"vlc":                {"open", "-a", "VLC"},
		"terminal":           {"open", "-a", "Terminal"},
		"finder":             {"open", "-a", "Finder"},
		"files":              {"open", "-a", "Finder"},
		"file explorer":      {"open", "-a", "Finder"},
		"calculator":         {"open", "-a", "Calculator"},
		"notes":              {"open", "-a", "Notes"},
	},
	"linux": {
		"chrome":             {"google-chrome"},
		"google chrome":      {"google-chrome"},
		"chromium":           {"chromium"},
		"browser":            {"xdg-open", "https://google.com"},
		"firefox":            {"firefox"},
		"edge":               {"microsoft-edge"},
		"vscode":             {"code"},
		"vs code":            {"code"},
		"visual studio code": {"code"},
		"code":               {"code"},
		"pycharm":            {"pycharm"},
		"sublime":            {"subl"},
		"whatsapp":           {"whatsapp-for-linux"},
		"telegram":           {"telegram-desktop"},
		"slack":              {"slack"},
		"spotify":            {"spotify"},
		"vlc":                {"vlc"},
		"terminal":           {"gnome-terminal"},
		"files":              {"nautilus"},
		"file explorer":      {"nautilus"},
		"file manager":       {"nautilus"},
		"calculator":         {"gnome-calculator"},
		"text editor":        {"gedit"},
	},
}

// appCommand returns a copy of the launch command for app on goos.
func appCommand(goos, app string) ([]string, bool) {
	argv, ok := appCommands[goos][app]
	if !ok {
		return nil, false
	}
	return append([]string(nil), argv...), true
}
