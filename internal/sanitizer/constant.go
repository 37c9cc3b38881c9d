package sanitizer

const (
	LogPrefixSanitize        = "internal.sanitizer.Sanitize"
	LogPrefixSanitizeURL     = "internal.sanitizer.SanitizeURL"
	LogPrefixSanitizeFile    = "internal.sanitizer.SanitizeFilename"
	LogPrefixValidateCommand = "internal.sanitizer.ValidateCommand"
)

const (
	DefaultMaxLength  = 1000
	MaxFilenameLength = 255
)

const (
	WarningDangerous    = "Input contains potentially dangerous content"
	WarningTruncatedFmt = "Input truncated to %d characters"
)

// Messages returned by the URL and command validators.
const (
	MsgEmptyURL          = "Empty URL"
	MsgURLSafe           = "URL is safe"
	MsgURLSafeBareDomain = "URL is safe (assuming https)"
	MsgURLNotAllowed     = "URL protocol not allowed"
	MsgProtocolBlocked   = "Protocol '%s' is not allowed"
	MsgEmptyCommand      = "Empty command"
	MsgCommandSafe       = "Command is safe"
	MsgCommandBlocked    = "Command '%s' is not allowed"
	MsgOperatorBlocked   = "Operator '%s' is not allowed in commands"
)

// dangerousPatterns are checked in order; the first hit rejects the input.
var dangerousPatterns = []string{
	// shell metacharacters and substitution
	"[;&|`$]",
	`\$\(`,
	`>\s*/dev/`,
	// destructive commands
	`rm\s+-rf`,
	`format\s+`,
	`del\s+/[fs]`,
	// traversal and sensitive files
	`\.\./\.\.`,
	`/etc/passwd`,
	`/etc/shadow`,
	`C:\\Windows\\System32`,
	// script injection
	`<script`,
	`javascript:`,
	`onerror=`,
	`onload=`,
}

var blockedProtocols = []string{"file://", "javascript:", "data:", "vbscript:"}

var allowedProtocols = []string{"http://", "https://", "www."}

var reservedFilenames = map[string]struct{}{
	"CON": {}, "PRN": {}, "AUX": {}, "NUL": {},
	"COM1": {}, "COM2": {}, "COM3": {}, "COM4": {},
	"LPT1": {}, "LPT2": {}, "LPT3": {},
}

var destructiveCommands = []string{
	"rm -rf", "del /f", "format", "fdisk", "dd if=",
	"shutdown", "reboot", "init 0", "halt",
	"mkfs", "fsck", ":(){:|:&};:",
}

var chainingOperators = []string{"&&", "||", ";", "|", ">", "<", "$(", "`"}

// launcherKeyword permits redirection and pipes in desktop launcher commands.
const launcherKeyword = "start"
