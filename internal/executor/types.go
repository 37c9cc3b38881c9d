package executor

import "context"

// Launcher performs the side effects of a task.
type Launcher interface {
	OpenURL(ctx context.Context, url string) error
	Run(ctx context.Context, argv []string) error
}

// LanguageSetter stores the reply language chosen by the user.
type LanguageSetter interface {
	SetLanguage(code string)
}

// Validator is the subset of the sanitizer the executor relies on.
type Validator interface {
	SanitizeURL(url string) (bool, string)
	ValidateCommand(command string) (bool, string)
}
