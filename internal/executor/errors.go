package executor

import "errors"

var (
	ErrUnknownAction = errors.New("executor: unknown action")
	ErrNilLauncher   = errors.New("executor: launcher is required")
	ErrNilSanitizer  = errors.New("executor: sanitizer is required")
	ErrEmptyCommand  = errors.New("executor: empty command")
)
