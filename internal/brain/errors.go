package brain

import "errors"

var (
	ErrNilSanitizer = errors.New("brain: sanitizer is required")
	ErrNilDetector  = errors.New("brain: detector is required")
	ErrNilResolver  = errors.New("brain: resolver is required")
	ErrNilMemory    = errors.New("brain: memory is required")
)
