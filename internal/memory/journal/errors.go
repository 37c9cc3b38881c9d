package journal

import "errors"

var (
	ErrEmptyPath = errors.New("journal: empty path")
	ErrClosed    = errors.New("journal: closed")
)
