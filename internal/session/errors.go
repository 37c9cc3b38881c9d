package session

import "errors"

var (
	ErrRateLimited = errors.New("rate limit exceeded")
	ErrNilBuilder  = errors.New("session: builder is required")
	ErrEmptyID     = errors.New("session: empty id")
)
