package telegram

import (
	"errors"
	"fmt"
)

// ErrBadResponse is returned when the Bot API answers with a body that is not JSON.
var ErrBadResponse = errors.New("unreadable bot api response")

// APIError is a Bot API reply with "ok": false.
type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s failed (%d): %s", e.Method, e.Code, e.Description)
}
