package llmprovider

import (
	"context"
	"time"
)

// timeoutProvider bounds every call to the wrapped provider.
type timeoutProvider struct {
	Provider
	timeout time.Duration
}

// WithTimeout wraps p so each GenerateContent call gets its own deadline.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &timeoutProvider{Provider: p, timeout: timeout}
}

func (t *timeoutProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Provider.GenerateContent(ctx, req)
}
