package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jarvis-assistant/pkg/log"
)

// Manager tries providers in priority order, retrying each before falling back to the next.
type Manager struct {
	providers []Provider
	config    *Config
	logger    log.Logger
	now       func() time.Time
}

// Config controls fallback and retries.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // whole fallback chain
}

// NewManager builds a Manager. A nil config means fallback on, one attempt per provider.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	if config == nil {
		config = &Config{FallbackEnabled: true, RetryAttempts: 1}
	}
	return &Manager{
		providers: providers,
		config:    config,
		logger:    logger,
		now:       time.Now,
	}
}

// Providers returns the configured provider names in priority order.
func (m *Manager) Providers() []string {
	names := make([]string, len(m.providers))
	for i, p := range m.providers {
		names[i] = p.Name()
	}
	return names
}

// outcome describes one provider's share of a GenerateContent call.
type outcome struct {
	provider Provider
	position int
	attempts int
	elapsed  time.Duration
}

// GenerateContent returns the first successful answer. The response is stamped with the
// provider and model that produced it.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.providers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("global timeout exceeded after trying %d of %d provider(s): %w",
				i, len(m.providers), err)
		}

		started := m.now()
		resp, attempts, err := m.generateWithRetry(ctx, provider, req)
		o := outcome{provider: provider, position: i, attempts: attempts, elapsed: m.now().Sub(started)}

		if err == nil {
			stamp(resp, provider)
			m.logSuccess(ctx, o, resp)
			return resp, nil
		}

		m.logFailure(ctx, o, err)
		lastErr = &ProviderError{Provider: provider.Name(), Attempts: attempts, Err: err}

		if !m.config.FallbackEnabled || !retryable(err) {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, lastErr)
}

// generateWithRetry retries one provider with linear backoff and reports the attempts made.
func (m *Manager) generateWithRetry(ctx context.Context, provider Provider, req *Request) (*Response, int, error) {
	attempts := max(1, m.config.RetryAttempts)

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(time.Duration(attempt) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, attempt, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil && resp == nil {
			err = ErrEmptyResponse
		}
		if err == nil {
			return resp, attempt + 1, nil
		}
		lastErr = err
		if !retryable(err) {
			return nil, attempt + 1, err
		}
	}

	return nil, attempts, lastErr
}

// retryable is false for errors another attempt cannot fix.
func retryable(err error) bool {
	return !errors.Is(err, ErrInvalidRequest) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

func stamp(resp *Response, provider Provider) {
	if resp.ProviderName == "" {
		resp.ProviderName = provider.Name()
	}
	if resp.ModelName == "" {
		resp.ModelName = provider.Model()
	}
}

func (m *Manager) logSuccess(ctx context.Context, o outcome, resp *Response) {
	in, out := 0, 0
	if resp.Usage != nil {
		in, out = resp.Usage.InputTokens, resp.Usage.OutputTokens
	}
	m.logger.Infof(ctx, "%s: provider=%s model=%s fallback=%t attempts=%d latency=%s input_tokens=%d output_tokens=%d",
		LogPrefixGenerate, o.provider.Name(), resp.ModelName, o.position > 0, o.attempts,
		o.elapsed.Round(time.Millisecond), in, out)
}

func (m *Manager) logFailure(ctx context.Context, o outcome, err error) {
	m.logger.Warnf(ctx, "%s: provider=%s model=%s attempts=%d latency=%s error=%v",
		LogPrefixGenerate, o.provider.Name(), o.provider.Model(), o.attempts,
		o.elapsed.Round(time.Millisecond), err)
}
