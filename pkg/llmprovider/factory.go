package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"jarvis-assistant/config"
	"jarvis-assistant/pkg/gemini"
	"jarvis-assistant/pkg/log"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(cfg *config.LLMConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	var enabled []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabled = append(enabled, p)
		}
	}
	if len(enabled) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Priority < enabled[j].Priority
	})

	ctx := context.Background()
	var providers []Provider
	var initErrors []string
	for _, p := range enabled {
		provider, err := createProvider(p)
		if err != nil {
			msg := fmt.Sprintf("provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, msg)
			l.Warnf(ctx, "pkg.llmprovider.InitializeProviders: skipping %s", msg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoProvidersConfigured, strings.Join(initErrors, "; "))
	}
	if len(initErrors) > 0 {
		l.Warnf(ctx, "pkg.llmprovider.InitializeProviders: %d provider(s) failed, continuing with %d",
			len(initErrors), len(providers))
	}
	return providers, nil
}

// NewManagerFromConfig parses the durations in cfg and builds a Manager.
func NewManagerFromConfig(cfg *config.LLMConfig, providers []Provider, l log.Logger) *Manager {
	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      parseDuration(cfg.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.MaxTotalTimeout, 0),
	}, l)
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	timeout := parseDuration(cfg.Timeout, DefaultProviderTimeout)

	var p Provider
	switch strings.ToLower(cfg.Name) {
	case ProviderGemini:
		client, err := gemini.New(gemini.Config{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
			APIURL: cfg.BaseURL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		p = NewGeminiAdapter(client)

	case ProviderOpenAI:
		p = NewOpenAIAdapter(ProviderOpenAI, cfg.APIKey, cfg.BaseURL, cfg.Model)

	case ProviderDeepSeek:
		p = NewOpenAIAdapter(ProviderDeepSeek, cfg.APIKey, orDefault(cfg.BaseURL, DeepSeekBaseURL), cfg.Model)

	case ProviderQwen, ProviderAlibaba:
		p = NewOpenAIAdapter(ProviderQwen, cfg.APIKey, orDefault(cfg.BaseURL, QwenBaseURL), cfg.Model)

	case ProviderOpenRouter:
		p = NewOpenAIAdapter(ProviderOpenRouter, cfg.APIKey, orDefault(cfg.BaseURL, OpenRouterBaseURL), cfg.Model)

	case ProviderAnthropic, ProviderClaude:
		p = NewAnthropicAdapter(cfg.APIKey, cfg.BaseURL, cfg.Model)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, cfg.Name)
	}

	return WithTimeout(p, timeout), nil
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
