package llmprovider_test

import (
	"errors"
	"testing"

	"jarvis-assistant/config"
	"jarvis-assistant/pkg/llmprovider"
	"jarvis-assistant/pkg/log"
)

// TestIntegration_ConfigToManagerFlow verifies that configuration,
// provider initialization, and manager work together
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "test-qwen-key", Model: "qwen-plus", Timeout: "30s"},
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "test-gemini-key", Model: "gemini-2.5-flash", Timeout: "30s"},
			{Name: "anthropic", Enabled: true, Priority: 3, APIKey: "test-anthropic-key", Model: "claude-sonnet-4-5"},
		},
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "1s",
		MaxTotalTimeout: "60s",
	}

	providers, err := llmprovider.InitializeProviders(cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}

	want := []string{"qwen", "gemini", "anthropic"}
	if len(providers) != len(want) {
		t.Fatalf("Expected %d providers, got %d", len(want), len(providers))
	}
	for i, name := range want {
		if providers[i].Name() != name {
			t.Errorf("providers[%d] = %s, want %s", i, providers[i].Name(), name)
		}
	}

	manager := llmprovider.NewManagerFromConfig(cfg, providers, log.NewNop())
	if got := manager.Providers(); len(got) != 3 {
		t.Errorf("Manager has %d providers, want 3", len(got))
	}
}

func TestIntegration_ConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr error
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "test-key", Model: "deepseek-chat"},
			}},
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: false, Priority: 1, APIKey: "test-key", Model: "qwen-plus"},
			}},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1, Model: "qwen-plus"},
			}},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
		{
			name: "unknown provider is skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
				{Name: "openai", Enabled: true, Priority: 2, APIKey: "k", Model: "gpt-4o-mini"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(tt.cfg, log.NewNop())
			if tt.wantErr == nil && err != nil {
				t.Errorf("InitializeProviders() error = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("InitializeProviders() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestIntegration_ProviderPriorityOrdering(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 10, APIKey: "test-gemini-key", Model: "gemini-2.5-flash"},
			{Name: "openrouter", Enabled: true, Priority: 1, APIKey: "test-or-key", Model: "meta-llama/llama-3-8b"},
		},
	}

	providers, err := llmprovider.InitializeProviders(cfg, log.NewNop())
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if providers[0].Name() != "openrouter" || providers[1].Name() != "gemini" {
		t.Errorf("order = [%s %s], want [openrouter gemini]", providers[0].Name(), providers[1].Name())
	}
}

func TestNewManagerFromConfig_BadDurations(t *testing.T) {
	cfg := &config.LLMConfig{RetryDelay: "soon", MaxTotalTimeout: "later", RetryAttempts: 1}
	m := llmprovider.NewManagerFromConfig(cfg, nil, log.NewNop())
	if m == nil {
		t.Fatal("manager is nil")
	}
}
