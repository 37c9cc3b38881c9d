package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant core
	Assistant AssistantConfig
	Knowledge KnowledgeConfig
	Executor  ExecutorConfig

	// Sessions and storage
	Session SessionConfig
	Journal JournalConfig

	// Delivery
	Telegram TelegramConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig tunes the routing engine.
type AssistantConfig struct {
	DefaultLanguage string
	MemorySize      int
	MaxInputLength  int
	VocabularyFile  string
	WatchVocabulary bool
	Timezone        string
}

// KnowledgeConfig tunes the question answering backend.
type KnowledgeConfig struct {
	SystemPrompt string
	Temperature  float64
	MaxTokens    int
}

type ExecutorConfig struct {
	DryRun bool
}

type SessionConfig struct {
	TTL             string
	MaxSessions     int
	RateLimitPerMin int
}

type JournalConfig struct {
	Enabled bool
	Path    string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
	// NgrokAPI is queried for a public URL when WebhookURL is empty.
	NgrokAPI string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// envFiles are loaded before viper reads the environment. Existing variables win.
var envFiles = []string{".env.local", ".env"}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/jarvis/
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads an explicit config file when path is set.
func LoadFrom(path string) (*Config, error) {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/jarvis/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Assistant
	cfg.Assistant.DefaultLanguage = v.GetString("assistant.default_language")
	cfg.Assistant.MemorySize = v.GetInt("assistant.memory_size")
	cfg.Assistant.MaxInputLength = v.GetInt("assistant.max_input_length")
	cfg.Assistant.VocabularyFile = v.GetString("assistant.vocabulary_file")
	cfg.Assistant.WatchVocabulary = v.GetBool("assistant.watch_vocabulary")
	cfg.Assistant.Timezone = v.GetString("assistant.timezone")

	cfg.Knowledge.SystemPrompt = v.GetString("knowledge.system_prompt")
	cfg.Knowledge.Temperature = v.GetFloat64("knowledge.temperature")
	cfg.Knowledge.MaxTokens = v.GetInt("knowledge.max_tokens")

	cfg.Executor.DryRun = v.GetBool("executor.dry_run")

	// Sessions & journal
	cfg.Session.TTL = v.GetString("session.ttl")
	cfg.Session.MaxSessions = v.GetInt("session.max_sessions")
	cfg.Session.RateLimitPerMin = v.GetInt("session.rate_limit_per_min")
	cfg.Journal.Enabled = v.GetBool("journal.enabled")
	cfg.Journal.Path = v.GetString("journal.path")

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.NgrokAPI = v.GetString("telegram.ngrok_api")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				providerMap, ok := p.(map[string]interface{})
				if !ok {
					continue
				}
				cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
					Name:     getStringFromMap(providerMap, "name"),
					Enabled:  getBoolFromMap(providerMap, "enabled"),
					Priority: getIntFromMap(providerMap, "priority"),
					APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
					BaseURL:  getStringFromMap(providerMap, "base_url"),
					Model:    getStringFromMap(providerMap, "model"),
					Timeout:  getStringFromMap(providerMap, "timeout"),
				})
			}
		}
	}

	// No providers is allowed: the assistant answers from canned replies.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, fmt.Errorf("invalid llm config: %w", err)
		}
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("assistant.default_language", "en")
	v.SetDefault("assistant.memory_size", 10)
	v.SetDefault("assistant.max_input_length", 1000)
	v.SetDefault("assistant.watch_vocabulary", false)
	v.SetDefault("assistant.timezone", "Asia/Kolkata")

	v.SetDefault("knowledge.temperature", 0.7)
	v.SetDefault("knowledge.max_tokens", 1024)

	v.SetDefault("executor.dry_run", true)

	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.max_sessions", 1000)
	v.SetDefault("session.rate_limit_per_min", 60)

	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", "data/journal.db")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	// unresolved placeholders become empty so the provider is skipped
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}
