package llmprovider

import "time"

// Provider names accepted in configuration.
const (
	ProviderGemini     = "gemini"
	ProviderOpenAI     = "openai"
	ProviderDeepSeek   = "deepseek"
	ProviderQwen       = "qwen"
	ProviderAlibaba    = "alibaba"
	ProviderOpenRouter = "openrouter"
	ProviderAnthropic  = "anthropic"
	ProviderClaude     = "claude"
)

// Default endpoints for OpenAI-compatible vendors.
const (
	DeepSeekBaseURL   = "https://api.deepseek.com/v1"
	QwenBaseURL       = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
)

const DefaultProviderTimeout = 30 * time.Second

const LogPrefixGenerate = "pkg.llmprovider.GenerateContent"
