package knowledge

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jarvis-assistant/pkg/llmprovider"
)

// Explain answers question. A non-empty hint or a follow-up phrase such as
// "explain again" ties the question to the last explained topic.
func (e *Engine) Explain(ctx context.Context, question, hint string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrEmptyQuestion
	}

	prompt := question
	if last := e.LastTopic(); last != "" && (hint != "" || isFollowUp(question)) {
		prompt = fmt.Sprintf(regardingFmt, last, question)
	}

	req := &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: llmprovider.RoleUser, Text: fmt.Sprintf(questionFmt, e.cfg.SystemPrompt, prompt)}},
		Temperature: e.cfg.Temperature,
		MaxTokens:   e.cfg.MaxTokens,
	}

	answer, err := e.generate(ctx, req)
	if err != nil {
		e.l.Warnf(ctx, "%s: %v", LogPrefixExplain, err)
		return "", err
	}

	if topic := extractTopic(question); topic != "" {
		e.mu.Lock()
		e.lastTopic = topic
		e.mu.Unlock()
	}
	return answer, nil
}

// Converse sends prompt as is. The last topic is neither used nor updated.
func (e *Engine) Converse(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyQuestion
	}
	req := &llmprovider.Request{
		Messages:    []llmprovider.Message{{Role: llmprovider.RoleUser, Text: prompt}},
		Temperature: e.cfg.Temperature,
		MaxTokens:   converseMaxTokens,
	}
	answer, err := e.generate(ctx, req)
	if err != nil {
		e.l.Warnf(ctx, "%s: %v", LogPrefixConverse, err)
		return "", err
	}
	return answer, nil
}

// LastTopic returns the topic of the last successful explanation.
func (e *Engine) LastTopic() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastTopic
}

// ClearContext forgets the last topic.
func (e *Engine) ClearContext() {
	e.mu.Lock()
	e.lastTopic = ""
	e.mu.Unlock()
}

func (e *Engine) generate(ctx context.Context, req *llmprovider.Request) (string, error) {
	if e.gen == nil {
		return "", ErrNoProviders
	}
	resp, err := e.gen.GenerateContent(ctx, req)
	if err != nil {
		if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			return "", fmt.Errorf("%w: %v", ErrNoProviders, err)
		}
		return "", fmt.Errorf("generate: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return "", ErrEmptyAnswer
	}
	return strings.TrimSpace(resp.Text), nil
}

func isFollowUp(question string) bool {
	lower := strings.ToLower(question)
	for _, p := range followUpPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// extractTopic keeps the first few content words of a question.
func extractTopic(question string) string {
	var words []string
	for _, w := range strings.Fields(strings.ToLower(question)) {
		w = strings.Trim(w, "?!.,;:\"'")
		if len([]rune(w)) < topicMinLen {
			continue
		}
		if _, stop := topicStopWords[w]; stop {
			continue
		}
		words = append(words, w)
		if len(words) == topicWords {
			break
		}
	}
	return strings.Join(words, " ")
}
