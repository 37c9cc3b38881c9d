package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"
)

const defaultTimeout = 15 * time.Second

// MaxMessageLength is the Bot API limit for one sendMessage text, in characters.
const MaxMessageLength = 4096

// Chat actions and parse modes understood by the Bot API.
const (
	ChatActionTyping  = "typing"
	ParseModeMarkdown = "Markdown"
)

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) error {
	return b.call(ctx, "setWebhook", map[string]string{"url": webhookURL})
}

// SendMessage sends plain text, split into several messages when it exceeds MaxMessageLength.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

// SendMessageWithMode is SendMessage with a parse mode such as ParseModeMarkdown.
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	for i, part := range SplitMessage(text, MaxMessageLength) {
		err := b.call(ctx, "sendMessage", SendMessageRequest{
			ChatID:    chatID,
			Text:      part,
			ParseMode: parseMode,
		})
		if err != nil {
			return fmt.Errorf("part %d: %w", i+1, err)
		}
	}
	return nil
}

// SendChatAction shows a transient status such as ChatActionTyping in the chat.
func (b *Bot) SendChatAction(ctx context.Context, chatID int64, action string) error {
	return b.call(ctx, "sendChatAction", ChatActionRequest{ChatID: chatID, Action: action})
}

// call posts payload to method and checks the "ok" flag of the reply.
func (b *Bot) call(ctx context.Context, method string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: marshal: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.apiURL+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return fmt.Errorf("telegram %s: status %d: %w", method, resp.StatusCode, ErrBadResponse)
	}
	if !apiResp.OK {
		code := apiResp.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		return &APIError{Method: method, Code: code, Description: apiResp.Description}
	}
	return nil
}

// SplitMessage cuts text into chunks of at most limit runes, preferring line breaks.
// Empty text yields one empty chunk so callers still send something.
func SplitMessage(text string, limit int) []string {
	if limit <= 0 || utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	var parts []string
	rest := []rune(text)
	for len(rest) > limit {
		cut := limit
		if nl := strings.LastIndex(string(rest[:limit]), "\n"); nl > 0 {
			cut = utf8.RuneCountInString(string(rest[:limit])[:nl])
		}
		if part := strings.TrimRight(string(rest[:cut]), "\n"); part != "" {
			parts = append(parts, part)
		}
		rest = []rune(strings.TrimLeft(string(rest[cut:]), "\n"))
	}
	if len(rest) > 0 {
		parts = append(parts, string(rest))
	}
	return parts
}
