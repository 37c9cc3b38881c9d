package log_test

import (
	"context"
	"testing"

	"jarvis-assistant/pkg/log"
)

func TestContextIDs(t *testing.T) {
	ctx := log.WithTraceID(context.Background(), "trace-1")
	ctx = log.WithSessionID(ctx, "session-1")

	if got := log.TraceID(ctx); got != "trace-1" {
		t.Errorf("TraceID() = %q, want trace-1", got)
	}
	if got := log.SessionID(ctx); got != "session-1" {
		t.Errorf("SessionID() = %q, want session-1", got)
	}
	if got := log.TraceID(context.Background()); got != "" {
		t.Errorf("TraceID() on empty context = %q, want empty", got)
	}
}

func TestInit(t *testing.T) {
	tests := []struct {
		name string
		cfg  log.ZapConfig
	}{
		{"console debug", log.ZapConfig{Level: "debug", Mode: "development", Encoding: "console", ColorEnabled: true}},
		{"json production", log.ZapConfig{Level: "warn", Mode: "production", Encoding: "json"}},
		{"unknown level", log.ZapConfig{Level: "verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := log.Init(tt.cfg)
			if l == nil {
				t.Fatal("Init returned nil logger")
			}
			l.Debugf(log.WithTraceID(context.Background(), "t"), "hello %s", "world")
		})
	}
}
