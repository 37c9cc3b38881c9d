package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"jarvis-assistant/config"
	"jarvis-assistant/internal/model"
	"jarvis-assistant/pkg/log"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Assistant.DefaultLanguage = "en"
	cfg.Assistant.MemorySize = 10
	cfg.Assistant.Timezone = "Asia/Kolkata"
	cfg.Executor.DryRun = true
	cfg.Session.TTL = "30m"
	return cfg
}

func TestNew_Defaults(t *testing.T) {
	ctx := context.Background()
	c, err := New(ctx, testConfig(), log.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()

	if len(c.Providers) != 0 {
		t.Errorf("Providers = %v, want none", c.Providers)
	}

	reg, err := c.NewRegistry(testConfig().Session, log.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	sess, err := reg.Get(ctx, "cli")
	if err != nil {
		t.Fatal(err)
	}

	res := sess.Process(ctx, "hello", "")
	if res.Intent != model.DecisionConversation {
		t.Errorf("Intent = %q, want conversation", res.Intent)
	}
	if res.Response == "" {
		t.Error("expected a canned reply without LLM providers")
	}
}

func TestNew_InvalidTimezoneFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.Assistant.Timezone = "Mars/Olympus"

	c, err := New(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer c.Close()
}

func TestNew_VocabularyFile(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		cfg := testConfig()
		cfg.Assistant.VocabularyFile = filepath.Join(dir, "missing.yaml")
		if _, err := New(context.Background(), cfg, log.NewNop()); err == nil {
			t.Error("expected an error for a missing vocabulary file")
		}
	})

	t.Run("empty file uses defaults", func(t *testing.T) {
		path := filepath.Join(dir, "vocab.yaml")
		if err := os.WriteFile(path, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		cfg := testConfig()
		cfg.Assistant.VocabularyFile = path
		cfg.Assistant.WatchVocabulary = true

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		c, err := New(ctx, cfg, log.NewNop())
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		defer c.Close()

		if got := c.Resolver.Resolve(ctx, "open chrome").Action; got != model.ActionOpenApp {
			t.Errorf("Action = %q, want open_app", got)
		}
	})
}

func TestNew_Journal(t *testing.T) {
	cfg := testConfig()
	cfg.Journal.Enabled = true
	cfg.Journal.Path = filepath.Join(t.TempDir(), "journal.db")

	c, err := New(context.Background(), cfg, log.NewNop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if len(c.closers) != 1 {
		t.Fatalf("closers = %d, want 1", len(c.closers))
	}
	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if _, err := os.Stat(cfg.Journal.Path); err != nil {
		t.Errorf("journal file not created: %v", err)
	}
}

func TestNewRegistry_InvalidTTL(t *testing.T) {
	c, err := New(context.Background(), testConfig(), log.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.NewRegistry(config.SessionConfig{TTL: "soon"}, log.NewNop()); err == nil {
		t.Error("expected an error for an invalid ttl")
	}
}
