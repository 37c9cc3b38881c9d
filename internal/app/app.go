package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jarvis-assistant/config"
	"jarvis-assistant/internal/action"
	"jarvis-assistant/internal/executor"
	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/knowledge"
	"jarvis-assistant/internal/memory"
	"jarvis-assistant/internal/memory/journal"
	"jarvis-assistant/internal/sanitizer"
	"jarvis-assistant/internal/session"
	"jarvis-assistant/internal/vocab"
	"jarvis-assistant/pkg/datemath"
	"jarvis-assistant/pkg/llmprovider"
	"jarvis-assistant/pkg/log"
)

// Core holds the shared, stateless parts of the assistant. Sessions are
// created from Builder; every binary assembles its delivery on top of Core.
type Core struct {
	Vocab     *vocab.Store
	Sanitizer *sanitizer.InputSanitizer
	Detector  *intent.KeywordDetector
	Resolver  *action.RuleResolver
	Executor  *executor.TaskExecutor
	Builder   *session.DefaultBuilder

	// Providers names the LLM backends in fallback order. Empty means canned replies only.
	Providers []string

	closers []func() error
}

// New assembles Core from cfg. Missing optional backends (LLM providers,
// journal, vocabulary file watcher) are logged and skipped.
func New(ctx context.Context, cfg *config.Config, l log.Logger) (*Core, error) {
	c := &Core{}

	tables := vocab.Default()
	if path := cfg.Assistant.VocabularyFile; path != "" {
		loaded, err := vocab.Load(path)
		if err != nil {
			return nil, fmt.Errorf("load vocabulary: %w", err)
		}
		tables = loaded
		l.Infof(ctx, "%s: vocabulary loaded from %s", LogPrefixNew, path)
	}
	c.Vocab = vocab.NewStore(tables)
	if cfg.Assistant.WatchVocabulary && cfg.Assistant.VocabularyFile != "" {
		if err := c.Vocab.Watch(ctx, cfg.Assistant.VocabularyFile, l); err != nil {
			l.Warnf(ctx, "%s: vocabulary watcher disabled: %v", LogPrefixNew, err)
		}
	}

	c.Sanitizer = sanitizer.New(l, cfg.Assistant.MaxInputLength)
	c.Detector = intent.New(c.Vocab, l)
	c.Resolver = action.New(c.Vocab, l)

	dm, err := datemath.NewParser(cfg.Assistant.Timezone)
	if err != nil {
		l.Warnf(ctx, "%s: invalid timezone %q, falling back to %s: %v", LogPrefixNew, cfg.Assistant.Timezone, fallbackTimezone, err)
		dm, _ = datemath.NewParser(fallbackTimezone)
	}

	var launcher executor.Launcher = executor.NewExecLauncher(l)
	if cfg.Executor.DryRun {
		launcher = executor.NewDryRunLauncher(l)
		l.Info(ctx, "Executor in dry-run mode: tasks are logged, not launched")
	}
	c.Executor, err = executor.New(executor.Config{
		Launcher:  launcher,
		Validator: c.Sanitizer,
		DateMath:  dm,
		Now:       func() time.Time { return time.Now().In(dm.Location()) },
		Logger:    l,
	})
	if err != nil {
		return nil, fmt.Errorf("executor: %w", err)
	}

	// Interface fields stay untyped nil when a backend is absent.
	var gen knowledge.Generator
	providers, err := llmprovider.InitializeProviders(&cfg.LLM, l)
	switch {
	case err == nil:
		manager := llmprovider.NewManagerFromConfig(&cfg.LLM, providers, l)
		c.Providers = manager.Providers()
		gen = manager
		l.Infof(ctx, "%s: LLM providers: %v", LogPrefixNew, c.Providers)
	case errors.Is(err, llmprovider.ErrNoProvidersConfigured):
		l.Warnf(ctx, "%s: no LLM providers, answering from canned replies: %v", LogPrefixNew, err)
	default:
		return nil, fmt.Errorf("llm providers: %w", err)
	}

	var j memory.Journal
	if cfg.Journal.Enabled {
		store, err := journal.NewSQLiteStore(cfg.Journal.Path)
		if err != nil {
			l.Warnf(ctx, "%s: journal disabled: %v", LogPrefixNew, err)
		} else {
			j = store
			c.closers = append(c.closers, store.Close)
			l.Infof(ctx, "%s: journal at %s", LogPrefixNew, cfg.Journal.Path)
		}
	}

	c.Builder = session.NewBuilder(session.Components{
		Sanitizer: c.Sanitizer,
		Detector:  c.Detector,
		Resolver:  c.Resolver,
		Vocab:     c.Vocab,
		Generator: gen,
		Knowledge: knowledge.Config{
			SystemPrompt: cfg.Knowledge.SystemPrompt,
			Temperature:  cfg.Knowledge.Temperature,
			MaxTokens:    cfg.Knowledge.MaxTokens,
		},
		Executor:   c.Executor,
		Journal:    j,
		MemorySize: cfg.Assistant.MemorySize,
		Language:   cfg.Assistant.DefaultLanguage,
		Logger:     l,
	})

	return c, nil
}

// NewRegistry creates the session registry configured by cfg.Session.
func (c *Core) NewRegistry(cfg config.SessionConfig, l log.Logger) (*session.Registry, error) {
	ttl, err := time.ParseDuration(cfg.TTL)
	if err != nil && cfg.TTL != "" {
		return nil, fmt.Errorf("session ttl %q: %w", cfg.TTL, err)
	}
	return session.NewRegistry(session.Config{
		TTL:         ttl,
		MaxSessions: cfg.MaxSessions,
		Builder:     c.Builder,
		Logger:      l,
	})
}

// Close releases the journal and other owned resources.
func (c *Core) Close() error {
	var errs []error
	for _, fn := range c.closers {
		if err := fn(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
