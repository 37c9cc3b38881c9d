package vocab

import (
	"context"
	"path/filepath"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"jarvis-assistant/pkg/log"
)

// Store holds the active tables and swaps them atomically on reload.
// Readers never block and always see a complete, validated set.
type Store struct {
	current  atomic.Pointer[Tables]
	watching atomic.Bool
}

// NewStore creates a store seeded with t, or the defaults when t is nil.
func NewStore(t *Tables) *Store {
	if t == nil {
		t = Default()
	}
	s := &Store{}
	s.current.Store(t)
	return s
}

// Current returns the active tables.
func (s *Store) Current() *Tables {
	return s.current.Load()
}

// Swap replaces the active tables after validating them.
func (s *Store) Swap(t *Tables) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.current.Store(t)
	return nil
}

// Watch reloads path whenever it is written or recreated until ctx is done.
// Invalid files are logged and the previous tables stay active.
func (s *Store) Watch(ctx context.Context, path string, l log.Logger) error {
	if path == "" {
		return ErrEmptyPath
	}
	if !s.watching.CompareAndSwap(false, true) {
		return ErrWatcherStarted
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.watching.Store(false)
		return err
	}

	// Editors replace files on save, so watch the directory and filter by name.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		s.watching.Store(false)
		return err
	}

	go s.watchLoop(ctx, watcher, filepath.Clean(path), l)
	return nil
}

func (s *Store) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, l log.Logger) {
	defer func() {
		watcher.Close()
		s.watching.Store(false)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s.reload(ctx, path, l)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l.Warnf(ctx, "%s: watcher error: %v", LogPrefixWatch, err)
		}
	}
}

func (s *Store) reload(ctx context.Context, path string, l log.Logger) {
	t, err := Load(path)
	if err != nil {
		l.Warnf(ctx, "%s: keeping previous vocabulary: %v", LogPrefixWatch, err)
		return
	}
	if err := s.Swap(t); err != nil {
		l.Warnf(ctx, "%s: keeping previous vocabulary: %v", LogPrefixWatch, err)
		return
	}
	l.Infof(ctx, "%s: vocabulary reloaded from %s", LogPrefixWatch, path)
}
