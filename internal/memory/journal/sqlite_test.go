package journal

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"jarvis-assistant/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	exchanges := []model.Exchange{
		{ID: "1", SessionID: "s1", Role: model.RoleUser, Content: "open chrome", Language: "en", Intent: "ACTION", Topic: "system_control", Timestamp: base},
		{ID: "2", SessionID: "s1", Role: model.RoleAssistant, Content: "Opening Chrome.", Action: model.ActionOpenApp, Intent: "task", Timestamp: base.Add(time.Second)},
		{ID: "3", SessionID: "s2", Role: model.RoleUser, Content: "hello", Timestamp: base.Add(2 * time.Second)},
		{ID: "4", SessionID: "s1", Role: model.RoleUser, Content: "exit", Timestamp: base.Add(3 * time.Second)},
	}
	for _, e := range exchanges {
		if err := store.Append(ctx, e); err != nil {
			t.Fatalf("Append(%s): %v", e.ID, err)
		}
	}

	got, err := store.Recent(ctx, "s1", 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ID != "2" || got[1].ID != "4" {
		t.Errorf("order = [%s %s], want [2 4]", got[0].ID, got[1].ID)
	}
	if got[0].Action != model.ActionOpenApp || got[0].Role != model.RoleAssistant {
		t.Errorf("exchange 2 = %+v", got[0])
	}
	if !got[1].Timestamp.Equal(base.Add(3 * time.Second)) {
		t.Errorf("Timestamp = %v", got[1].Timestamp)
	}

	n, err := store.Count(ctx, "s1")
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 3 {
		t.Errorf("Count = %d, want 3", n)
	}
}

func TestAppend_DuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	e := model.Exchange{ID: "dup", SessionID: "s", Role: model.RoleUser, Content: "hi", Timestamp: time.Now()}

	for i := 0; i < 2; i++ {
		if err := store.Append(ctx, e); err != nil {
			t.Fatalf("Append #%d: %v", i, err)
		}
	}
	if n, _ := store.Count(ctx, "s"); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestClosedStore(t *testing.T) {
	store := newTestStore(t)
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := store.Append(context.Background(), model.Exchange{ID: "x"}); !errors.Is(err, ErrClosed) {
		t.Errorf("Append after Close = %v, want ErrClosed", err)
	}
}

func TestNewSQLiteStore_EmptyPath(t *testing.T) {
	if _, err := NewSQLiteStore(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("err = %v, want ErrEmptyPath", err)
	}
}
