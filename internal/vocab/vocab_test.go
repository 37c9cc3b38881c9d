package vocab

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Open Chrome!", []string{"open", "chrome"}},
		{"  what   is gravity? ", []string{"what", "is", "gravity"}},
		{"I'm late.", []string{"i'm", "late"}},
		{"...", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := Tokenize(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFields(t *testing.T) {
	got := Fields("  Hello!  How are YOU? ")
	want := []string{"hello!", "how", "are", "you?"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %v, want %v", got, want)
	}
}

func TestCountMatches(t *testing.T) {
	fields := Fields("good morning, how are you")

	tests := []struct {
		name     string
		keywords []string
		want     int
	}{
		{"single words", []string{"how", "you", "nope"}, 2},
		{"phrases never match", []string{"good morning", "how are you"}, 0},
		{"punctuation stays attached", []string{"morning"}, 0},
		{"duplicates count once", []string{"how", "how"}, 1},
		{"no substring", []string{"mor"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountMatches(fields, tt.keywords); got != tt.want {
				t.Errorf("CountMatches() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRemovePhrases(t *testing.T) {
	tokens := []string{"please", "Look", "up", "golang", "lookup", "tables"}
	got := RemovePhrases(tokens, []string{"look up", "lookup", "please"})
	want := []string{"golang", "tables"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RemovePhrases() = %v, want %v", got, want)
	}
}

func TestKeywords_Words(t *testing.T) {
	k := Keywords{en("Open", "play"), hi("kholo", "open")}
	want := []string{"open", "play", "kholo"}
	if got := k.Words(); !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}
	if got := k.Locale(LocaleHinglish); !reflect.DeepEqual(got, []string{"kholo", "open"}) {
		t.Errorf("Locale() = %v", got)
	}
	if !k.ContainsAny("please kholo chrome") {
		t.Error("ContainsAny() = false, want true")
	}
}

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestParse(t *testing.T) {
	t.Run("empty keeps defaults", func(t *testing.T) {
		got, err := Parse(nil)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if !reflect.DeepEqual(got, Default()) {
			t.Error("Parse(nil) should equal Default()")
		}
	})

	t.Run("override one section", func(t *testing.T) {
		raw := []byte(`
resolver:
  apps: [chrome, spotify]
`)
		got, err := Parse(raw)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if !reflect.DeepEqual(got.Resolver.Apps, []string{"chrome", "spotify"}) {
			t.Errorf("apps = %v", got.Resolver.Apps)
		}
		if len(got.Intent.Action.Words()) == 0 {
			t.Error("intent tables should keep defaults")
		}
	})

	t.Run("invalid language row", func(t *testing.T) {
		raw := []byte(`
resolver:
  languages:
    - name: french
`)
		_, err := Parse(raw)
		if !errors.Is(err, ErrInvalidTables) {
			t.Errorf("Parse() error = %v, want ErrInvalidTables", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		if _, err := Parse([]byte("intent: [")); err == nil {
			t.Error("Parse() expected error")
		}
	})
}

func TestLoad_EmptyPath(t *testing.T) {
	if _, err := Load(""); !errors.Is(err, ErrEmptyPath) {
		t.Errorf("Load(\"\") error = %v, want ErrEmptyPath", err)
	}
}

func TestStore_Swap(t *testing.T) {
	s := NewStore(nil)
	if s.Current() == nil {
		t.Fatal("Current() = nil")
	}

	bad := Default()
	bad.Intent.Exit = nil
	if err := s.Swap(bad); !errors.Is(err, ErrInvalidTables) {
		t.Errorf("Swap(bad) error = %v", err)
	}

	next := Default()
	next.Resolver.Apps = []string{"spotify"}
	if err := s.Swap(next); err != nil {
		t.Fatalf("Swap() error = %v", err)
	}
	if s.Current() != next {
		t.Error("Current() did not return swapped tables")
	}
}

func TestStore_Watch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocab.yaml")
	if err := os.WriteFile(path, []byte("resolver:\n  apps: [chrome]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := NewStore(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := s.Watch(ctx, path, &mockLogger{}); err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	if err := s.Watch(ctx, path, &mockLogger{}); !errors.Is(err, ErrWatcherStarted) {
		t.Errorf("second Watch() error = %v, want ErrWatcherStarted", err)
	}

	if err := os.WriteFile(path, []byte("resolver:\n  apps: [spotify]\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		apps := s.Current().Resolver.Apps
		if len(apps) == 1 && apps[0] == "spotify" {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Errorf("apps after reload = %v, want [spotify]", s.Current().Resolver.Apps)
}
