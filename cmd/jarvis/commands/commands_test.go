package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chzyer/readline"

	"jarvis-assistant/internal/session"
	"jarvis-assistant/pkg/log"
)

const testConfigYAML = `
assistant:
  timezone: UTC
executor:
  dry_run: true
journal:
  enabled: false
`

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", writeConfig(t)}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCmd(t *testing.T) {
	out, err := run(t, "classify", "open", "youtube")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	var got struct {
		Text  string `json:"text"`
		Score struct {
			Category string `json:"category"`
		} `json:"score"`
	}
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if got.Text != "open youtube" || got.Score.Category != "ACTION" {
		t.Errorf("got %+v", got)
	}
}

func TestResolveCmd(t *testing.T) {
	out, err := run(t, "resolve", "open chrome")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, `"action": "open_app"`) || !strings.Contains(out, `"app_name": "chrome"`) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestInspect_Blocked(t *testing.T) {
	for _, sub := range []string{"classify", "resolve"} {
		t.Run(sub, func(t *testing.T) {
			if _, err := run(t, sub, "ls | rm -rf /"); err != errBlocked {
				t.Errorf("error = %v, want errBlocked", err)
			}
		})
	}
}

func TestSanitizeCmd(t *testing.T) {
	out, err := run(t, "sanitize", "ls | rm -rf /")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, `"is_safe": false`) {
		t.Errorf("expected unsafe verdict:\n%s", out)
	}
}

func TestChatCmd_SingleShot(t *testing.T) {
	out, err := run(t, "chat", "hello")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, replyPrefix+"Hello! What can I do for you?") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestChatCmd_Execute(t *testing.T) {
	out, err := run(t, "chat", "--execute", "open chrome")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), replyPrefix) {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestArgsRequired(t *testing.T) {
	for _, sub := range []string{"classify", "resolve", "sanitize"} {
		if _, err := run(t, sub); err == nil {
			t.Errorf("%s without text: expected an error", sub)
		}
	}
}

// ── REPL ───────────────────────────────────────────────────────────────────

type fakeReader struct {
	lines   []string
	end     error
	prompts []string
	closed  bool
}

func (f *fakeReader) Readline() (string, error) {
	if len(f.lines) == 0 {
		return "", f.end
	}
	line := f.lines[0]
	f.lines = f.lines[1:]
	return line, nil
}

func (f *fakeReader) SetPrompt(p string) { f.prompts = append(f.prompts, p) }
func (f *fakeReader) Close() error       { f.closed = true; return nil }

func newTestChat(t *testing.T, out io.Writer) chat {
	t.Helper()
	reg, err := session.NewRegistry(session.Config{
		Builder: session.NewBuilder(session.Components{Logger: log.NewNop()}),
	})
	if err != nil {
		t.Fatal(err)
	}
	sess, err := reg.Get(context.Background(), cliSessionID)
	if err != nil {
		t.Fatal(err)
	}
	return chat{sess: sess, out: out}
}

func TestLoop(t *testing.T) {
	tests := []struct {
		name      string
		lines     []string
		end       error
		wantLines []string
		wantTurns int
	}{
		{
			name:      "exit intent ends the loop",
			lines:     []string{"hello", "", "exit", "hello"},
			end:       io.EOF,
			wantLines: []string{"Hello! What can I do for you?", "Goodbye"},
			wantTurns: 2,
		},
		{
			name:      "eof ends the loop",
			lines:     []string{"hello"},
			end:       io.EOF,
			wantTurns: 1,
		},
		{
			name:      "interrupt ends the loop",
			end:       readline.ErrInterrupt,
			wantTurns: 0,
		},
		{
			name:      "history and reset",
			lines:     []string{"hello", "/history", "/reset"},
			end:       io.EOF,
			wantLines: []string{"[user] hello", "Conversation cleared."},
			wantTurns: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			c := newTestChat(t, &out)
			rl := &fakeReader{lines: tc.lines, end: tc.end}

			if err := c.loop(context.Background(), rl); err != nil {
				t.Fatalf("loop() error = %v", err)
			}
			if !rl.closed {
				t.Error("reader not closed")
			}
			for _, want := range tc.wantLines {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output missing %q:\n%s", want, out.String())
				}
			}
			if got := c.sess.Stats().TotalInteractions; got != tc.wantTurns {
				t.Errorf("turns = %d, want %d", got, tc.wantTurns)
			}
		})
	}
}
