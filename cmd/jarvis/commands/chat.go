package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"jarvis-assistant/internal/model"
	"jarvis-assistant/internal/session"
)

const (
	cliSessionID = "cli"
	promptFmt    = "You (%s)> "
	replyPrefix  = "JARVIS: "
	historyFile  = ".jarvis_history"

	replCommandReset   = "/reset"
	replCommandHistory = "/history"
)

// lineReader is the part of readline the REPL uses.
type lineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
	Close() error
}

func newChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to the assistant",
		Long: `Starts a conversation. With a message it answers once and exits;
without one it opens an interactive prompt.

Examples:
  jarvis chat "what time is it"
  jarvis chat --execute "open chrome"
  jarvis chat  # interactive`,
		RunE: runChat,
	}

	cmd.Flags().BoolP("execute", "x", false, "carry out resolved tasks (honours executor.dry_run)")
	cmd.Flags().StringP("language", "l", "", "language code of the utterances")
	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	ctx := commandContext(cmd)
	registry, err := rt.core.NewRegistry(rt.cfg.Session, rt.l)
	if err != nil {
		return err
	}
	sess, err := registry.Get(ctx, cliSessionID)
	if err != nil {
		return err
	}

	c := chat{
		sess:     sess,
		out:      cmd.OutOrStdout(),
		execute:  flagBool(cmd, "execute"),
		language: flagString(cmd, "language"),
	}

	if text := joinArgs(args); text != "" {
		c.turn(ctx, text)
		return nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf(promptFmt, sess.Language()),
		HistoryFile:     historyPath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          cmd.OutOrStdout(),
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	return c.loop(ctx, rl)
}

type chat struct {
	sess     *session.Session
	out      io.Writer
	execute  bool
	language string
}

// loop reads lines until EOF, interrupt, or an exit intent.
func (c chat) loop(ctx context.Context, rl lineReader) error {
	defer rl.Close()
	fmt.Fprintln(c.out, replyPrefix+"Online. Type /reset to start over, /history to review, exit to quit.")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case replCommandReset:
			c.sess.Reset()
			fmt.Fprintln(c.out, replyPrefix+"Conversation cleared.")
			continue
		case replCommandHistory:
			for _, e := range c.sess.History(0) {
				fmt.Fprintf(c.out, "  [%s] %s\n", e.Role, e.Content)
			}
			continue
		}

		if c.turn(ctx, line) {
			return nil
		}
		rl.SetPrompt(fmt.Sprintf(promptFmt, c.sess.Language()))

		if ctx.Err() != nil {
			return nil
		}
	}
}

// turn processes one utterance and prints the reply. It reports whether the user asked to leave.
func (c chat) turn(ctx context.Context, text string) bool {
	result := c.sess.Process(ctx, text, c.language)
	reply := result.Response

	if c.execute && result.Intent == model.DecisionTask && !result.Action.IsNone() {
		out, err := c.sess.Execute(ctx, result.Decision())
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		} else if out != nil {
			reply = *out
		}
	}
	if result.Warning != "" {
		fmt.Fprintf(c.out, "warning: %s\n", result.Warning)
	}
	fmt.Fprintln(c.out, replyPrefix+reply)

	return result.Category == model.IntentExit
}

func historyPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, historyFile)
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func flagString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
