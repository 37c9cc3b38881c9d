package executor

import (
	"context"
	"os/exec"
	"runtime"
	"sync"

	"jarvis-assistant/pkg/log"
)

// DryRunLauncher only logs and records what would have been launched.
type DryRunLauncher struct {
	l log.Logger

	mu       sync.Mutex
	urls     []string
	commands [][]string
}

// NewDryRunLauncher creates a launcher without side effects.
func NewDryRunLauncher(l log.Logger) *DryRunLauncher {
	return &DryRunLauncher{l: l}
}

func (d *DryRunLauncher) OpenURL(ctx context.Context, url string) error {
	d.l.Infof(ctx, "%s: dry run: open %s", LogPrefixLaunch, url)
	d.mu.Lock()
	d.urls = append(d.urls, url)
	d.mu.Unlock()
	return nil
}

func (d *DryRunLauncher) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	d.l.Infof(ctx, "%s: dry run: exec %q", LogPrefixLaunch, argv)
	d.mu.Lock()
	d.commands = append(d.commands, append([]string(nil), argv...))
	d.mu.Unlock()
	return nil
}

// URLs returns the URLs opened so far.
func (d *DryRunLauncher) URLs() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.urls...)
}

// Commands returns the commands run so far.
func (d *DryRunLauncher) Commands() [][]string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([][]string(nil), d.commands...)
}

// ExecLauncher starts real processes. Started processes are not tied to ctx.
type ExecLauncher struct {
	l    log.Logger
	goos string
}

// NewExecLauncher creates a launcher for the running OS.
func NewExecLauncher(l log.Logger) *ExecLauncher {
	return &ExecLauncher{l: l, goos: runtime.GOOS}
}

func (e *ExecLauncher) OpenURL(ctx context.Context, url string) error {
	return e.Run(ctx, openURLCommand(e.goos, url))
}

func (e *ExecLauncher) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	e.l.Infof(ctx, "%s: started %q pid=%d", LogPrefixLaunch, argv, cmd.Process.Pid)

	// reap the child once it exits
	go func() {
		if err := cmd.Wait(); err != nil {
			e.l.Debugf(context.Background(), "%s: %q exited: %v", LogPrefixLaunch, argv, err)
		}
	}()
	return nil
}

func openURLCommand(goos, url string) []string {
	switch goos {
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", url}
	case "darwin":
		return []string{"open", url}
	}
	return []string{"xdg-open", url}
}
