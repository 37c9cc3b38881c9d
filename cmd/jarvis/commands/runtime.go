package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jarvis-assistant/config"
	"jarvis-assistant/internal/app"
	"jarvis-assistant/pkg/log"
)

// runtime is what every subcommand needs: config, logger and the assembled core.
type runtime struct {
	cfg  *config.Config
	l    log.Logger
	core *app.Core
}

func newRuntime(cmd *cobra.Command) (*runtime, error) {
	path, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l := log.NewNop()
	if verbose {
		l = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	core, err := app.New(commandContext(cmd), cfg, l)
	if err != nil {
		return nil, err
	}
	return &runtime{cfg: cfg, l: l, core: core}, nil
}

func (r *runtime) Close() error {
	return r.core.Close()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func joinArgs(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
