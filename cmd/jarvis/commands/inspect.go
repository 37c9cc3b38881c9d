package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"jarvis-assistant/internal/intent"
	"jarvis-assistant/internal/model"
)

var errBlocked = errors.New("input blocked for security reasons")

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Show the intent category and scores of an utterance",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(cmd, args, func(rt *runtime, text string) any {
				return struct {
					Text  string       `json:"text"`
					Score intent.Score `json:"score"`
				}{text, rt.core.Detector.Classify(commandContext(cmd), text)}
			})
		},
	}
}

func newResolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <text>",
		Short: "Resolve an utterance to a task decision without executing it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return inspect(cmd, args, func(rt *runtime, text string) any {
				return struct {
					Text     string             `json:"text"`
					Decision model.TaskDecision `json:"decision"`
				}{text, rt.core.Resolver.Resolve(commandContext(cmd), text)}
			})
		},
	}
}

func newSanitizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sanitize <text>",
		Short: "Run the input sanitizer and print its verdict",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.Close()
			return printJSON(cmd, rt.core.Sanitizer.Sanitize(joinArgs(args)))
		},
	}
}

// inspect sanitizes the arguments and prints what fn reports about the cleaned text.
func inspect(cmd *cobra.Command, args []string, fn func(rt *runtime, text string) any) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	res := rt.core.Sanitizer.Sanitize(joinArgs(args))
	if !res.Safe {
		return errBlocked
	}
	return printJSON(cmd, fn(rt, res.Cleaned))
}
