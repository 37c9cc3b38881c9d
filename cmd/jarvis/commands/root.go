// Package commands implements the jarvis CLI.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command with all subcommands registered.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jarvis",
		Short: "JARVIS - intent routing assistant",
		Long: `JARVIS classifies English and Hinglish utterances, resolves them to
tasks and answers questions.

Examples:
  jarvis chat                      # interactive
  jarvis chat "play despacito on youtube"
  jarvis classify "what is gravity?"
  jarvis resolve "message to john that I'm late"
  jarvis sanitize "ls | rm -rf /"`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		newChatCmd(),
		newClassifyCmd(),
		newResolveCmd(),
		newSanitizeCmd(),
	)

	rootCmd.PersistentFlags().StringP("config", "c", "", "path to the config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable detailed logs")

	return rootCmd
}
