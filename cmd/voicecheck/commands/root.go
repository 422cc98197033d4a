package commands

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "voicecheck",
	Short: "Score audio clips as AI-generated or human speech",
	Long: `voicecheck runs the voice detection analysis on local files.

Examples:
  voicecheck score sample.mp3
  voicecheck score sample.mp3 --json --features`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}
