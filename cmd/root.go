package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "valuehunt-ai",
	Short: "AI analysis gateway for the valuehunt stock screener",
	Long:  `valuehunt-ai routes stock analysis, chat and strategy requests between LLM providers with automatic fallback.`,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
