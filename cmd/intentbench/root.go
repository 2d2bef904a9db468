package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intentbench",
		Short: "intentbench - benchmark local LLMs on intent classification",
		Long: `Intentbench benchmarks local language models on an intent-classification
task through an Ollama HTTP endpoint and summarizes the results.

The run command evaluates each model against a labeled query suite and
appends one JSON record per attempt to a result log. The analyze command
aggregates a result log into per-category winners, an overall winner, and
a per-model performance table.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newRunCommand())
	cmd.AddCommand(newAnalyzeCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
