package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "maestro",
	Short: "Task orchestration with specialized AI workers",
	Long: `Maestro plans a free-text task into a team of specialized AI workers
and executes them under bounded concurrency.

A task is first analyzed for complexity and required capabilities, then
expanded into a dependency-annotated worker graph. The graph is reduced
to ordered phases: workers whose dependencies are satisfied run together,
in parallel where the phase allows it.

Execution is governed by an autonomy policy:
  conservative  approve every phase before it runs
  balanced      approve the first phase, the last phase, and any phase
                touching a sensitive capability (default)
  trust         run everything without approval
  interactive   approve each individual worker

A token budget caps total spend across the run; a worker in a critical
capability (architecture, migration) failing aborts the remainder.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
