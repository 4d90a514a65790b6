package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/maestro-cli/maestro/internal/store"
	"github.com/maestro-cli/maestro/pkg/models"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show past runs",
	Long: `List past runs from the history database, or show one run in detail.

Without arguments, lists recent runs. With a run ID, shows the full
record including per-worker results.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.OpenGlobal()
		if err != nil {
			return fmt.Errorf("open history database: %w", err)
		}
		defer db.Close()
		if err := db.Migrate(); err != nil {
			return fmt.Errorf("migrate history database: %w", err)
		}

		if len(args) == 1 {
			return showExecution(db, args[0])
		}
		return listExecutions(db)
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum number of runs to list")
}

func listExecutions(db *store.DB) error {
	summaries, err := db.ListExecutions(historyLimit)
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	for _, s := range summaries {
		status := string(s.Status)
		if s.AbortReason != models.AbortNone {
			status = fmt.Sprintf("%s (%s)", s.Status, s.AbortReason)
		}

		task := s.Task
		if len(task) > 60 {
			task = task[:57] + "..."
		}

		line := fmt.Sprintf("%s  %s  %-10s %8d tok  %s",
			s.RunID, s.StartedAt.Local().Format("2006-01-02 15:04"), s.Policy, s.TokensUsed, task)
		if s.Success {
			fmt.Println(line)
		} else {
			failColor.Println(line + "  [" + status + "]")
		}
	}
	return nil
}

func showExecution(db *store.DB, runID string) error {
	rec, err := db.GetExecution(runID)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no run with ID %q", runID)
	}

	fmt.Printf("Run:     %s\n", rec.RunID)
	fmt.Printf("Task:    %s\n", rec.Task)
	fmt.Printf("Policy:  %s\n", rec.Policy)
	fmt.Printf("Status:  %s", rec.Status)
	if rec.AbortReason != models.AbortNone {
		fmt.Printf(" (%s)", rec.AbortReason)
	}
	fmt.Println()
	fmt.Printf("Tokens:  %d\n", rec.TokensUsed)
	fmt.Printf("Started: %s\n", rec.StartedAt.Local().Format(time.RFC1123))
	fmt.Printf("Took:    %s\n", rec.Duration().Round(100*time.Millisecond))

	if rec.Plan != nil {
		printPlan(rec.Plan)
	}

	fmt.Printf("\nResults (%d succeeded, %d failed):\n", rec.SuccessCount(), rec.FailureCount())
	for _, res := range rec.Results {
		if res.Success {
			okColor.Printf("  [ok]   %s  %d tok  %s\n", res.SpecID, res.TokensUsed, res.Duration.Round(100*time.Millisecond))
		} else {
			failColor.Printf("  [fail] %s  %s\n", res.SpecID, res.Error)
		}
	}
	return nil
}
