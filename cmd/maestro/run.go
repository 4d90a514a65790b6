package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/spf13/cobra"

	"github.com/maestro-cli/maestro/internal/api"
	"github.com/maestro-cli/maestro/internal/config"
	"github.com/maestro-cli/maestro/internal/orchestrator"
	"github.com/maestro-cli/maestro/internal/planner"
	"github.com/maestro-cli/maestro/internal/store"
	"github.com/maestro-cli/maestro/internal/worker"
	"github.com/maestro-cli/maestro/pkg/models"
)

var (
	runPolicy     string
	runMaxWorkers int
	runBudget     int64
	runDryRun     bool
	runNoHistory  bool
)

var runCmd = &cobra.Command{
	Use:   "run <task>",
	Short: "Plan and execute a task with AI workers",
	Long: `Plan a task into a team of specialized AI workers and execute it.

The task is analyzed, expanded into a worker graph, reduced to ordered
phases, and executed under the selected autonomy policy. Use --dry-run
to see the plan without executing anything.

Examples:
  maestro run "implement user login with oauth"
  maestro run --policy trust --budget 200000 "optimize the query layer"
  maestro run --dry-run "migrate the database schema"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTask,
}

func init() {
	runCmd.Flags().StringVar(&runPolicy, "policy", "", "Autonomy policy: conservative, balanced, trust, or interactive")
	runCmd.Flags().IntVar(&runMaxWorkers, "max-workers", 0, "Maximum concurrent workers (0 uses configured default)")
	runCmd.Flags().Int64Var(&runBudget, "budget", 0, "Token budget for the run (0 uses configured default)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Print the plan without executing")
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "Skip persisting the run to the history database")
}

func runTask(cmd *cobra.Command, args []string) error {
	task := strings.Join(args, " ")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	policyName := cfg.Defaults.Policy
	if runPolicy != "" {
		policyName = runPolicy
	}
	policy, err := models.ParsePolicy(policyName)
	if err != nil {
		return err
	}

	maxWorkers := cfg.Defaults.MaxWorkers
	if runMaxWorkers > 0 {
		maxWorkers = runMaxWorkers
	}

	budget := cfg.Defaults.TokenBudget
	if runBudget > 0 {
		budget = runBudget
	}

	// Plan
	p := planner.New(maxWorkers)
	analysis, err := p.Analyze(task)
	if err != nil {
		return err
	}
	plan, err := p.Plan(analysis)
	if err != nil {
		return err
	}

	printAnalysis(analysis)
	printPlan(plan)

	if runDryRun {
		return nil
	}

	// Execute
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, draining workers...")
		cancel()
	}()

	client, err := api.NewClient(api.ClientConfig{
		Model:         anthropic.Model(cfg.Anthropic.Model),
		APIKey:        cfg.Anthropic.APIKey,
		UseAWSBedrock: cfg.Anthropic.UseBedrock,
		AWSRegion:     cfg.Anthropic.AWSRegion,
		AWSProfile:    cfg.Anthropic.AWSProfile,
	})
	if err != nil {
		return fmt.Errorf("create API client: %w", err)
	}

	opts := []orchestrator.Option{
		orchestrator.WithPolicy(policy),
		orchestrator.WithMaxWorkers(maxWorkers),
		orchestrator.WithBudget(budget),
		orchestrator.WithWorkerTimeout(cfg.Defaults.WorkerTimeout),
		orchestrator.WithApprovalGate(newTerminalGate()),
		orchestrator.WithRetrier(worker.NewRetrier(cfg.Retry.MaxAttempts, cfg.Retry.Backoff)),
	}

	if !runNoHistory {
		db, err := store.OpenGlobal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history database unavailable: %v\n", err)
		} else {
			defer db.Close()
			if err := db.Migrate(); err != nil {
				return fmt.Errorf("migrate history database: %w", err)
			}
			opts = append(opts, orchestrator.WithSink(store.NewSink(db)))
		}
	}

	if cwd, err := os.Getwd(); err == nil {
		logger := orchestrator.NewDebugLoggerForDir(cwd)
		defer logger.Close()
		opts = append(opts, orchestrator.WithLogger(logger))
	}

	orch := orchestrator.New(
		orchestrator.RequiredConfig{Factory: worker.NewClaudeFactory(client)},
		opts...,
	)

	rendered := make(chan struct{})
	go func() {
		defer close(rendered)
		consumeEvents(orch.Events())
	}()

	record, err := orch.Execute(ctx, task, plan)
	orch.CloseEvents()
	<-rendered
	if err != nil {
		return err
	}

	printSummary(record)
	if !record.Success {
		os.Exit(1)
	}
	return nil
}

// printSummary prints the final record after the event stream has drained.
func printSummary(record *models.TaskExecutionRecord) {
	fmt.Printf("\nWorkers: %d succeeded, %d failed\n", record.SuccessCount(), record.FailureCount())
	fmt.Printf("Tokens:  %d\n", record.TokensUsed)
	fmt.Printf("Time:    %s\n", record.Duration().Round(100*time.Millisecond))
	if record.Status == models.RunAborted {
		failColor.Printf("Status:  aborted (%s)\n", record.AbortReason)
	} else {
		okColor.Println("Status:  finished")
	}
}
