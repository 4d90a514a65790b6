package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/maestro-cli/maestro/internal/config"
	"github.com/maestro-cli/maestro/internal/planner"
	"github.com/maestro-cli/maestro/pkg/models"
)

var planYAML bool

var planCmd = &cobra.Command{
	Use:   "plan <task>",
	Short: "Show the worker plan for a task without executing it",
	Long: `Analyze a task and print the execution plan that 'maestro run' would use.

The output shows the complexity assessment, the detected capabilities,
resource estimates, and the phased worker graph. Use --yaml for
machine-readable output.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := strings.Join(args, " ")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		p := planner.New(cfg.Defaults.MaxWorkers)
		analysis, err := p.Analyze(task)
		if err != nil {
			return err
		}
		plan, err := p.Plan(analysis)
		if err != nil {
			return err
		}

		if planYAML {
			out, err := yaml.Marshal(struct {
				Analysis *models.TaskAnalysis  `yaml:"analysis"`
				Plan     *models.ExecutionPlan `yaml:"plan"`
			}{analysis, plan})
			if err != nil {
				return fmt.Errorf("marshal plan: %w", err)
			}
			fmt.Print(string(out))
			return nil
		}

		printAnalysis(analysis)
		printPlan(plan)
		return nil
	},
}

func init() {
	planCmd.Flags().BoolVar(&planYAML, "yaml", false, "Print the plan as YAML")
}

// printAnalysis prints the task analysis in human-readable form.
func printAnalysis(a *models.TaskAnalysis) {
	fmt.Printf("Task: %s\n", a.TaskDescription)
	fmt.Printf("Complexity: %d/10 (%s)\n", a.Complexity, a.ComplexityLabel())

	caps := make([]string, len(a.RequiredCapabilities))
	for i, c := range a.RequiredCapabilities {
		caps[i] = string(c)
	}
	fmt.Printf("Capabilities: %s\n", strings.Join(caps, ", "))
	fmt.Printf("Estimates: ~%d files, ~%d tokens, %d-%d min\n",
		a.EstimatedFiles, a.EstimatedTokens, a.EstimatedTimeMin, a.EstimatedTimeMax)
}

// printPlan prints the phased worker graph.
func printPlan(p *models.ExecutionPlan) {
	fmt.Printf("\nPlan: %d workers in %d phases\n", p.TotalSpecs(), len(p.Phases))
	for _, phase := range p.Phases {
		fmt.Printf("\n%s\n", phase.Description)
		for _, spec := range phase.Specs {
			line := fmt.Sprintf("  %-12s %s (%s)", spec.ID, spec.Role, spec.Capability)
			if len(spec.DependsOn) > 0 {
				line += dimColor.Sprintf("  <- %s", strings.Join(spec.DependsOn, ", "))
			}
			fmt.Println(line)
		}
	}
}
