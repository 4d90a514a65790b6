package planner

import (
	"fmt"

	"github.com/maestro-cli/maestro/pkg/models"
)

// writerNames are the roles assigned to parallel code writers, in order.
var writerNames = []string{"Code Writer Alpha", "Code Writer Beta", "Code Writer Gamma"}

// buildSpecs translates a TaskAnalysis into a worker team. Capabilities are
// visited in canonical planning order so that specs an edge may point at
// (architecture, migration) exist before their dependents.
func (p *Planner) buildSpecs(analysis *models.TaskAnalysis) []models.WorkerSpec {
	var specs []models.WorkerSpec

	var archID string
	var coderIDs []string

	for _, capability := range models.AllCapabilities {
		if !analysis.Requires(capability) {
			continue
		}

		switch capability {
		case models.CapabilityArchitecture:
			archID = "architect-0"
			specs = append(specs, models.WorkerSpec{
				ID:         archID,
				Role:       "Architect",
				Capability: capability,
				Subtask:    "Design the system architecture and create an implementation plan",
			})

		case models.CapabilityMigration:
			specs = append(specs, models.WorkerSpec{
				ID:         fmt.Sprintf("migration-%d", len(specs)),
				Role:       "Migration Specialist",
				Capability: capability,
				Subtask:    "Plan and execute the migration strategy",
			})

		case models.CapabilityCodeWriting:
			writers := p.writerCount(analysis, len(specs))
			var deps []string
			if archID != "" {
				deps = []string{archID}
			}
			for i := 0; i < writers; i++ {
				suffix := ""
				if writers > 1 {
					suffix = fmt.Sprintf(" (part %d of %d)", i+1, writers)
				}
				id := fmt.Sprintf("coder-%d", i)
				coderIDs = append(coderIDs, id)
				specs = append(specs, models.WorkerSpec{
					ID:         id,
					Role:       writerName(i),
					Capability: capability,
					Subtask:    "Implement the required code changes" + suffix,
					DependsOn:  append([]string(nil), deps...),
				})
			}

		case models.CapabilityDebugging:
			specs = append(specs, models.WorkerSpec{
				ID:         fmt.Sprintf("debugger-%d", len(specs)),
				Role:       "Debugger",
				Capability: capability,
				Subtask:    "Diagnose and fix the reported defects",
				DependsOn:  specialistDeps(coderIDs, archID),
			})

		case models.CapabilityPerformance:
			specs = append(specs, models.WorkerSpec{
				ID:         fmt.Sprintf("perf-%d", len(specs)),
				Role:       "Performance Engineer",
				Capability: capability,
				Subtask:    "Profile the changes and optimize the identified bottlenecks",
				DependsOn:  specialistDeps(coderIDs, archID),
			})

		case models.CapabilitySecurity:
			specs = append(specs, models.WorkerSpec{
				ID:         fmt.Sprintf("security-%d", len(specs)),
				Role:       "Security Auditor",
				Capability: capability,
				Subtask:    "Review the changes for security vulnerabilities",
				DependsOn:  specialistDeps(coderIDs, archID),
			})

		case models.CapabilityTesting:
			specs = append(specs, models.WorkerSpec{
				ID:         fmt.Sprintf("tester-%d", len(specs)),
				Role:       "Test Engineer",
				Capability: capability,
				Subtask:    "Write comprehensive tests for the implemented changes",
				DependsOn:  specialistDeps(coderIDs, archID),
			})

		case models.CapabilityReview:
			specs = append(specs, models.WorkerSpec{
				ID:         fmt.Sprintf("reviewer-%d", len(specs)),
				Role:       "Code Reviewer",
				Capability: capability,
				Subtask:    "Review the changes for quality and maintainability",
				DependsOn:  specialistDeps(coderIDs, archID),
			})

		case models.CapabilityDocumentation:
			// Documentation runs last: it depends on every spec planned
			// before it.
			var deps []string
			for _, s := range specs {
				deps = append(deps, s.ID)
			}
			specs = append(specs, models.WorkerSpec{
				ID:         fmt.Sprintf("docs-%d", len(specs)),
				Role:       "Documentation Writer",
				Capability: capability,
				Subtask:    "Create comprehensive documentation for the changes",
				DependsOn:  deps,
			})
		}
	}

	return specs
}

// writerCount decides how many parallel code writers to plan. Complex tasks
// spanning many files fan out, bounded by the configured max workers.
func (p *Planner) writerCount(analysis *models.TaskAnalysis, planned int) int {
	if analysis.Complexity < 7 || analysis.EstimatedFiles <= 5 {
		return 1
	}
	writers := analysis.EstimatedFiles / 3
	if remaining := p.maxWorkers - planned; writers > remaining {
		writers = remaining
	}
	if writers < 1 {
		writers = 1
	}
	return writers
}

// writerName returns the role name for the i-th code writer.
func writerName(i int) string {
	if i < len(writerNames) {
		return writerNames[i]
	}
	return fmt.Sprintf("Code Writer Delta-%d", i-len(writerNames)+1)
}

// specialistDeps returns the natural predecessors of a specialist spec:
// the code writers when present, otherwise the architecture spec when one
// exists in the plan, otherwise nothing.
func specialistDeps(coderIDs []string, archID string) []string {
	if len(coderIDs) > 0 {
		return append([]string(nil), coderIDs...)
	}
	if archID != "" {
		return []string{archID}
	}
	return nil
}
