// Package planner converts a free-text task description into an annotated
// work graph and reduces it to an ordered execution plan.
//
// Planning happens in two steps:
//   - Analyze scores the task's complexity, estimates its resource cost,
//     and detects the capabilities it requires.
//   - Plan builds a worker team for the analysis, wires dependency edges
//     between specs, and batches the graph into dependency-ordered phases.
//
// Both steps are deterministic for identical input; downstream budget and
// approval decisions depend on that.
package planner

import (
	"fmt"

	"github.com/maestro-cli/maestro/pkg/models"
)

// DefaultMaxWorkers bounds code-writer fan-out when no limit is configured.
const DefaultMaxWorkers = 5

// Planner is a stateless planning service. It is safe for concurrent use.
type Planner struct {
	maxWorkers int
}

// New creates a Planner. maxWorkers bounds how many code writers a single
// plan fans out to; values below 1 fall back to DefaultMaxWorkers.
func New(maxWorkers int) *Planner {
	if maxWorkers < 1 {
		maxWorkers = DefaultMaxWorkers
	}
	return &Planner{maxWorkers: maxWorkers}
}

// Plan reduces an analysis to an ordered ExecutionPlan. It returns a
// planning error and no plan when the analysis references an unknown
// capability or the constructed graph is malformed.
func (p *Planner) Plan(analysis *models.TaskAnalysis) (*models.ExecutionPlan, error) {
	if analysis == nil || len(analysis.RequiredCapabilities) == 0 {
		return nil, fmt.Errorf("%w: analysis has no required capabilities", ErrInvalidTask)
	}
	for _, c := range analysis.RequiredCapabilities {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCapability, c)
		}
	}

	specs := p.buildSpecs(analysis)
	phases, err := reducePhases(specs)
	if err != nil {
		return nil, err
	}
	return &models.ExecutionPlan{Phases: phases}, nil
}
