package planner

import (
	"fmt"
	"strings"

	"github.com/maestro-cli/maestro/pkg/models"
)

// reducePhases batches specs into dependency-ordered phases. Specs are kept
// in a flat slice and referenced by ID; each iteration emits the ready set
// (specs whose dependencies are all scheduled) as the next phase.
//
// An empty ready set with specs remaining means the graph contains a cycle.
// That is a planning-time defect: the remainder is never dumped into a
// final phase, because running it could start a worker with unmet
// dependencies.
func reducePhases(specs []models.WorkerSpec) ([]models.ExecutionPhase, error) {
	index := make(map[string]int, len(specs))
	for i, spec := range specs {
		if _, dup := index[spec.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSpecID, spec.ID)
		}
		index[spec.ID] = i
	}
	for _, spec := range specs {
		for _, dep := range spec.DependsOn {
			if dep == spec.ID {
				return nil, fmt.Errorf("%w: spec %s depends on itself", ErrCircularDependency, spec.ID)
			}
			if _, ok := index[dep]; !ok {
				return nil, fmt.Errorf("%w: spec %s depends on %s", ErrUnknownDependency, spec.ID, dep)
			}
		}
	}

	scheduled := make(map[string]bool, len(specs))
	remaining := append([]models.WorkerSpec(nil), specs...)
	var phases []models.ExecutionPhase

	for len(remaining) > 0 {
		var ready, notReady []models.WorkerSpec
		for _, spec := range remaining {
			if depsScheduled(spec, scheduled) {
				ready = append(ready, spec)
			} else {
				notReady = append(notReady, spec)
			}
		}

		if len(ready) == 0 {
			var ids []string
			for _, spec := range notReady {
				ids = append(ids, spec.ID)
			}
			return nil, fmt.Errorf("%w: unresolvable specs: %s", ErrCircularDependency, strings.Join(ids, ", "))
		}

		// Verified, not assumed: dependencies should all lie in earlier
		// phases by construction, but malformed input must not yield a
		// phase that claims parallelism it does not have.
		parallel := len(ready) > 1 && noIntraPhaseDeps(ready)

		description := fmt.Sprintf("Phase %d", len(phases)+1)
		if parallel {
			description += " (parallel)"
		}

		for _, spec := range ready {
			scheduled[spec.ID] = true
		}
		phases = append(phases, models.ExecutionPhase{
			Description: description,
			Specs:       ready,
			Parallel:    parallel,
		})
		remaining = notReady
	}

	return phases, nil
}

// depsScheduled returns true if every dependency of spec is scheduled.
func depsScheduled(spec models.WorkerSpec, scheduled map[string]bool) bool {
	for _, dep := range spec.DependsOn {
		if !scheduled[dep] {
			return false
		}
	}
	return true
}

// noIntraPhaseDeps returns true if no member of the ready set depends on
// another member of the same set.
func noIntraPhaseDeps(ready []models.WorkerSpec) bool {
	members := make(map[string]bool, len(ready))
	for _, spec := range ready {
		members[spec.ID] = true
	}
	for _, spec := range ready {
		for _, dep := range spec.DependsOn {
			if members[dep] {
				return false
			}
		}
	}
	return true
}
