package planner

import "errors"

// Planning errors are fatal and surface synchronously to the caller before
// any worker is started.
var (
	// ErrInvalidTask indicates the task text is empty or pathologically long.
	ErrInvalidTask = errors.New("invalid task")

	// ErrUnknownCapability indicates an analysis references a capability
	// outside the catalog.
	ErrUnknownCapability = errors.New("unknown capability")

	// ErrCircularDependency indicates the work graph contains a cycle. A
	// plan is never produced from a cyclic graph; running one could start a
	// worker with unmet dependencies.
	ErrCircularDependency = errors.New("circular dependency detected")

	// ErrUnknownDependency indicates a spec depends on an ID not present in
	// the plan.
	ErrUnknownDependency = errors.New("dependency references unknown spec")

	// ErrDuplicateSpecID indicates two specs share an ID.
	ErrDuplicateSpecID = errors.New("duplicate spec id")
)
