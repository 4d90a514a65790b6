// Package models defines the shared data model for planning and execution.
package models

// WorkerSpec is one planned unit of work: a worker role, the capability it
// exercises, the subtask text it will receive, and the spec IDs that must
// complete before it may start.
type WorkerSpec struct {
	// ID is unique within a plan.
	ID string `json:"id" yaml:"id"`
	// Role is the human-readable worker name (e.g. "Code Writer Alpha").
	Role string `json:"role" yaml:"role"`
	// Capability is the specialization this spec exercises.
	Capability Capability `json:"capability" yaml:"capability"`
	// Subtask is the text handed to the worker's Execute call.
	Subtask string `json:"subtask" yaml:"subtask"`
	// DependsOn lists spec IDs that must complete before this spec runs.
	DependsOn []string `json:"depends_on,omitempty" yaml:"depends_on,omitempty"`
}

// ExecutionPhase is a batch of specs whose dependencies are satisfied by
// strictly earlier phases, eligible to run together.
type ExecutionPhase struct {
	// Description is a short human-readable phase label.
	Description string `json:"description" yaml:"description"`
	// Specs are the members of this phase, in listed execution order.
	Specs []WorkerSpec `json:"specs" yaml:"specs"`
	// Parallel is true iff no spec in the phase depends on another spec in
	// the same phase.
	Parallel bool `json:"parallel" yaml:"parallel"`
}

// ExecutionPlan is an ordered list of phases covering a work graph. Each
// spec ID appears in exactly one phase.
type ExecutionPlan struct {
	Phases []ExecutionPhase `json:"phases" yaml:"phases"`
}

// TotalSpecs returns the number of specs across all phases.
func (p *ExecutionPlan) TotalSpecs() int {
	n := 0
	for _, phase := range p.Phases {
		n += len(phase.Specs)
	}
	return n
}

// Spec returns the spec with the given ID, or nil if not found.
func (p *ExecutionPlan) Spec(id string) *WorkerSpec {
	for pi := range p.Phases {
		for si := range p.Phases[pi].Specs {
			if p.Phases[pi].Specs[si].ID == id {
				return &p.Phases[pi].Specs[si]
			}
		}
	}
	return nil
}

// Capabilities returns the distinct capabilities used by the phase, in
// member order.
func (ph *ExecutionPhase) Capabilities() []Capability {
	seen := make(map[Capability]bool)
	var caps []Capability
	for _, spec := range ph.Specs {
		if !seen[spec.Capability] {
			seen[spec.Capability] = true
			caps = append(caps, spec.Capability)
		}
	}
	return caps
}

// HasSensitiveCapability returns true if any spec in the phase exercises a
// capability flagged as sensitive.
func (ph *ExecutionPhase) HasSensitiveCapability() bool {
	for _, spec := range ph.Specs {
		if spec.Capability.Sensitive() {
			return true
		}
	}
	return false
}
