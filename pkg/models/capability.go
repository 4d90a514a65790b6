package models

// Capability represents a fixed category of work a worker can perform.
type Capability string

const (
	// CapabilityArchitecture is system design and architecture work.
	CapabilityArchitecture Capability = "architecture"
	// CapabilityCodeWriting is general implementation work. It is the
	// fallback when no other capability is detected in a task.
	CapabilityCodeWriting Capability = "code_writing"
	// CapabilityTesting is test authoring and quality assurance.
	CapabilityTesting Capability = "testing"
	// CapabilitySecurity is security auditing and vulnerability detection.
	CapabilitySecurity Capability = "security"
	// CapabilityDocumentation is technical documentation work.
	CapabilityDocumentation Capability = "documentation"
	// CapabilityDebugging is bug hunting and fixing.
	CapabilityDebugging Capability = "debugging"
	// CapabilityPerformance is performance optimization and profiling.
	CapabilityPerformance Capability = "performance"
	// CapabilityMigration is code and data migration.
	CapabilityMigration Capability = "migration"
	// CapabilityReview is code review and quality assessment.
	CapabilityReview Capability = "review"
)

// AllCapabilities lists every known capability in canonical planning order.
// Architecture and Migration come first because other specs may depend on
// them; Documentation comes last because it depends on everything else.
var AllCapabilities = []Capability{
	CapabilityArchitecture,
	CapabilityMigration,
	CapabilityCodeWriting,
	CapabilityDebugging,
	CapabilityPerformance,
	CapabilitySecurity,
	CapabilityTesting,
	CapabilityReview,
	CapabilityDocumentation,
}

// Valid returns true if the capability is a known value.
func (c Capability) Valid() bool {
	switch c {
	case CapabilityArchitecture, CapabilityCodeWriting, CapabilityTesting,
		CapabilitySecurity, CapabilityDocumentation, CapabilityDebugging,
		CapabilityPerformance, CapabilityMigration, CapabilityReview:
		return true
	default:
		return false
	}
}

// Description returns a human-readable description of the expertise area.
func (c Capability) Description() string {
	switch c {
	case CapabilityArchitecture:
		return "system design and architecture"
	case CapabilityCodeWriting:
		return "writing production-quality code"
	case CapabilityTesting:
		return "comprehensive testing and quality assurance"
	case CapabilitySecurity:
		return "security auditing and vulnerability detection"
	case CapabilityDocumentation:
		return "technical documentation and guides"
	case CapabilityDebugging:
		return "debugging and bug fixing"
	case CapabilityPerformance:
		return "performance optimization and profiling"
	case CapabilityMigration:
		return "code and data migration"
	case CapabilityReview:
		return "code review and quality assessment"
	default:
		return "general software work"
	}
}

// Sensitive returns true if phases containing this capability require
// approval under the Balanced autonomy policy.
func (c Capability) Sensitive() bool {
	return c == CapabilitySecurity || c == CapabilityMigration
}

// Critical returns true if a worker failure in this capability aborts the
// remaining plan. Dependent phases cannot proceed meaningfully without a
// completed architecture or migration step.
func (c Capability) Critical() bool {
	return c == CapabilityArchitecture || c == CapabilityMigration
}
