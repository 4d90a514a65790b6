package planner

import (
	"strings"

	"github.com/maestro-cli/maestro/pkg/models"
)

// Complexity scoring constants. Scoring must stay a pure function of the
// task text so that downstream budget and approval decisions are
// reproducible for identical input.
const (
	baseComplexity    = 3
	highKeywordWeight = 2
	medKeywordWeight  = 1
	conjunctionBonus  = 1
	maxComplexity     = 10
)

// highWeightKeywords each add highKeywordWeight to the complexity score.
// A keyword counts once no matter how often it repeats in the task.
var highWeightKeywords = []string{
	"refactor", "migrate", "redesign", "architecture",
	"authentication", "oauth", "security", "encryption",
	"performance", "optimize", "scale", "distributed",
}

// mediumWeightKeywords each add medKeywordWeight to the complexity score.
var mediumWeightKeywords = []string{
	"implement", "create", "build", "add feature",
	"integration", "api", "database", "tests",
}

// conjunctions signal multiple conjoined requirements in one task.
var conjunctions = []string{" and ", " with "}

// capabilityKeywords maps keyword groups to capabilities, in canonical
// planning order. A task may match several groups; there is no
// first-match-wins short-circuit.
var capabilityKeywords = []struct {
	capability models.Capability
	keywords   []string
}{
	{models.CapabilityArchitecture, []string{"architecture", "design", "refactor", "structure"}},
	{models.CapabilityMigration, []string{"migrate", "migration", "upgrade", "convert"}},
	{models.CapabilityCodeWriting, []string{"implement", "create", "write", "add", "build"}},
	{models.CapabilityDebugging, []string{"debug", "fix", "bug", "error", "issue"}},
	{models.CapabilityPerformance, []string{"optimize", "performance", "speed", "efficiency"}},
	{models.CapabilitySecurity, []string{"security", "auth", "oauth", "encryption", "vulnerability"}},
	{models.CapabilityTesting, []string{"test", "testing", "coverage", "unit test"}},
	{models.CapabilityReview, []string{"review", "critique", "assess"}},
	{models.CapabilityDocumentation, []string{"document", "docs", "readme", "comments"}},
}

// containsAny reports whether lowered contains any of the given keywords.
// Callers lower the task text exactly once in Analyze so that matching is
// case-insensitive throughout.
func containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// containsWord reports whether lowered contains kw as a whole word. Used
// for short hint words ("one") where substring matching would misfire.
func containsWord(lowered, kw string) bool {
	for _, field := range strings.Fields(lowered) {
		if strings.Trim(field, ".,;:!?\"'()") == kw {
			return true
		}
	}
	return false
}
