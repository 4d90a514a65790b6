package planner

import (
	"fmt"
	"strings"

	"github.com/maestro-cli/maestro/pkg/models"
)

// maxTaskLength bounds the accepted task text. Anything longer is rejected
// rather than truncated.
const maxTaskLength = 10_000

// maxExtractedKeywords caps the keyword list in a TaskAnalysis.
const maxExtractedKeywords = 10

// Analyze produces a TaskAnalysis for the given task description. It is
// deterministic: identical input yields an identical analysis.
func (p *Planner) Analyze(task string) (*models.TaskAnalysis, error) {
	trimmed := strings.TrimSpace(task)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: empty task description", ErrInvalidTask)
	}
	if len(task) > maxTaskLength {
		return nil, fmt.Errorf("%w: task description exceeds %d characters", ErrInvalidTask, maxTaskLength)
	}

	lowered := strings.ToLower(trimmed)

	complexity := estimateComplexity(lowered)
	capabilities := detectCapabilities(lowered)
	files := estimateFiles(lowered, complexity)
	timeMin, timeMax := estimateTime(complexity)

	return &models.TaskAnalysis{
		TaskDescription:      trimmed,
		Complexity:           complexity,
		EstimatedFiles:       files,
		EstimatedTokens:      estimateTokens(complexity, files),
		EstimatedTimeMin:     timeMin,
		EstimatedTimeMax:     timeMax,
		RequiredCapabilities: capabilities,
		Keywords:             extractKeywords(lowered),
	}, nil
}

// estimateComplexity scores the task on a 0-10 scale: a fixed base, an
// increment per matched high- or medium-weight keyword, and a bonus when
// the task conjoins multiple requirements.
func estimateComplexity(lowered string) int {
	complexity := baseComplexity

	for _, kw := range highWeightKeywords {
		if strings.Contains(lowered, kw) {
			complexity += highKeywordWeight
		}
	}
	for _, kw := range mediumWeightKeywords {
		if strings.Contains(lowered, kw) {
			complexity += medKeywordWeight
		}
	}
	if containsAny(lowered, conjunctions) {
		complexity += conjunctionBonus
	}

	if complexity > maxComplexity {
		complexity = maxComplexity
	}
	if complexity < 0 {
		complexity = 0
	}
	return complexity
}

// detectCapabilities returns every capability whose keyword group matches
// the task. Falls back to CodeWriting when nothing matches.
func detectCapabilities(lowered string) []models.Capability {
	var caps []models.Capability
	for _, group := range capabilityKeywords {
		if containsAny(lowered, group.keywords) {
			caps = append(caps, group.capability)
		}
	}
	if len(caps) == 0 {
		caps = append(caps, models.CapabilityCodeWriting)
	}
	return caps
}

// extractKeywords pulls the first significant words out of the task text.
func extractKeywords(lowered string) []string {
	var keywords []string
	for _, word := range strings.Fields(lowered) {
		if len(word) <= 3 {
			continue
		}
		keywords = append(keywords, word)
		if len(keywords) == maxExtractedKeywords {
			break
		}
	}
	return keywords
}

// estimateFiles bands the file count by complexity, scaled up for
// whole-system tasks and down for single-file hints.
func estimateFiles(lowered string, complexity int) int {
	var base int
	switch {
	case complexity <= 3:
		base = 1
	case complexity <= 6:
		base = 3
	case complexity <= 8:
		base = 8
	default:
		base = 12
	}

	multiplier := 1.0
	if strings.Contains(lowered, "system") || strings.Contains(lowered, "entire") {
		multiplier = 2.0
	} else if containsWord(lowered, "single") || containsWord(lowered, "one") {
		multiplier = 0.5
	}

	files := int(float64(base) * multiplier)
	if files < 1 {
		files = 1
	}
	return files
}

// estimateTokens is a linear function of complexity and file count.
func estimateTokens(complexity, files int) int64 {
	const basePerFile = 2000
	multiplier := 1.0 + float64(complexity)*0.2
	return int64(float64(files*basePerFile) * multiplier)
}

// estimateTime returns the estimated duration band in minutes.
func estimateTime(complexity int) (min, max int) {
	switch {
	case complexity <= 3:
		return 2, 5
	case complexity <= 6:
		return 5, 15
	case complexity <= 8:
		return 15, 30
	default:
		return 30, 60
	}
}
