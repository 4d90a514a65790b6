package models

// TaskAnalysis is the planner's read of a task: a complexity score, resource
// and time estimates, and the capabilities the task requires. It is created
// once per run and immutable thereafter.
type TaskAnalysis struct {
	// TaskDescription is the original task text.
	TaskDescription string `json:"task_description" yaml:"task_description"`
	// Complexity is a score clamped to [0,10].
	Complexity int `json:"complexity" yaml:"complexity"`
	// EstimatedFiles is the estimated number of files touched.
	EstimatedFiles int `json:"estimated_files" yaml:"estimated_files"`
	// EstimatedTokens is the estimated token cost of the run.
	EstimatedTokens int64 `json:"estimated_tokens" yaml:"estimated_tokens"`
	// EstimatedTimeMin and EstimatedTimeMax bound the estimated duration
	// in minutes. Used for budgeting and user-facing estimates only.
	EstimatedTimeMin int `json:"estimated_time_min" yaml:"estimated_time_min"`
	EstimatedTimeMax int `json:"estimated_time_max" yaml:"estimated_time_max"`
	// RequiredCapabilities is never empty; it falls back to CodeWriting.
	RequiredCapabilities []Capability `json:"required_capabilities" yaml:"required_capabilities"`
	// Keywords are the significant words extracted from the task text.
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// ComplexityLabel returns a human-readable band for the complexity score.
func (a *TaskAnalysis) ComplexityLabel() string {
	switch {
	case a.Complexity <= 3:
		return "Low"
	case a.Complexity <= 6:
		return "Medium"
	case a.Complexity <= 8:
		return "High"
	default:
		return "Very High"
	}
}

// Requires returns true if the analysis detected the given capability.
func (a *TaskAnalysis) Requires(c Capability) bool {
	for _, rc := range a.RequiredCapabilities {
		if rc == c {
			return true
		}
	}
	return false
}
